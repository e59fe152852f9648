package nlp

import (
	"strings"
)

// Window returns every run of n consecutive units joined by separator, left to right.
// When there are fewer than n units the result is empty, never nil.
func Window(units []string, n int, separator string) []string {
	if n < 1 || len(units) < n {
		return []string{}
	}
	result := make([]string, len(units)-n+1)
	for i := 0; i+n <= len(units); i++ {
		result[i] = strings.Join(units[i:i+n], separator)
	}
	return result
}
