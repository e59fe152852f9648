package nlp

import (
	"strings"
	"unicode"
)

// Normalize lowercases content and collapses each whitespace run into one space.
// Leading whitespace is dropped; trailing whitespace becomes a single space.
func Normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	lastSpace := true
	for _, r := range content {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(unicode.ToLower(r))
		lastSpace = false
	}
	return b.String()
}
