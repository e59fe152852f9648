package char

import (
	"strings"

	"github.com/future-architect/ngram/nlp"
)

const Mode = nlp.ModeCharacter

func init() {
	nlp.RegisterUnit(Mode, charSplitter, nil, "")
}

// charSplitter returns one element per codepoint. Each byte of an invalid
// UTF-8 sequence becomes its own element; callers validate beforehand.
func charSplitter(content string) []string {
	if content == "" {
		return []string{}
	}
	return strings.Split(content, "")
}
