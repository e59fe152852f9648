package word

import (
	"strings"

	"github.com/future-architect/ngram/nlp"
)

const Mode = nlp.ModeWord

func init() {
	nlp.RegisterUnit(Mode, wordSplitter, nil, " ")
}

func wordSplitter(content string) []string {
	return strings.Fields(content)
}
