package japanese

import (
	"fmt"
	"strings"

	"github.com/future-architect/ngram/nlp"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

const Mode = "morpheme-ja"

var kagomeTokenizer *tokenizer.Tokenizer

func init() {
	// the dictionary is embedded; failing here means a broken build, not bad input
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		panic(fmt.Sprintf("japanese: load ipa dictionary: %s", err.Error()))
	}
	kagomeTokenizer = t
	nlp.RegisterUnit(Mode, japaneseSplitter, nil, " ")
}

// japaneseSplitter returns the surface form of every morpheme except whitespace.
func japaneseSplitter(content string) []string {
	result := []string{}
	if content == "" {
		return result
	}
	for _, token := range kagomeTokenizer.Tokenize(content) {
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}
		result = append(result, token.Surface)
	}
	return result
}
