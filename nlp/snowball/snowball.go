// Package snowball registers whitespace word units stemmed with the Snowball
// algorithm for the languages of the cross-lingual corpora.
package snowball

import (
	"strings"

	"github.com/future-architect/ngram/nlp"
	"github.com/kljensen/snowball"
)

const (
	ModeEnglish = "word-en"
	ModeSpanish = "word-es"
)

func init() {
	nlp.RegisterUnit(ModeEnglish, strings.Fields, stemmer("english"), " ")
	nlp.RegisterUnit(ModeSpanish, strings.Fields, stemmer("spanish"), " ")
}

func stemmer(language string) func(string) string {
	return func(word string) string {
		stemmed, err := snowball.Stem(word, language, false)
		if err != nil {
			return word
		}
		return stemmed
	}
}
