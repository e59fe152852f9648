// Package ngram extracts n-grams from JSON document records.
//
// A Tokenizer is configured once with an n-gram size and a unit mode and is
// safe for concurrent use; it holds no state that changes after construction.
package ngram

import (
	"fmt"
	"unicode/utf8"

	"github.com/future-architect/ngram/nlp"
	_ "github.com/future-architect/ngram/nlp/char"
	_ "github.com/future-architect/ngram/nlp/word"
)

const (
	ModeCharacter = nlp.ModeCharacter
	ModeWord      = nlp.ModeWord
)

type Option struct {
	// Mode selects the unit registered in package nlp. Empty means ModeCharacter.
	Mode string
	// Normalize lowercases the text and collapses whitespace before extraction.
	Normalize bool
}

type Tokenizer struct {
	nSize     int
	unit      *nlp.Unit
	normalize bool
}

// NewTokenizer returns a Tokenizer producing nSize-grams. It fails with
// ErrInvalidConfiguration when nSize < 1 or the mode is not registered.
func NewTokenizer(nSize int, opt ...Option) (*Tokenizer, error) {
	var option Option
	if len(opt) > 0 {
		option = opt[0]
	}
	if nSize < 1 {
		return nil, fmt.Errorf("%w: n-gram size must be at least 1, got %d", ErrInvalidConfiguration, nSize)
	}
	if option.Mode == "" {
		option.Mode = ModeCharacter
	}
	unit, err := nlp.FindUnit(option.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfiguration, err.Error())
	}
	return &Tokenizer{
		nSize:     nSize,
		unit:      unit,
		normalize: option.Normalize,
	}, nil
}

func (t *Tokenizer) Size() int {
	return t.nSize
}

func (t *Tokenizer) Mode() string {
	return t.unit.Mode
}

// TokenizeText parses one JSON record and returns the n-grams of its text.
func (t *Tokenizer) TokenizeText(jsonLine string) ([]string, error) {
	record, err := ParseRecord([]byte(jsonLine))
	if err != nil {
		return nil, err
	}
	return t.TokenizeRecord(record), nil
}

// TokenizeRecord returns the n-grams of an already decoded record.
func (t *Tokenizer) TokenizeRecord(record *DocumentRecord) []string {
	return t.extract(record.Text)
}

// Tokenize returns the n-grams of raw text, which must be valid UTF-8.
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	if !utf8.ValidString(text) {
		return nil, &EncodingError{
			Offset: invalidOffset([]byte(text)),
			Reason: "invalid UTF-8 byte sequence",
		}
	}
	return t.extract(text), nil
}

func (t *Tokenizer) extract(text string) []string {
	if t.normalize {
		text = nlp.Normalize(text)
	}
	return t.unit.Ngrams(text, t.nSize)
}
