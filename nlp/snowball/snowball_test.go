package snowball

import (
	"testing"

	"github.com/future-architect/ngram/nlp"
	"github.com/stretchr/testify/assert"
)

func TestEnglishStem(t *testing.T) {
	stem := stemmer("english")
	assert.Equal(t, stem("run"), stem("running"))
	assert.Equal(t, stem("cat"), stem("cats"))
}

func TestSpanishStem(t *testing.T) {
	stem := stemmer("spanish")
	assert.Equal(t, stem("gato"), stem("gatos"))
}

func TestUnknownLanguageKeepsWord(t *testing.T) {
	stem := stemmer("klingon")
	assert.Equal(t, "running", stem("running"))
}

func TestStemmedNgrams(t *testing.T) {
	unit, err := nlp.FindUnit(ModeEnglish)
	assert.Nil(t, err)
	stem := stemmer("english")

	ngrams := unit.Ngrams("cats running fast", 2)
	assert.Equal(t, []string{
		stem("cats") + " " + stem("running"),
		stem("running") + " " + stem("fast"),
	}, ngrams)
}
