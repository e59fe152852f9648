package ngram

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestProperty_CharacterLength(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		text := rapid.String().Draw(rt, "text")
		tokenizer, err := NewTokenizer(n)
		require.NoError(rt, err)

		ngrams, err := tokenizer.Tokenize(text)
		require.NoError(rt, err)
		require.NotNil(rt, ngrams)

		length := utf8.RuneCountInString(text)
		if length < n {
			require.Empty(rt, ngrams)
			return
		}
		require.Len(rt, ngrams, length-n+1)
		for _, ngram := range ngrams {
			require.Equal(rt, n, utf8.RuneCountInString(ngram))
		}
	})
}

func TestProperty_Overlap(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "n")
		text := rapid.String().Draw(rt, "text")
		tokenizer, err := NewTokenizer(n)
		require.NoError(rt, err)

		ngrams, err := tokenizer.Tokenize(text)
		require.NoError(rt, err)
		if len(ngrams) == 0 {
			return
		}
		// the first window plus the last unit of every following window rebuilds the text
		var b strings.Builder
		b.WriteString(ngrams[0])
		for i := 1; i < len(ngrams); i++ {
			prev := []rune(ngrams[i-1])
			cur := []rune(ngrams[i])
			require.Equal(rt, string(prev[1:]), string(cur[:n-1]))
			b.WriteRune(cur[n-1])
		}
		require.Equal(rt, text, b.String())
	})
}

func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "n")
		mode := rapid.SampledFrom([]string{ModeCharacter, ModeWord}).Draw(rt, "mode")
		normalize := rapid.Bool().Draw(rt, "normalize")
		record := DocumentRecord{
			ID:    rapid.String().Draw(rt, "id"),
			Text:  rapid.String().Draw(rt, "text"),
			Label: rapid.IntRange(-1, 5).Draw(rt, "label"),
		}
		line, err := json.Marshal(record)
		require.NoError(rt, err)

		tokenizer, err := NewTokenizer(n, Option{Mode: mode, Normalize: normalize})
		require.NoError(rt, err)
		first, err := tokenizer.TokenizeText(string(line))
		require.NoError(rt, err)
		second, err := tokenizer.TokenizeText(string(line))
		require.NoError(rt, err)
		require.Equal(rt, first, second)

		direct, err := tokenizer.Tokenize(record.Text)
		require.NoError(rt, err)
		require.Equal(rt, direct, first)
	})
}
