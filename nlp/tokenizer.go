package nlp

import (
	"fmt"
	"sort"
	"sync"
)

const (
	ModeCharacter = "char"
	ModeWord      = "word"
)

var (
	lock  sync.RWMutex
	units = make(map[string]*Unit)
)

// Unit describes how text is split into atomic units and how a window of
// units is rendered back to a single token.
type Unit struct {
	Mode      string
	splitter  func(string) []string
	stemmer   func(string) string
	separator string
}

// FindUnit returns the unit registered for mode.
func FindUnit(mode string) (*Unit, error) {
	lock.RLock()
	defer lock.RUnlock()
	unit, ok := units[mode]
	if !ok {
		return nil, fmt.Errorf("can't find unit for mode %q", mode)
	}
	return unit, nil
}

// Modes returns registered mode names in sorted order.
func Modes() []string {
	lock.RLock()
	defer lock.RUnlock()
	result := make([]string, 0, len(units))
	for mode := range units {
		result = append(result, mode)
	}
	sort.Strings(result)
	return result
}

// RegisterUnit makes a unit available under mode. stemmer may be nil.
// Sub-packages call it from init().
func RegisterUnit(mode string, splitter func(string) []string, stemmer func(string) string, separator string) {
	lock.Lock()
	defer lock.Unlock()
	units[mode] = &Unit{
		Mode:      mode,
		splitter:  splitter,
		stemmer:   stemmer,
		separator: separator,
	}
}

func (u Unit) Separator() string {
	return u.separator
}

// Split returns the atomic units of content, stemmed when the unit has a stemmer.
func (u Unit) Split(content string) []string {
	words := u.splitter(content)
	if u.stemmer == nil {
		return words
	}
	for i, word := range words {
		words[i] = u.stemmer(word)
	}
	return words
}

// Ngrams splits content and returns its n-grams in document order.
func (u Unit) Ngrams(content string, n int) []string {
	return Window(u.Split(content), n, u.separator)
}
