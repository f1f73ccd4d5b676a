// Package snatch implements the combinatorial word-relationship engine
// for the Snatch word game: given a fixed dictionary and an optional
// etymology table, it finds every valid way to steal a word by adding
// letters, or to merge two words into a longer one, and annotates each
// result with a same-root validity judgment.
package snatch

import (
	"github.com/charmbracelet/log"

	"github.com/wordsnatch/snatch/pkg/dictionary"
)

const (
	// MinWordLength is the shortest word the game accepts.
	MinWordLength = 4
	// MinMergeLength is the shortest target a two-word merge can
	// produce: two minimum-length words plus at least one added letter.
	MinMergeLength = 2*MinWordLength + 1
	// DefaultMaxResults caps the merge searches for responsiveness.
	DefaultMaxResults = 200
)

// WordStatus classifies a plain membership query.
type WordStatus int

const (
	// WordTooShort means the word is below MinWordLength.
	WordTooShort WordStatus = iota
	// WordValid means the word is playable.
	WordValid
	// WordInvalid means the word is not in the dictionary.
	WordInvalid
)

func (s WordStatus) String() string {
	switch s {
	case WordTooShort:
		return "too_short"
	case WordValid:
		return "valid"
	default:
		return "invalid"
	}
}

// Engine answers steal and merge queries against a fixed dictionary and
// etymology table. It holds no mutable state after construction, so one
// Engine serves concurrent queries without locking; every search is a
// pure function of its inputs and returns byte-identical output for
// identical calls.
type Engine struct {
	dict      *dictionary.Dictionary
	words     []string
	counts    map[string]Counts
	etymology *EtymologyIndex
}

// NewEngine builds an Engine over an already loaded dictionary and raw
// etymology table. Per-word letter multisets are precomputed here so the
// search loops never re-count letters.
func NewEngine(dict *dictionary.Dictionary, etymology map[string][]string) *Engine {
	words := dict.Words()
	counts := make(map[string]Counts, len(words))
	for _, w := range words {
		counts[w] = CountLetters(w)
	}
	log.Debugf("Engine ready: %d words, %d etymology entries", len(words), len(etymology))
	return &Engine{
		dict:      dict,
		words:     words,
		counts:    counts,
		etymology: NewEtymologyIndex(etymology),
	}
}

// Dictionary returns the engine's word set.
func (e *Engine) Dictionary() *dictionary.Dictionary {
	return e.dict
}

// Etymology returns the engine's etymology index.
func (e *Engine) Etymology() *EtymologyIndex {
	return e.etymology
}

// CheckWord answers a plain membership query independent of any steal
// search. The word must already be uppercased.
func (e *Engine) CheckWord(word string) WordStatus {
	if len(word) < MinWordLength {
		return WordTooShort
	}
	if e.dict.Contains(word) {
		return WordValid
	}
	return WordInvalid
}

// countsFor returns the cached multiset for dictionary words and counts
// on the fly otherwise, so reference words outside the dictionary are
// tolerated rather than rejected.
func (e *Engine) countsFor(word string) Counts {
	if c, ok := e.counts[word]; ok {
		return c
	}
	return CountLetters(word)
}
