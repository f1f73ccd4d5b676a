package snatch

import "sort"

// Direction selects which side of a steal the reference word sits on.
type Direction int

const (
	// StealFrom finds shorter base words the reference could have been
	// stolen from.
	StealFrom Direction = iota
	// StealTo finds longer result words the reference can be stolen into.
	StealTo
)

// Steal is a single-word steal result. For StealFrom queries Word is the
// base word; for StealTo queries it is the result word. AddedLetters is
// the sorted string of letters separating the two, and Invalid marks
// steals where the pair is just an inflection of the same root.
type Steal struct {
	Word         string
	AddedLetters string
	Invalid      bool
}

// FindStealsFrom finds every dictionary word the reference word could
// have been stolen from: strict letter-subsets of the reference. Longer
// base words sort first since they imply fewer stolen letters.
func (e *Engine) FindStealsFrom(word string) []Steal {
	return e.findSteals(word, StealFrom)
}

// FindStealsTo finds every dictionary word the reference word can be
// stolen into: strict letter-supersets of the reference. Shorter result
// words sort first since they are the simpler plays.
func (e *Engine) FindStealsTo(word string) []Steal {
	return e.findSteals(word, StealTo)
}

// findSteals is the shared scan for both directions; only the length
// gate, the subset orientation and the sort order differ. A full
// dictionary scan is unavoidable since any word could be a subset or
// superset of the reference.
func (e *Engine) findSteals(word string, dir Direction) []Steal {
	refCounts := e.countsFor(word)
	var results []Steal

	for _, candidate := range e.words {
		if len(candidate) < MinWordLength {
			continue
		}

		var smaller, larger Counts
		var invalid bool
		switch dir {
		case StealFrom:
			if len(candidate) >= len(word) {
				continue
			}
			smaller, larger = e.counts[candidate], refCounts
			if !IsStrictSubset(smaller, larger) {
				continue
			}
			invalid = e.IsInflection(candidate, word)
		case StealTo:
			if len(candidate) <= len(word) {
				continue
			}
			smaller, larger = refCounts, e.counts[candidate]
			if !IsStrictSubset(smaller, larger) {
				continue
			}
			invalid = e.IsInflection(word, candidate)
		}

		results = append(results, Steal{
			Word:         candidate,
			AddedLetters: AddedLetters(smaller, larger),
			Invalid:      invalid,
		})
	}

	sortSteals(results, dir)
	return results
}

// sortSteals orders valid results before invalid ones, then by length
// (descending for StealFrom, ascending for StealTo), then alphabetically.
func sortSteals(steals []Steal, dir Direction) {
	sort.Slice(steals, func(i, j int) bool {
		a, b := steals[i], steals[j]
		if a.Invalid != b.Invalid {
			return !a.Invalid
		}
		if len(a.Word) != len(b.Word) {
			if dir == StealFrom {
				return len(a.Word) > len(b.Word)
			}
			return len(a.Word) < len(b.Word)
		}
		return a.Word < b.Word
	})
}
