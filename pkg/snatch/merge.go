package snatch

import (
	"context"
	"sort"
)

// MergeSteal is a merge-to-target result: two dictionary words whose
// combined letters plus AddedLetters rearrange exactly into the target.
// Invalid marks merges where the target is just a compound containing
// one of the inputs whole.
type MergeSteal struct {
	Word1        string
	Word2        string
	AddedLetters string
	Invalid      bool
}

// MergeStealTo is a merge-with-source result: combining the source word
// with OtherWord plus AddedLetters makes ResultWord.
type MergeStealTo struct {
	OtherWord    string
	ResultWord   string
	AddedLetters string
	Invalid      bool
}

// mergeToUpperBound limits how many letters a merge-with target may add
// over the source; it bounds the otherwise quadratic scan.
const mergeToUpperBound = 10

// FindMergeSteals finds pairs of dictionary words that merge, with at
// least one added letter, into the target word. The scan stops as soon
// as maxResults pairs are found; the second return value reports that
// truncation, so a capped result set is never mistaken for an exhaustive
// one. Truncation applies in discovery order, before sorting.
func (e *Engine) FindMergeSteals(ctx context.Context, target string, maxResults int) ([]MergeSteal, bool, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(target) < MinMergeLength {
		return nil, false, nil
	}

	targetCounts := e.countsFor(target)

	// One filter pass keeps only words short enough to leave room for a
	// second minimum-length word, whose letters all fit in the target.
	maxCandidateLen := len(target) - MinWordLength - 1
	var candidates []string
	for _, w := range e.words {
		if len(w) < MinWordLength || len(w) > maxCandidateLen {
			continue
		}
		if isSubset(e.counts[w], targetCounts) {
			candidates = append(candidates, w)
		}
	}

	var results []MergeSteal
	seen := make(map[string]struct{})
	truncated := false

scan:
	for i := 0; i < len(candidates); i++ {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		w1 := candidates[i]
		c1 := e.counts[w1]
		for j := i + 1; j < len(candidates); j++ {
			w2 := candidates[j]
			if len(w1)+len(w2) >= len(target) {
				continue
			}
			combined := Combine(c1, e.counts[w2])
			if !IsStrictSubset(combined, targetCounts) {
				continue
			}

			key := pairKey(w1, w2)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			results = append(results, MergeSteal{
				Word1:        w1,
				Word2:        w2,
				AddedLetters: AddedLetters(combined, targetCounts),
				Invalid:      IsCompoundContaining(w1, w2, target),
			})
			if len(results) >= maxResults {
				truncated = true
				break scan
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Invalid != b.Invalid {
			return !a.Invalid
		}
		// Longer pairs mean fewer added letters, the tighter merge.
		la, lb := len(a.Word1)+len(a.Word2), len(b.Word1)+len(b.Word2)
		if la != lb {
			return la > lb
		}
		if a.Word1 != b.Word1 {
			return a.Word1 < b.Word1
		}
		return a.Word2 < b.Word2
	})
	return results, truncated, nil
}

// FindMergeStealsTo finds, for a source word, every dictionary word it
// can merge into together with some other dictionary word. Target
// lengths are windowed to [len(source)+MinWordLength+1,
// len(source)+mergeToUpperBound] to bound the quadratic cost. The same
// truncation contract as FindMergeSteals applies.
func (e *Engine) FindMergeStealsTo(ctx context.Context, source string, maxResults int) ([]MergeStealTo, bool, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	sourceCounts := e.countsFor(source)
	minTargetLen := len(source) + MinWordLength + 1
	maxTargetLen := len(source) + mergeToUpperBound

	var results []MergeStealTo
	truncated := false

scan:
	for _, target := range e.words {
		if len(target) < minTargetLen || len(target) > maxTargetLen {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		targetCounts := e.counts[target]
		if !isSubset(sourceCounts, targetCounts) {
			continue
		}

		remaining := Subtract(targetCounts, sourceCounts)
		remainingLen := remaining.Total()

		for _, other := range e.words {
			if len(other) < MinWordLength || len(other) >= remainingLen {
				continue
			}
			otherCounts := e.counts[other]
			if !isSubset(otherCounts, remaining) {
				continue
			}
			added := AddedLetters(Combine(sourceCounts, otherCounts), targetCounts)
			if added == "" {
				continue
			}

			results = append(results, MergeStealTo{
				OtherWord:    other,
				ResultWord:   target,
				AddedLetters: added,
				Invalid:      IsCompoundContaining(source, other, target),
			})
			if len(results) >= maxResults {
				truncated = true
				break scan
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Invalid != b.Invalid {
			return !a.Invalid
		}
		if len(a.ResultWord) != len(b.ResultWord) {
			return len(a.ResultWord) < len(b.ResultWord)
		}
		if len(a.OtherWord) != len(b.OtherWord) {
			return len(a.OtherWord) > len(b.OtherWord)
		}
		if a.ResultWord != b.ResultWord {
			return a.ResultWord < b.ResultWord
		}
		return a.OtherWord < b.OtherWord
	})
	return results, truncated, nil
}

// pairKey builds an order-independent key for an unordered word pair.
func pairKey(w1, w2 string) string {
	if w1 < w2 {
		return w1 + "|" + w2
	}
	return w2 + "|" + w1
}
