package snatch

import "sort"

// Counts is the letter-frequency multiset of one word. Keys are single
// uppercase letters; values are positive occurrence counts.
type Counts map[byte]int

// CountLetters builds the letter multiset for word. Letters are counted
// as given; callers pass normalized uppercase words.
func CountLetters(word string) Counts {
	c := make(Counts, len(word))
	for i := 0; i < len(word); i++ {
		c[word[i]]++
	}
	return c
}

// Total returns the number of letters in the multiset.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// IsStrictSubset reports whether every letter of smaller occurs in
// larger at least as often, with strictly fewer letters in total.
// An anagram is not a subset: a steal must add at least one letter.
func IsStrictSubset(smaller, larger Counts) bool {
	for letter, n := range smaller {
		if n > larger[letter] {
			return false
		}
	}
	return smaller.Total() < larger.Total()
}

// isSubset is the non-strict variant: per-letter containment only,
// equal multisets allowed.
func isSubset(smaller, larger Counts) bool {
	for letter, n := range smaller {
		if n > larger[letter] {
			return false
		}
	}
	return true
}

// AddedLetters returns the letters present in larger beyond those in
// smaller, sorted alphabetically and joined into a single string.
// Meaningful only when IsStrictSubset(smaller, larger) holds, but never
// fails otherwise: negative differences simply contribute nothing.
func AddedLetters(smaller, larger Counts) string {
	var added []byte
	for letter, n := range larger {
		for d := n - smaller[letter]; d > 0; d-- {
			added = append(added, letter)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	return string(added)
}

// Combine returns the per-letter sum of two multisets.
func Combine(a, b Counts) Counts {
	sum := make(Counts, len(a)+len(b))
	for letter, n := range a {
		sum[letter] += n
	}
	for letter, n := range b {
		sum[letter] += n
	}
	return sum
}

// IsCombinedStrictSubset reports whether the union of a and b is a
// strict letter-subset of target.
func IsCombinedStrictSubset(a, b, target Counts) bool {
	return IsStrictSubset(Combine(a, b), target)
}

// Subtract returns target minus other, clipped at zero per letter.
func Subtract(target, other Counts) Counts {
	diff := make(Counts, len(target))
	for letter, n := range target {
		if d := n - other[letter]; d > 0 {
			diff[letter] = d
		}
	}
	return diff
}
