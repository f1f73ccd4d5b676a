package snatch

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Relation is the tri-state answer to an etymology query.
type Relation int

const (
	// RelationUnknown means at least one word is absent from the table.
	RelationUnknown Relation = iota
	// RelationShared means some tag pair of the two words matched.
	RelationShared
	// RelationDistinct means both words are known and nothing matched.
	RelationDistinct
)

// Tag is one parsed etymology entry. The source encodes tags as
// "language:root" strings, with "-" for an unknown root; parsing happens
// once at load so the search loops never split strings.
type Tag struct {
	Language string
	Root     string

	raw    string
	folded string // lowercased root with diacritics stripped
}

// ParseTag splits a raw "language:root" string into a Tag. A missing or
// "-" root yields an empty Root.
func ParseTag(raw string) Tag {
	tag := Tag{raw: raw}
	idx := strings.IndexByte(raw, ':')
	if idx < 0 {
		tag.Language = raw
		return tag
	}
	tag.Language = raw[:idx]
	root := raw[idx+1:]
	if root == "-" {
		root = ""
	}
	tag.Root = root
	tag.folded = foldRoot(root)
	return tag
}

// String returns the original "language:root" encoding.
func (t Tag) String() string {
	return t.raw
}

// EtymologyIndex answers shared-root queries over the loaded table.
type EtymologyIndex struct {
	tags map[string][]Tag
}

// NewEtymologyIndex parses a word -> raw tag list table, as produced by
// the Wiktionary extraction pipeline, into an index.
func NewEtymologyIndex(table map[string][]string) *EtymologyIndex {
	idx := &EtymologyIndex{tags: make(map[string][]Tag, len(table))}
	for word, raws := range table {
		parsed := make([]Tag, 0, len(raws))
		for _, raw := range raws {
			parsed = append(parsed, ParseTag(raw))
		}
		idx.tags[strings.ToUpper(word)] = parsed
	}
	return idx
}

// Share reports whether two words descend from a common root.
// RelationUnknown is returned when either word has no etymology entry;
// missing data is not an error and callers fall back to affix heuristics.
func (idx *EtymologyIndex) Share(word1, word2 string) Relation {
	tags1, ok1 := idx.tags[word1]
	tags2, ok2 := idx.tags[word2]
	if !ok1 || !ok2 {
		return RelationUnknown
	}
	for _, t1 := range tags1 {
		for _, t2 := range tags2 {
			if tagsMatch(t1, t2) {
				return RelationShared
			}
		}
	}
	return RelationDistinct
}

// SharedTags returns the matched tags for display: the tag itself on an
// exact match, the shorter matched root's tag on a fuzzy match.
// Deduplicated, in discovery order.
func (idx *EtymologyIndex) SharedTags(word1, word2 string) []string {
	tags1 := idx.tags[word1]
	tags2 := idx.tags[word2]

	var shared []string
	seen := make(map[string]struct{})
	record := func(raw string) {
		if _, dup := seen[raw]; dup {
			return
		}
		seen[raw] = struct{}{}
		shared = append(shared, raw)
	}

	for _, t1 := range tags1 {
		for _, t2 := range tags2 {
			if !tagsMatch(t1, t2) {
				continue
			}
			if t1.raw == t2.raw {
				record(t1.raw)
			} else if len(t1.folded) <= len(t2.folded) {
				record(t1.raw)
			} else {
				record(t2.raw)
			}
		}
	}
	return shared
}

// tagsMatch implements the matching rule: identical raw tags match;
// otherwise the languages must agree, both roots must be known, and the
// folded roots (length >= 3) must contain one another as a suffix. The
// suffix rule picks up Latin-affixed cognates where one root is embedded
// in a longer one.
func tagsMatch(t1, t2 Tag) bool {
	if t1.raw == t2.raw {
		return true
	}
	if t1.Language != t2.Language || t1.Root == "" || t2.Root == "" {
		return false
	}
	if len(t1.folded) < 3 || len(t2.folded) < 3 {
		return false
	}
	return strings.HasSuffix(t1.folded, t2.folded) || strings.HasSuffix(t2.folded, t1.folded)
}

// combiningMarks covers the Unicode combining diacritical marks block.
var combiningMarks = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
})

// foldRoot lowercases a root and folds accented letters to their base
// letters via canonical decomposition, so "ambiguë" and "ambigue"
// compare equal.
func foldRoot(root string) string {
	lower := strings.ToLower(root)
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(combiningMarks)), lower)
	if err != nil {
		return lower
	}
	return folded
}
