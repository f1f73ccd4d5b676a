package snatch

import "testing"

func TestParseTag(t *testing.T) {
	testCases := []struct {
		raw      string
		language string
		root     string
	}{
		{"latin:mittere", "latin", "mittere"},
		{"old_english:-", "old_english", ""},
		{"greek:", "greek", ""},
		{"french:ambiguë", "french", "ambiguë"},
	}

	for _, tc := range testCases {
		tag := ParseTag(tc.raw)
		if tag.Language != tc.language || tag.Root != tc.root {
			t.Errorf("ParseTag(%q): expected (%q, %q), got (%q, %q)",
				tc.raw, tc.language, tc.root, tag.Language, tag.Root)
		}
		if tag.String() != tc.raw {
			t.Errorf("ParseTag(%q).String(): got %q", tc.raw, tag.String())
		}
	}
}

func TestShareTriState(t *testing.T) {
	idx := NewEtymologyIndex(map[string][]string{
		"MISSION": {"latin:mittere"},
		"PERMIT":  {"latin:permittere"},
		"WINDOW":  {"old_norse:vindauga"},
		"BLANK":   {},
	})

	testCases := []struct {
		word1       string
		word2       string
		expected    Relation
		description string
	}{
		{"ZZZZ", "YYYY", RelationUnknown, "Both words absent"},
		{"MISSION", "YYYY", RelationUnknown, "One word absent"},
		{"MISSION", "PERMIT", RelationShared, "Fuzzy suffix match on latin roots"},
		{"MISSION", "WINDOW", RelationDistinct, "Different languages"},
		{"MISSION", "BLANK", RelationDistinct, "Empty tag list is known, not unknown"},
		{"MISSION", "MISSION", RelationShared, "Identical tags"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := idx.Share(tc.word1, tc.word2)
			if got != tc.expected {
				t.Errorf("Share(%q, %q): expected %v, got %v", tc.word1, tc.word2, tc.expected, got)
			}
		})
	}
}

func TestTagsMatchRules(t *testing.T) {
	testCases := []struct {
		tag1        string
		tag2        string
		expected    bool
		description string
	}{
		{"latin:figere", "latin:figere", true, "Exact match"},
		{"latin:mittere", "latin:permittere", true, "Root is suffix of longer root"},
		{"latin:permittere", "latin:mittere", true, "Suffix containment is symmetric"},
		{"latin:mittere", "greek:mittere", false, "Languages differ"},
		{"latin:-", "latin:-", true, "Identical unknown-root tags still match exactly"},
		{"latin:-", "latin:mittere", false, "Unknown root never fuzzy-matches"},
		{"latin:re", "latin:re", true, "Short roots match only exactly"},
		{"latin:re", "latin:secure", false, "Fuzzy match needs length >= 3"},
		{"french:ambiguë", "french:ambigue", true, "Diacritics fold to base letters"},
		{"latin:Mittere", "latin:permittere", true, "Case folds before comparing"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := tagsMatch(ParseTag(tc.tag1), ParseTag(tc.tag2))
			if got != tc.expected {
				t.Errorf("tagsMatch(%q, %q): expected %v, got %v", tc.tag1, tc.tag2, tc.expected, got)
			}
		})
	}
}

func TestSharedTags(t *testing.T) {
	idx := NewEtymologyIndex(map[string][]string{
		"MISSION": {"latin:mittere", "french:mission"},
		"PERMIT":  {"latin:permittere"},
		"REMIT":   {"latin:mittere"},
	})

	// Fuzzy match records the shorter of the two matched roots' tags.
	tags := idx.SharedTags("MISSION", "PERMIT")
	if len(tags) != 1 || tags[0] != "latin:mittere" {
		t.Errorf("Expected [latin:mittere], got %v", tags)
	}

	// Exact match records the tag itself, deduplicated.
	tags = idx.SharedTags("MISSION", "REMIT")
	if len(tags) != 1 || tags[0] != "latin:mittere" {
		t.Errorf("Expected [latin:mittere], got %v", tags)
	}

	// No match yields nothing.
	if tags := idx.SharedTags("MISSION", "ZZZZ"); len(tags) != 0 {
		t.Errorf("Expected no shared tags for unknown word, got %v", tags)
	}
}

func TestFoldRoot(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"ambiguë", "ambigue"},
		{"Mittere", "mittere"},
		{"héroïne", "heroine"},
		{"plain", "plain"},
	}

	for _, tc := range testCases {
		if got := foldRoot(tc.in); got != tc.expected {
			t.Errorf("foldRoot(%q): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}
