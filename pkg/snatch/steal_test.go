package snatch

import (
	"reflect"
	"testing"
)

func TestFindStealsFrom(t *testing.T) {
	engine := testEngine([]string{"PLANE", "LANE", "PLAN", "PANE", "ALE", "PLANES"}, nil)

	steals := engine.FindStealsFrom("PLANE")

	// ALE is below the minimum word length; PLANES is longer than the
	// reference; the rest are strict subsets.
	expected := []Steal{
		{Word: "LANE", AddedLetters: "P"},
		{Word: "PANE", AddedLetters: "L"},
		{Word: "PLAN", AddedLetters: "E"},
	}
	if !reflect.DeepEqual(steals, expected) {
		t.Errorf("FindStealsFrom(PLANE):\nexpected %v\ngot      %v", expected, steals)
	}
}

func TestFindStealsFromTieBreak(t *testing.T) {
	engine := testEngine([]string{"PLANE", "LANE", "PLAN"}, nil)

	steals := engine.FindStealsFrom("PLANE")
	if len(steals) != 2 {
		t.Fatalf("Expected 2 steals, got %d", len(steals))
	}
	// Equal length, both valid: alphabetical order breaks the tie.
	if steals[0].Word != "LANE" || steals[1].Word != "PLAN" {
		t.Errorf("Expected LANE before PLAN, got %s before %s", steals[0].Word, steals[1].Word)
	}
}

func TestFindStealsToMarksInflections(t *testing.T) {
	engine := testEngine([]string{"CAT", "CATS", "TACT"}, nil)

	steals := engine.FindStealsTo("CAT")
	var cats *Steal
	for i := range steals {
		if steals[i].Word == "CATS" {
			cats = &steals[i]
		}
	}
	if cats == nil {
		t.Fatal("CATS missing from FindStealsTo(CAT)")
	}
	if !cats.Invalid {
		t.Error("CATS should be flagged invalid: plural of CAT")
	}
	if cats.AddedLetters != "S" {
		t.Errorf("Expected added letters S, got %q", cats.AddedLetters)
	}
}

func TestStealOrderingValidFirst(t *testing.T) {
	// CATS is an inflection of CAT; SCAT is a genuine rearrangement.
	engine := testEngine([]string{"CATS", "SCAT", "CAT"}, nil)

	steals := engine.FindStealsTo("CAT")
	if len(steals) != 2 {
		t.Fatalf("Expected 2 steals, got %d", len(steals))
	}
	if steals[0].Word != "SCAT" || steals[0].Invalid {
		t.Errorf("Expected valid SCAT first, got %+v", steals[0])
	}
	if steals[1].Word != "CATS" || !steals[1].Invalid {
		t.Errorf("Expected invalid CATS last, got %+v", steals[1])
	}
}

func TestFindStealsToOrdersByLengthAscending(t *testing.T) {
	engine := testEngine([]string{"RAGE", "GRAVE", "GARAGES", "AVERAGE"}, nil)

	steals := engine.FindStealsTo("RAGE")
	if len(steals) < 2 {
		t.Fatalf("Expected at least 2 steals, got %d", len(steals))
	}
	for i := 1; i < len(steals); i++ {
		if steals[i-1].Invalid == steals[i].Invalid && len(steals[i-1].Word) > len(steals[i].Word) {
			t.Errorf("Length order violated: %s before %s", steals[i-1].Word, steals[i].Word)
		}
	}
}

func TestStealSymmetry(t *testing.T) {
	words := []string{"CAT", "CATS", "SCAT", "TACKS", "STACK", "PLANE", "LANE", "PANEL", "PLAN"}
	engine := testEngine(words, nil)

	for _, b := range words {
		fromResults := engine.FindStealsFrom(b)
		for _, fr := range fromResults {
			a := fr.Word
			toResults := engine.FindStealsTo(a)
			var match *Steal
			for i := range toResults {
				if toResults[i].Word == b {
					match = &toResults[i]
				}
			}
			if match == nil {
				t.Errorf("%s in FindStealsFrom(%s) but %s not in FindStealsTo(%s)", a, b, b, a)
				continue
			}
			if match.AddedLetters != fr.AddedLetters {
				t.Errorf("Added letters differ for (%s, %s): %q vs %q", a, b, fr.AddedLetters, match.AddedLetters)
			}
			if match.Invalid != fr.Invalid {
				t.Errorf("Invalid flag differs for (%s, %s)", a, b)
			}
		}
	}
}

func TestStealSubsetInvariant(t *testing.T) {
	words := []string{"PLANE", "LANE", "PLAN", "PANE", "PLANES", "PANELS"}
	engine := testEngine(words, nil)

	for _, ref := range words {
		refCounts := CountLetters(ref)
		for _, st := range engine.FindStealsFrom(ref) {
			base := CountLetters(st.Word)
			if !IsStrictSubset(base, refCounts) {
				t.Errorf("%s is not a strict subset of %s", st.Word, ref)
			}
			rebuilt := Combine(base, CountLetters(st.AddedLetters))
			if !reflect.DeepEqual(rebuilt, refCounts) {
				t.Errorf("%s + %q does not rebuild %s exactly", st.Word, st.AddedLetters, ref)
			}
		}
	}
}

func TestStealMinLengthGate(t *testing.T) {
	engine := testEngine([]string{"CAT", "SCAT", "CATS"}, nil)

	for _, st := range engine.FindStealsFrom("SCAT") {
		if len(st.Word) < MinWordLength {
			t.Errorf("Candidate %s is below the minimum word length", st.Word)
		}
	}
}

func TestStealDeterminism(t *testing.T) {
	engine := testEngine([]string{"PLANE", "LANE", "PLAN", "PANE", "PANEL", "PLANES"}, nil)

	first := engine.FindStealsFrom("PLANES")
	second := engine.FindStealsFrom("PLANES")
	if !reflect.DeepEqual(first, second) {
		t.Error("Identical calls must yield identical ordered output")
	}
}
