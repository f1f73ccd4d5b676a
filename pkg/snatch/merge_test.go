package snatch

import (
	"context"
	"reflect"
	"testing"
)

func TestFindMergeStealsTooShort(t *testing.T) {
	engine := testEngine([]string{"CATFISH", "CATS", "FISH"}, nil)

	// CATFISH is 7 letters: below the 9-letter merge minimum, since two
	// 4-letter words plus one added letter cannot fit.
	merges, truncated, err := engine.FindMergeSteals(context.Background(), "CATFISH", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(merges) != 0 || truncated {
		t.Errorf("Expected empty untruncated result, got %d merges (truncated=%v)", len(merges), truncated)
	}
}

func TestFindMergeSteals(t *testing.T) {
	engine := testEngine([]string{"CATFISHES", "CATS", "FISH", "CHAT"}, nil)

	merges, truncated, err := engine.FindMergeSteals(context.Background(), "CATFISHES", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if truncated {
		t.Error("Small dictionary should not truncate")
	}

	var found *MergeSteal
	for i := range merges {
		if merges[i].Word1 == "CATS" && merges[i].Word2 == "FISH" {
			found = &merges[i]
		}
	}
	if found == nil {
		t.Fatalf("CATS+FISH missing from merges: %v", merges)
	}
	if found.AddedLetters != "E" {
		t.Errorf("Expected added letters E, got %q", found.AddedLetters)
	}
	// CATFISHES contains FISH whole: a compound, not a genuine merge.
	if !found.Invalid {
		t.Error("CATS+FISH -> CATFISHES should be flagged as a compound")
	}
}

func TestMergeInvariant(t *testing.T) {
	engine := testEngine([]string{"ABCDEFGHI", "BADC", "FEHG", "CATS", "FISH"}, nil)

	target := "ABCDEFGHI"
	targetCounts := CountLetters(target)
	merges, _, err := engine.FindMergeSteals(context.Background(), target, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(merges) == 0 {
		t.Fatal("Expected at least one merge")
	}

	for _, m := range merges {
		combined := Combine(CountLetters(m.Word1), CountLetters(m.Word2))
		if !IsStrictSubset(combined, targetCounts) {
			t.Errorf("%s+%s is not a strict subset of %s", m.Word1, m.Word2, target)
		}
		rebuilt := Combine(combined, CountLetters(m.AddedLetters))
		if !reflect.DeepEqual(rebuilt, targetCounts) {
			t.Errorf("%s+%s+%q does not rebuild %s exactly", m.Word1, m.Word2, m.AddedLetters, target)
		}
	}
}

func TestMergeValidBeforeInvalid(t *testing.T) {
	// BADC+FEHG is a genuine interleave; ABCD appears whole in the
	// target, so ABCD+FEHG is a compound.
	engine := testEngine([]string{"ABCDEFGHI", "ABCD", "BADC", "FEHG"}, nil)

	merges, _, err := engine.FindMergeSteals(context.Background(), "ABCDEFGHI", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(merges) != 2 {
		t.Fatalf("Expected two merges, got %v", merges)
	}
	if merges[0].Word1 != "BADC" || merges[0].Invalid {
		t.Errorf("Expected valid BADC+FEHG first, got %+v", merges[0])
	}
	if merges[1].Word1 != "ABCD" || !merges[1].Invalid {
		t.Errorf("Expected compound ABCD+FEHG last, got %+v", merges[1])
	}
	if merges[0].AddedLetters != "I" {
		t.Errorf("Expected added letters I, got %q", merges[0].AddedLetters)
	}
}

func TestMergeTruncation(t *testing.T) {
	// Several 4-letter subsets of a 9-letter target guarantee multiple pairs.
	engine := testEngine([]string{"ABCDEFGHI", "BADC", "FEHG", "CBAD", "GFEH"}, nil)

	merges, truncated, err := engine.FindMergeSteals(context.Background(), "ABCDEFGHI", 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(merges) != 1 {
		t.Errorf("Expected the cap to keep 1 result, got %d", len(merges))
	}
	if !truncated {
		t.Error("Capped result set must be reported as truncated")
	}
}

func TestMergeCancellation(t *testing.T) {
	engine := testEngine([]string{"ABCDEFGHI", "BADC", "FEHG"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := engine.FindMergeSteals(ctx, "ABCDEFGHI", 0); err == nil {
		t.Error("Cancelled context should surface an error")
	}
	if _, _, err := engine.FindMergeStealsTo(ctx, "BADC", 0); err == nil {
		t.Error("Cancelled context should surface an error")
	}
}

func TestFindMergeStealsTo(t *testing.T) {
	engine := testEngine([]string{"ABCDEFGHI", "BADC", "FEHG"}, nil)

	merges, truncated, err := engine.FindMergeStealsTo(context.Background(), "FEHG", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if truncated {
		t.Error("Small dictionary should not truncate")
	}
	if len(merges) != 1 {
		t.Fatalf("Expected one merge, got %v", merges)
	}
	m := merges[0]
	if m.OtherWord != "BADC" || m.ResultWord != "ABCDEFGHI" {
		t.Errorf("Expected FEHG+BADC -> ABCDEFGHI, got %+v", m)
	}
	if m.AddedLetters != "I" {
		t.Errorf("Expected added letters I, got %q", m.AddedLetters)
	}
	if m.Invalid {
		t.Error("Neither input appears whole in the target")
	}
}

func TestFindMergeStealsToCompound(t *testing.T) {
	// The target contains the source whole, so every merge into it is a
	// compound.
	engine := testEngine([]string{"CATFISHES", "CATS", "FISH"}, nil)

	merges, _, err := engine.FindMergeStealsTo(context.Background(), "FISH", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, m := range merges {
		if m.ResultWord == "CATFISHES" && !m.Invalid {
			t.Errorf("Merge into CATFISHES should be flagged as compound: %+v", m)
		}
	}
}

func TestFindMergeStealsToWindow(t *testing.T) {
	// Targets longer than source+10 fall outside the search window.
	engine := testEngine([]string{"FEHG", "BADC", "ABCDEFGHIJKLMNO"}, nil)

	merges, _, err := engine.FindMergeStealsTo(context.Background(), "FEHG", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, m := range merges {
		if len(m.ResultWord) > len("FEHG")+10 {
			t.Errorf("Target %s exceeds the length window", m.ResultWord)
		}
	}
}

func TestMergeDeterminism(t *testing.T) {
	engine := testEngine([]string{"ABCDEFGHI", "BADC", "FEHG", "CBAD", "GFEH"}, nil)

	first, _, _ := engine.FindMergeSteals(context.Background(), "ABCDEFGHI", 0)
	second, _, _ := engine.FindMergeSteals(context.Background(), "ABCDEFGHI", 0)
	if !reflect.DeepEqual(first, second) {
		t.Error("Identical calls must yield identical ordered output")
	}
}
