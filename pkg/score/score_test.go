package score

import (
	"testing"
)

func TestAvailable(t *testing.T) {
	// The default build compiles the alignment scorer in; the noalign
	// build is exercised separately.
	if !Available() {
		t.Skip("alignment scorer not compiled in")
	}
	if _, err := NewScorer("SC", Params{}); err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
}

func TestNewScorerEmptyShortform(t *testing.T) {
	if !Available() {
		t.Skip("alignment scorer not compiled in")
	}
	if _, err := NewScorer("", Params{}); err == nil {
		t.Fatal("expected error for empty shortform")
	}
}

func TestExpandingScoreShape(t *testing.T) {
	if !Available() {
		t.Skip("alignment scorer not compiled in")
	}
	scorer, err := NewScorer("SC", Params{})
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}

	tokens := []string{"induc", "stem", "cell"}
	scores := scorer.ExpandingScore(tokens)
	if len(scores) != len(tokens)+1 {
		t.Fatalf("got %d scores, want %d (one per suffix boundary)", len(scores), len(tokens)+1)
	}
	if scores[0] != 0 {
		t.Errorf("empty-suffix score = %v, want 0", scores[0])
	}
}

func TestExpandingScorePrefersMatchingBoundary(t *testing.T) {
	if !Available() {
		t.Skip("alignment scorer not compiled in")
	}
	scorer, err := NewScorer("SC", Params{})
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}

	// The last two tokens spell out "sc"; that boundary must beat both
	// the shorter and the longer candidates.
	scores := scorer.ExpandingScore([]string{"induc", "stem", "cell"})
	if scores[2] <= scores[1] || scores[2] <= scores[3] {
		t.Errorf("boundary 2 should score highest, got %v", scores)
	}
	if scores[2] < 0.999 {
		t.Errorf("exact initialism should score ~1.0, got %v", scores[2])
	}
}

func TestExpandingScoreEmptyTokens(t *testing.T) {
	if !Available() {
		t.Skip("alignment scorer not compiled in")
	}
	scorer, err := NewScorer("SC", Params{})
	if err != nil {
		t.Fatalf("NewScorer: %v", err)
	}
	scores := scorer.ExpandingScore(nil)
	if len(scores) != 1 || scores[0] != 0 {
		t.Errorf("ExpandingScore(nil) = %v, want [0]", scores)
	}
}
