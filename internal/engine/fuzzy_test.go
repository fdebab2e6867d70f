package engine

import (
	"fmt"
	"testing"
)

func TestFuzzyScoreEmptyInputs(t *testing.T) {
	if s := FuzzyScore("", "The Matrix"); s != 0 {
		t.Errorf("empty query should score 0, got %f", s)
	}
	if s := FuzzyScore("matrix", ""); s != 0 {
		t.Errorf("empty target should score 0, got %f", s)
	}
}

func TestFuzzyScoreExactMatch(t *testing.T) {
	score := FuzzyScore("inception", "Inception")

	// 9 matched chars + prefix bonus 2*9 + exact bonus 10
	expected := 9.0 + 18.0 + 10.0
	if score != expected {
		t.Errorf("expected %f for exact match, got %f", expected, score)
	}
}

func TestFuzzyScoreExactBeatsSupersequence(t *testing.T) {
	exact := FuzzyScore("matrix", "matrix")
	longer := FuzzyScore("matrix", "matrixes")
	scattered := FuzzyScore("matrix", "m a t r i x")

	if exact < longer {
		t.Errorf("exact match %f should beat supersequence %f", exact, longer)
	}
	if exact < scattered {
		t.Errorf("exact match %f should beat scattered match %f", exact, scattered)
	}

	fmt.Printf("  exact: %.2f, supersequence: %.2f, scattered: %.2f\n", exact, longer, scattered)
}

func TestFuzzyScoreCaseInsensitive(t *testing.T) {
	if FuzzyScore("MATRIX", "the matrix") != FuzzyScore("matrix", "The Matrix") {
		t.Error("scoring should be case-insensitive")
	}
}

func TestFuzzyScoreOutOfOrder(t *testing.T) {
	// Only the in-order prefix earns credit: "xirtam" against "matrix"
	// can align just one run.
	reversed := FuzzyScore("xirtam", "matrix")
	inOrder := FuzzyScore("matrix", "matrix")

	if reversed >= inOrder {
		t.Errorf("out-of-order query %f should score below in-order %f", reversed, inOrder)
	}
}

func TestFuzzyScoreNeverNegative(t *testing.T) {
	// A query with no overlap accrues only penalties; result clamps at 0.
	if s := FuzzyScore("zzzz", "The Matrix"); s != 0 {
		t.Errorf("expected clamp to 0, got %f", s)
	}
}
