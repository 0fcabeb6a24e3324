package core

import (
	"context"
	"testing"
)

func TestOptimizerThreshold(t *testing.T) {
	// size_term=max(0.15,0.5/sqrt(7))=0.189; range_factor=min(1.5,3/3)=1 -> 0.189
	if got := optimizerThreshold(7, 3); got < 0.15 || got > 0.5 {
		t.Errorf("threshold(7,3) = %v, want in [0.15,0.5]", got)
	}
	// size_term=max(0.15,0.05)=0.15; range_factor=min(1.5,10/3)=1.5 -> 0.225
	if got, want := optimizerThreshold(100, 10), 0.225; abs(got-want) > 1e-9 {
		t.Errorf("threshold(100,10) = %v, want %v", got, want)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// S4-style — 4 players in one tier where a same-tier swap reduces skill_gap
// from 2 to 1 without creating any tier concentration: the optimizer must
// accept it.
func TestOptimizerAcceptsImprovingSameTierSwap(t *testing.T) {
	blue := []RatedPlayer{
		rp("b1", 8, 8, 8),
		rp("b2", 5, 5, 5),
	}
	blue[0].Tier, blue[1].Tier = 1, 1
	blue[0].CompositeRating, blue[1].CompositeRating = 8, 5

	orange := []RatedPlayer{
		rp("o1", 4, 4, 4),
		rp("o2", 5, 5, 5),
	}
	orange[0].Tier, orange[1].Tier = 1, 1
	orange[0].CompositeRating, orange[1].CompositeRating = 4, 5

	tiers := []Tier{{Number: 1, Min: 4, Max: 8, Members: append(append([]RatedPlayer{}, blue...), orange...)}}
	full := append(append([]RatedPlayer{}, blue...), orange...)

	assignment := Assignment{Blue: blue, Orange: orange}
	result, wasOptimized, swaps := OptimizeAssignment(context.Background(), assignment, tiers, full)

	if !wasOptimized {
		t.Fatalf("expected optimization to occur")
	}
	if len(swaps) == 0 {
		t.Fatalf("expected at least one accepted swap")
	}
	finalScore := BalanceScore(result.Blue, result.Orange)
	initialScore := BalanceScore(blue, orange)
	if finalScore >= initialScore {
		t.Errorf("final score %v not improved over initial %v", finalScore, initialScore)
	}
}

func TestIsSwapAcceptablePolicyMatchesS5(t *testing.T) {
	// S5 — the only improving swap would give team A a monopoly on tier 3.
	// improvement 0.05 must be rejected; improvement 0.12 must be accepted.
	if IsSwapAcceptable(fairTag, "tier 3 monopoly: one team holds all 3 members", 0.05) {
		t.Error("improvement 0.05 should be rejected when it introduces a monopoly")
	}
	if !IsSwapAcceptable(fairTag, "tier 3 monopoly: one team holds all 3 members", 0.12) {
		t.Error("improvement 0.12 should be accepted despite introducing a monopoly")
	}
}
