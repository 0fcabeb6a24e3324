package core

import (
	"context"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func uniformRoster(n int) []Player {
	roster := make([]Player, n)
	for i := 0; i < n; i++ {
		roster[i] = Player{
			ID:          PlayerID(string(rune('a' + i))),
			DisplayName: string(rune('a' + i)),
			Attack:      ptr(5),
			Defense:     ptr(5),
			GameIQ:      ptr(5),
		}
	}
	return roster
}

// S1 — 10 players, all rated 5/5/5, no styles, no history.
func TestScenarioS1UniformRoster(t *testing.T) {
	roster := uniformRoster(10)
	result, err := BalanceRoster(context.Background(), roster, FixedRandomSource(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range result.Audit.Derivations {
		if p.CompositeRating != 5.0 {
			t.Errorf("player %s: composite = %v, want 5.0", p.ID, p.CompositeRating)
		}
	}

	wantSizes := []int{2, 2, 2, 2, 2}
	if len(result.Tiers) != len(wantSizes) {
		t.Fatalf("tier count = %d, want %d", len(result.Tiers), len(wantSizes))
	}
	for i, tier := range result.Tiers {
		if len(tier.Members) != wantSizes[i] {
			t.Errorf("tier %d size = %d, want %d", i+1, len(tier.Members), wantSizes[i])
		}
	}

	if len(result.BlueTeam) != 5 || len(result.OrangeTeam) != 5 {
		t.Errorf("team sizes = %d/%d, want 5/5", len(result.BlueTeam), len(result.OrangeTeam))
	}

	if result.OptimizedScore > 1e-9 {
		t.Errorf("optimized score = %v, want <= 1e-9", result.OptimizedScore)
	}

	if result.ConfidenceLevel != ConfidenceLow {
		t.Errorf("confidence = %v, want low", result.ConfidenceLevel)
	}
}

// S2 — 18 players: tier sizes must equal [4,4,3,4,3]; final team sizes 9/9.
func TestScenarioS2EighteenPlayers(t *testing.T) {
	roster := uniformRoster(18)
	result, err := BalanceRoster(context.Background(), roster, FixedRandomSource(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSizes := []int{4, 4, 3, 4, 3}
	if len(result.Tiers) != len(wantSizes) {
		t.Fatalf("tier count = %d, want %d", len(result.Tiers), len(wantSizes))
	}
	for i, tier := range result.Tiers {
		if len(tier.Members) != wantSizes[i] {
			t.Errorf("tier %d size = %d, want %d", i+1, len(tier.Members), wantSizes[i])
		}
	}

	if len(result.BlueTeam) != 9 || len(result.OrangeTeam) != 9 {
		t.Errorf("team sizes = %d/%d, want 9/9", len(result.BlueTeam), len(result.OrangeTeam))
	}
}

// S3 — a player with career win rate 0.10 (20 games) receives the
// catastrophic subtractor and ends up strictly below base*(1-0.12*0.4).
func TestScenarioS3CatastrophicPenalty(t *testing.T) {
	roster := uniformRoster(12)
	roster[0].Career = &CareerStats{TotalGames: 20, WinRate: 0.10, GoalDiff: 0}

	stats := ComputeLeagueStats(roster)
	rated := RateRoster(roster, stats)

	target := rated[0]
	bound := target.BaseSkill * (1 - 0.12*0.4)
	if target.CompositeRating >= bound {
		t.Errorf("composite = %v, want strictly less than %v", target.CompositeRating, bound)
	}
}

// S6 — zero style-attribute bundles: attr_gap = 0, combined = 0.8*skill_gap,
// and every player's attribute adjustment is 0.
func TestScenarioS6NoStyleBundles(t *testing.T) {
	roster := uniformRoster(10)
	stats := ComputeLeagueStats(roster)
	rated := RateRoster(roster, stats)

	for _, p := range rated {
		if p.AttrAdjustment != 0 {
			t.Errorf("player %s: attr adjustment = %v, want 0", p.ID, p.AttrAdjustment)
		}
	}

	_, tiers := BuildTiers(rated)
	draft := BuildDraft(tiers, FixedRandomSource(false))
	breakdown := BalanceScoreDetailed(draft.Blue, draft.Orange)
	if breakdown.AttrGap != 0 {
		t.Errorf("attr_gap = %v, want 0", breakdown.AttrGap)
	}
	if breakdown.CombinedScore != 0.8*breakdown.SkillGap {
		t.Errorf("combined = %v, want 0.8*skill_gap (%v)", breakdown.CombinedScore, 0.8*breakdown.SkillGap)
	}
}

// Invariant 1 & 2: conservation and near-equal sizes across a range of
// roster sizes.
func TestInvariantConservationAndSizes(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 10, 11, 14, 18, 20, 23, 37} {
		roster := uniformRoster(n)
		result, err := BalanceRoster(context.Background(), roster, FixedRandomSource(false))
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}

		if len(result.BlueTeam)+len(result.OrangeTeam) != n {
			t.Errorf("n=%d: total assigned = %d, want %d", n, len(result.BlueTeam)+len(result.OrangeTeam), n)
		}

		seen := make(map[PlayerID]bool)
		for _, p := range result.BlueTeam {
			if seen[p.ID] {
				t.Errorf("n=%d: player %s appears twice", n, p.ID)
			}
			seen[p.ID] = true
		}
		for _, p := range result.OrangeTeam {
			if seen[p.ID] {
				t.Errorf("n=%d: player %s appears on both teams", n, p.ID)
			}
			seen[p.ID] = true
		}

		diff := len(result.BlueTeam) - len(result.OrangeTeam)
		if diff < 0 {
			diff = -diff
		}
		if diff > 1 {
			t.Errorf("n=%d: team size gap = %d, want <= 1", n, diff)
		}
	}
}

// Invariant 3 & 4: tier monotonicity and tier-stamp consistency.
func TestInvariantTierMonotonicityAndStamps(t *testing.T) {
	roster := make([]Player, 23)
	for i := range roster {
		v := float64(i % 10)
		roster[i] = Player{ID: PlayerID(string(rune('a' + i))), Attack: ptr(v), Defense: ptr(v), GameIQ: ptr(v)}
	}

	stats := ComputeLeagueStats(roster)
	rated := RateRoster(roster, stats)
	sorted, tiers := BuildTiers(rated)

	byID := make(map[PlayerID]RatedPlayer, len(sorted))
	for _, p := range sorted {
		byID[p.ID] = p
	}

	for i := 0; i < len(tiers)-1; i++ {
		lowOfI := tiers[i].Min
		highOfNext := tiers[i+1].Max
		if lowOfI < highOfNext {
			t.Errorf("tier %d min (%v) < tier %d max (%v)", i+1, lowOfI, i+2, highOfNext)
		}
	}

	for _, tier := range tiers {
		for _, m := range tier.Members {
			if byID[m.ID].Tier != tier.Number {
				t.Errorf("player %s: stamped tier %d, want %d", m.ID, byID[m.ID].Tier, tier.Number)
			}
		}
	}
}

// Invariant 5, 6 & 7: optimizer never worsens the score, every accepted
// swap has strictly positive improvement, and the swap count never exceeds
// the safety cap.
func TestInvariantOptimizerMonotonicityAndCap(t *testing.T) {
	roster := make([]Player, 40)
	for i := range roster {
		v := float64((i*7)%10) + 1
		id := string(rune('a'+i%26)) + string(rune('A'+i/26))
		roster[i] = Player{ID: PlayerID(id), Attack: ptr(v), Defense: ptr(10 - v), GameIQ: ptr(v)}
	}

	result, err := BalanceRoster(context.Background(), roster, FixedRandomSource(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OptimizedScore > result.InitialScore {
		t.Errorf("optimized score %v > initial score %v", result.OptimizedScore, result.InitialScore)
	}

	if len(result.Audit.Swaps) > 100 {
		t.Errorf("swap count = %d, want <= 100", len(result.Audit.Swaps))
	}
	for _, s := range result.Audit.Swaps {
		if s.Improvement <= 0 {
			t.Errorf("swap %s<->%s improvement = %v, want > 0", s.BluePlayer, s.OrangePlayer, s.Improvement)
		}
	}
}

// Invariant 8: determinism under a fixed random bit.
func TestInvariantDeterminism(t *testing.T) {
	roster := uniformRoster(14)
	roster[3].Style = &StyleAttributes{Pace: 0.8, Shooting: 0.6, Passing: 0.7, Dribbling: 0.5, Defending: 0.4, Physical: 0.6}

	r1, err := BalanceRoster(context.Background(), roster, FixedRandomSource(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := BalanceRoster(context.Background(), roster, FixedRandomSource(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r1.BlueTeam) != len(r2.BlueTeam) || len(r1.OrangeTeam) != len(r2.OrangeTeam) {
		t.Fatalf("team sizes differ between runs")
	}
	for i := range r1.BlueTeam {
		if r1.BlueTeam[i].ID != r2.BlueTeam[i].ID {
			t.Errorf("blue[%d] = %s, want %s", i, r2.BlueTeam[i].ID, r1.BlueTeam[i].ID)
		}
	}
	if r1.OptimizedScore != r2.OptimizedScore {
		t.Errorf("optimized score differs: %v vs %v", r1.OptimizedScore, r2.OptimizedScore)
	}
}

// Invariant 9: normalization idempotence between fraction and percentage
// win-rate representations.
func TestInvariantNormalizationIdempotence(t *testing.T) {
	fraction := Player{ID: "p", Attack: ptr(6), Defense: ptr(6), GameIQ: ptr(6),
		Career: &CareerStats{TotalGames: 40, WinRate: 0.65, GoalDiff: 10}}
	percentage := Player{ID: "p", Attack: ptr(6), Defense: ptr(6), GameIQ: ptr(6),
		Career: &CareerStats{TotalGames: 40, WinRate: 65, GoalDiff: 10}}

	stats := LeagueStats{Mean: 5, Std: 1, Min: 5, Max: 5}
	rFraction := RatePlayer(fraction, stats)
	rPercentage := RatePlayer(percentage, stats)

	if rFraction.CompositeRating != rPercentage.CompositeRating {
		t.Errorf("fraction composite = %v, percentage composite = %v, want equal",
			rFraction.CompositeRating, rPercentage.CompositeRating)
	}
}

// Invariant 10: decreasing a career win rate further below 0.3 strictly
// decreases the composite rating, holding everything else fixed.
func TestInvariantCatastrophicPenaltyMonotone(t *testing.T) {
	stats := LeagueStats{Mean: 5, Std: 1, Min: 5, Max: 5}
	base := Player{ID: "p", Attack: ptr(6), Defense: ptr(6), GameIQ: ptr(6),
		Recent: &RecentStats{WinRate: 0.5, GoalDiff: 0}}

	winRates := []float64{0.29, 0.20, 0.10, 0.05}
	var prev float64
	for i, wr := range winRates {
		p := base
		p.Career = &CareerStats{TotalGames: 40, WinRate: wr, GoalDiff: 0}
		rated := RatePlayer(p, stats)
		if i > 0 && rated.CompositeRating >= prev {
			t.Errorf("win_rate=%v composite=%v, want strictly less than previous %v", wr, rated.CompositeRating, prev)
		}
		prev = rated.CompositeRating
	}
}

func TestEmptyRoster(t *testing.T) {
	result, err := BalanceRoster(context.Background(), nil, FixedRandomSource(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.BlueTeam) != 0 || len(result.OrangeTeam) != 0 {
		t.Errorf("expected empty teams")
	}
	if result.InitialScore != 0 || result.OptimizedScore != 0 {
		t.Errorf("expected zero scores, got initial=%v optimized=%v", result.InitialScore, result.OptimizedScore)
	}
	if result.ConfidenceLevel != ConfidenceLow {
		t.Errorf("confidence = %v, want low for an empty roster", result.ConfidenceLevel)
	}
}

func TestIngressRejectsNonFiniteRating(t *testing.T) {
	nan := func() *float64 { v := 0.0; v = v / v; return &v }
	roster := []Player{{ID: "p1", Attack: nan()}}

	_, err := BalanceRoster(context.Background(), roster, FixedRandomSource(false))
	if err == nil {
		t.Fatal("expected an error for a non-finite rating field")
	}
	invalid, ok := err.(*InvalidRating)
	if !ok {
		t.Fatalf("expected *InvalidRating, got %T", err)
	}
	if invalid.PlayerID != "p1" || invalid.Field != "attack" {
		t.Errorf("got %+v", invalid)
	}
}

func TestIngressRejectsDuplicateIdentifier(t *testing.T) {
	roster := []Player{
		{ID: "dup", Attack: ptr(5)},
		{ID: "dup", Attack: ptr(6)},
	}

	_, err := BalanceRoster(context.Background(), roster, FixedRandomSource(false))
	if err == nil {
		t.Fatal("expected an error for a duplicate identifier")
	}
	if _, ok := err.(*DuplicateIdentifier); !ok {
		t.Fatalf("expected *DuplicateIdentifier, got %T", err)
	}
}
