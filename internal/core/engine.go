package core

import (
	"context"
	"math"
)

// BalanceRoster is the package's primary entry point: it runs the full
// pipeline (league statistics, composite rating, tiering, snake draft,
// balance scoring, local-search optimization, confidence estimation, audit
// assembly) over a roster and returns the finished split.
//
// It never fails on a valid roster. The only errors it returns are ingress
// rejections: a non-finite rating field (InvalidRating) or a duplicate
// player identifier (DuplicateIdentifier).
func BalanceRoster(ctx context.Context, roster []Player, rnd RandomSource) (*Result, error) {
	if err := validateIngress(roster); err != nil {
		return nil, err
	}

	if len(roster) == 0 {
		confidenceLevel, confidenceMsg := EstimateConfidence(roster)
		return &Result{
			BlueTeam:          nil,
			OrangeTeam:        nil,
			Tiers:             nil,
			InitialScore:      0,
			OptimizedScore:    0,
			WasOptimized:      false,
			ConfidenceLevel:   confidenceLevel,
			ConfidenceMessage: confidenceMsg,
			Audit:             BuildAudit(nil, nil, nil, BalanceBreakdown{}, nil, 0, nil, nil, confidenceLevel, confidenceMsg),
		}, nil
	}

	stats := ComputeLeagueStats(roster)
	rated := RateRoster(roster, stats)
	sorted, tiers := BuildTiers(rated)

	draft := BuildDraft(tiers, rnd)
	assignment := Assignment{Blue: draft.Blue, Orange: draft.Orange}

	initialBreakdown := BalanceScoreDetailed(assignment.Blue, assignment.Orange)
	initialScore := initialBreakdown.CombinedScore

	optimized, wasOptimized, swaps := OptimizeAssignment(ctx, assignment, tiers, sorted)
	optimizedScore := BalanceScore(optimized.Blue, optimized.Orange)
	if !wasOptimized {
		optimizedScore = initialScore
	}

	confidenceLevel, confidenceMsg := EstimateConfidence(roster)

	audit := BuildAudit(sorted, tiers, draft.Picks, initialBreakdown, swaps, optimizedScore, optimized.Blue, optimized.Orange, confidenceLevel, confidenceMsg)

	return &Result{
		BlueTeam:          optimized.Blue,
		OrangeTeam:        optimized.Orange,
		Tiers:             tiers,
		InitialScore:      initialScore,
		OptimizedScore:    optimizedScore,
		WasOptimized:      wasOptimized,
		ConfidenceLevel:   confidenceLevel,
		ConfidenceMessage: confidenceMsg,
		Audit:             audit,
	}, nil
}

// validateIngress rejects non-finite rating fields and duplicate identifiers
// before any derived computation runs.
func validateIngress(roster []Player) error {
	seen := make(map[PlayerID]bool, len(roster))
	for _, p := range roster {
		if seen[p.ID] {
			return &DuplicateIdentifier{ID: p.ID}
		}
		seen[p.ID] = true

		if err := checkFinite(p.ID, "attack", p.Attack); err != nil {
			return err
		}
		if err := checkFinite(p.ID, "defense", p.Defense); err != nil {
			return err
		}
		if err := checkFinite(p.ID, "game_iq", p.GameIQ); err != nil {
			return err
		}
		if p.Style != nil {
			fields := map[string]float64{
				"style.pace": p.Style.Pace, "style.shooting": p.Style.Shooting,
				"style.passing": p.Style.Passing, "style.dribbling": p.Style.Dribbling,
				"style.defending": p.Style.Defending, "style.physical": p.Style.Physical,
			}
			for name, v := range fields {
				if !math.IsInf(v, 0) && !math.IsNaN(v) {
					continue
				}
				return &InvalidRating{PlayerID: p.ID, Field: name}
			}
		}
		if p.Career != nil {
			if !isFinite(p.Career.WinRate) {
				return &InvalidRating{PlayerID: p.ID, Field: "career.win_rate"}
			}
			if !isFinite(p.Career.GoalDiff) {
				return &InvalidRating{PlayerID: p.ID, Field: "career.goal_diff"}
			}
		}
		if p.Recent != nil {
			if !isFinite(p.Recent.WinRate) {
				return &InvalidRating{PlayerID: p.ID, Field: "recent.win_rate"}
			}
			if !isFinite(p.Recent.GoalDiff) {
				return &InvalidRating{PlayerID: p.ID, Field: "recent.goal_diff"}
			}
		}
	}
	return nil
}

func checkFinite(id PlayerID, field string, v *float64) error {
	if v == nil || isFinite(*v) {
		return nil
	}
	return &InvalidRating{PlayerID: id, Field: field}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
