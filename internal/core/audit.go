package core

import (
	"fmt"
	"strings"
)

// AuditSummary is the executive-summary block of the audit trail.
// @Description Executive summary of one balance run
type AuditSummary struct {
	RatedPlayers  int     `json:"rated_players"`
	TierSizes     []int   `json:"tier_sizes"`
	FinalScore    float64 `json:"final_score"`
	QualityBand   string  `json:"quality_band"`
	SwapCount     int     `json:"swap_count"`
	AdvantageTag  string  `json:"advantage_tag"`
}

// AuditRecord is C9's structured record, emitted once per balance run.
// @Description Full structured audit trail for one balance run
type AuditRecord struct {
	Summary         AuditSummary      `json:"summary"`
	Derivations     []RatedPlayer     `json:"derivations"`
	Tiers           []Tier            `json:"tiers"`
	DraftLog        []DraftPick       `json:"draft_log"`
	InitialBalance  BalanceBreakdown  `json:"initial_balance"`
	Swaps           []SwapRecord      `json:"swaps"`
	Confidence      ConfidenceLevel   `json:"confidence"`
	ConfidenceNote  string            `json:"confidence_note"`
}

// qualityBand labels a combined balance score into a human-readable band.
func qualityBand(score float64) string {
	switch {
	case score <= 0.25:
		return "excellent"
	case score <= 0.5:
		return "good"
	case score <= 1.0:
		return "fair"
	default:
		return "poor"
	}
}

// advantageTag names which side the final split favors, or "even".
func advantageTag(blue, orange []RatedPlayer) string {
	var blueTotal, orangeTotal float64
	for _, p := range blue {
		blueTotal += p.CompositeRating
	}
	for _, p := range orange {
		orangeTotal += p.CompositeRating
	}
	switch {
	case blueTotal > orangeTotal:
		return "blue"
	case orangeTotal > blueTotal:
		return "orange"
	default:
		return "even"
	}
}

// BuildAudit assembles C9's audit record from the outputs of every prior
// stage.
func BuildAudit(derivations []RatedPlayer, tiers []Tier, picks []DraftPick, initialBalance BalanceBreakdown, swaps []SwapRecord, finalScore float64, blue, orange []RatedPlayer, confidence ConfidenceLevel, confidenceNote string) *AuditRecord {
	tierSizes := make([]int, len(tiers))
	for i, t := range tiers {
		tierSizes[i] = len(t.Members)
	}

	return &AuditRecord{
		Summary: AuditSummary{
			RatedPlayers: len(derivations),
			TierSizes:    tierSizes,
			FinalScore:   finalScore,
			QualityBand:  qualityBand(finalScore),
			SwapCount:    len(swaps),
			AdvantageTag: advantageTag(blue, orange),
		},
		Derivations:    derivations,
		Tiers:          tiers,
		DraftLog:       picks,
		InitialBalance: initialBalance,
		Swaps:          swaps,
		Confidence:     confidence,
		ConfidenceNote: confidenceNote,
	}
}

// String renders the audit record as the single text blob §4.9 calls for:
// every required field present and recoverable by a human reader, though the
// structured AuditRecord above is the form callers should prefer to consume.
func (a *AuditRecord) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Balance Audit ===\n")
	fmt.Fprintf(&b, "Players rated: %d\n", a.Summary.RatedPlayers)
	fmt.Fprintf(&b, "Tier sizes: %v\n", a.Summary.TierSizes)
	fmt.Fprintf(&b, "Final score: %.3f (%s)\n", a.Summary.FinalScore, a.Summary.QualityBand)
	fmt.Fprintf(&b, "Swaps applied: %d\n", a.Summary.SwapCount)
	fmt.Fprintf(&b, "Advantage: %s\n\n", a.Summary.AdvantageTag)

	fmt.Fprintf(&b, "--- Derivations ---\n")
	for _, p := range a.Derivations {
		fmt.Fprintf(&b, "%s: base=%.2f attr=%.2f overall=%.2f recent=%.2f momentum=%.2f(%s) composite=%.2f tier=%d\n",
			p.ID, p.BaseSkill, p.AttrScore, p.OverallPerf, p.RecentForm, p.MomentumScore, p.MomentumCategory, p.CompositeRating, p.Tier)
	}

	fmt.Fprintf(&b, "\n--- Tiers ---\n")
	for _, t := range a.Tiers {
		fmt.Fprintf(&b, "tier %d: [%.2f, %.2f] (%d members)\n", t.Number, t.Min, t.Max, len(t.Members))
	}

	fmt.Fprintf(&b, "\n--- Draft log ---\n")
	for _, pick := range a.DraftLog {
		fmt.Fprintf(&b, "tier %d first=%s pick#%d player=%s -> %s adjusted=%v\n",
			pick.TierNumber, pick.FirstPicker, pick.PickIndex, pick.PlayerID, pick.Side, pick.Adjusted)
	}

	fmt.Fprintf(&b, "\n--- Initial balance ---\n")
	fmt.Fprintf(&b, "skill_gap=%.3f attr_gap=%.3f combined=%.3f primary=%s\n",
		a.InitialBalance.SkillGap, a.InitialBalance.AttrGap, a.InitialBalance.CombinedScore, a.InitialBalance.PrimaryFactor)

	fmt.Fprintf(&b, "\n--- Swaps ---\n")
	for _, s := range a.Swaps {
		fmt.Fprintf(&b, "blue=%s orange=%s improvement=%.3f tier=%d result=%.3f\n",
			s.BluePlayer, s.OrangePlayer, s.Improvement, s.Tier, s.ResultScore)
	}

	fmt.Fprintf(&b, "\n--- Confidence ---\n")
	fmt.Fprintf(&b, "%s: %s\n", a.Confidence, a.ConfidenceNote)

	return b.String()
}
