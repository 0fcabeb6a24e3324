package core

import "math"

// Fixed composite-rating weights (§4.2). These are not configurable: the
// spec treats them as constants of the scoring function, not tunables.
const (
	wSkill    = 0.60
	wAttr     = 0.20
	wOverall  = 0.12
	wRecent   = 0.08
	wMomentum = 0.10
)

// experienceThreshold is the minimum number of career games before history is
// trusted; below it, neutral values are substituted for both career and
// recent performance.
const experienceThreshold = 10

const catastrophicWinRateFloor = 0.3

// normalizeWinRate converts a win rate expressed either as a fraction in
// [0,1] or a percentage in (1,100] into a fraction. Values above 1 are
// treated as percentages per §6's numeric semantics.
func normalizeWinRate(v float64) float64 {
	if v > 1 {
		return v / 100
	}
	return v
}

// linearNormalize maps v in [-bound, bound] onto [0,1], clamping outside it.
func linearNormalize(v, bound float64) float64 {
	norm := (v + bound) / (2 * bound)
	return clamp(norm, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// performanceInputs is the normalized {win_rate, goal_diff_normalized} pair
// used for both career and recent performance.
type performanceInputs struct {
	winRate        float64
	goalDiffNorm   float64
}

// deriveCareerRecent applies the experience-threshold substitution and
// normalization rules of §4.2 step 3.
func deriveCareerRecent(p Player) (career, recent performanceInputs) {
	insufficientHistory := p.Career == nil || p.Career.TotalGames < experienceThreshold
	if insufficientHistory {
		return performanceInputs{winRate: 0.5, goalDiffNorm: linearNormalize(0, 50)},
			performanceInputs{winRate: 0.5, goalDiffNorm: linearNormalize(0, 20)}
	}

	career = performanceInputs{
		winRate:      normalizeWinRate(p.Career.WinRate),
		goalDiffNorm: linearNormalize(p.Career.GoalDiff, 50),
	}

	recentStats := RecentStats{WinRate: 0.5, GoalDiff: 0}
	if p.Recent != nil {
		recentStats = *p.Recent
	}
	recent = performanceInputs{
		winRate:      normalizeWinRate(recentStats.WinRate),
		goalDiffNorm: linearNormalize(recentStats.GoalDiff, 20),
	}
	return career, recent
}

// rawCareerWinRate returns the career win rate used for the catastrophic
// penalty check (§4.2 step 6), which is evaluated against the *normalized*
// win rate regardless of whether history is sufficient (an insufficient
// history never triggers the penalty since it's pinned at the neutral 0.5).
func rawCareerWinRate(p Player) float64 {
	if p.Career == nil || p.Career.TotalGames < experienceThreshold {
		return 0.5
	}
	return normalizeWinRate(p.Career.WinRate)
}

func rawRecentWinRate(p Player) float64 {
	if p.Career == nil || p.Career.TotalGames < experienceThreshold {
		return 0.5
	}
	if p.Recent == nil {
		return 0.5
	}
	return normalizeWinRate(p.Recent.WinRate)
}

// momentum computes the momentum score/category/adjustment from the delta
// between recent form and overall performance (§4.2 step 5).
func momentum(overallPerf, recentForm float64) (score float64, category MomentumCategory, adjustment float64) {
	delta := recentForm - overallPerf
	score = delta

	if math.Abs(delta) < 0.1 {
		return score, MomentumSteady, 0
	}

	scale := math.Min(math.Abs(delta)/0.3, 1)
	if delta > 0 {
		return score, MomentumHot, scale * 0.05
	}
	return score, MomentumCold, -scale * 0.03
}

// attributeAdjustment computes attr_adj from §4.2 step 7.
func attributeAdjustment(attrScore float64, stats LeagueStats) float64 {
	if stats.Std > 0 {
		z := clamp((attrScore-stats.Mean)/stats.Std, -2, 2)
		return 0.15 * z
	}
	denom := math.Max(1, stats.Max-stats.Min)
	return ((attrScore - stats.Mean) / denom) * 0.3
}

// RateRoster is C2: it computes every derived value for each player in the
// roster given the population style-attribute statistics (C1's output).
// Pure and total: it never fails and every output field is finite for any
// finite input.
func RateRoster(roster []Player, stats LeagueStats) []RatedPlayer {
	rated := make([]RatedPlayer, len(roster))
	for i, p := range roster {
		rated[i] = RatePlayer(p, stats)
	}
	return rated
}

// RatePlayer runs the full C2 derivation for a single player.
func RatePlayer(p Player, stats LeagueStats) RatedPlayer {
	base := (p.attackOr() + p.defenseOr() + p.gameIQOr()) / 3

	var attrScore float64
	if p.Style != nil {
		attrScore = styleAttrScore(*p.Style)
	}

	career, recent := deriveCareerRecent(p)
	overallPerf := 0.7*career.winRate + 0.3*career.goalDiffNorm
	recentForm := 0.7*recent.winRate + 0.3*recent.goalDiffNorm

	momentumScore, momentumCategory, momentumAdj := momentum(overallPerf, recentForm)

	overallAdj := 2 * (overallPerf - 0.5)
	recentAdj := 2 * (recentForm - 0.5)

	careerWinRate := rawCareerWinRate(p)
	if careerWinRate < catastrophicWinRateFloor {
		overallAdj -= 2 * (catastrophicWinRateFloor - careerWinRate)
	}
	recentWinRate := rawRecentWinRate(p)
	if recentWinRate < catastrophicWinRateFloor {
		recentAdj -= 2 * (catastrophicWinRateFloor - recentWinRate)
	}

	var attrAdj float64
	if p.Style != nil {
		attrAdj = attributeAdjustment(attrScore, stats)
	}

	// wSkill is not applied as a separate term: base skill already dominates
	// the composite by being the outer multiplicand, per §4.2 step 8.
	composite := base * (1 + wAttr*attrAdj + wOverall*overallAdj + wRecent*recentAdj + wMomentum*momentumAdj)

	return RatedPlayer{
		Player:           p,
		BaseSkill:        base,
		AttrScore:        attrScore,
		AttrAdjustment:   attrAdj,
		OverallPerf:      overallPerf,
		RecentForm:       recentForm,
		MomentumScore:    momentumScore,
		MomentumCategory: momentumCategory,
		CompositeRating:  composite,
	}
}
