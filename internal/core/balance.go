package core

import "math"

// emptyTeamScore is the sentinel combined score for a split where either
// team is empty, so any nonempty split is always preferred by the optimizer.
const emptyTeamScore = 1000.0

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func meanAttack(team []RatedPlayer) float64 {
	values := make([]float64, len(team))
	for i, p := range team {
		values[i] = p.attackOr()
	}
	return meanOf(values)
}

func meanDefense(team []RatedPlayer) float64 {
	values := make([]float64, len(team))
	for i, p := range team {
		values[i] = p.defenseOr()
	}
	return meanOf(values)
}

func meanGameIQ(team []RatedPlayer) float64 {
	values := make([]float64, len(team))
	for i, p := range team {
		values[i] = p.gameIQOr()
	}
	return meanOf(values)
}

// styleMeans returns the per-team mean of each of the six style dimensions,
// and whether any player on the team carries a style bundle at all.
func styleMeans(team []RatedPlayer) (means StyleAttributes, hasStyle bool) {
	var pace, shooting, passing, dribbling, defending, physical []float64
	for _, p := range team {
		if p.Style == nil {
			continue
		}
		hasStyle = true
		pace = append(pace, p.Style.Pace)
		shooting = append(shooting, p.Style.Shooting)
		passing = append(passing, p.Style.Passing)
		dribbling = append(dribbling, p.Style.Dribbling)
		defending = append(defending, p.Style.Defending)
		physical = append(physical, p.Style.Physical)
	}
	means = StyleAttributes{
		Pace:      meanOf(pace),
		Shooting:  meanOf(shooting),
		Passing:   meanOf(passing),
		Dribbling: meanOf(dribbling),
		Defending: meanOf(defending),
		Physical:  meanOf(physical),
	}
	return means, hasStyle
}

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func maxOf(values ...float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// BalanceScore is C5's plain form: the combined score alone.
func BalanceScore(blue, orange []RatedPlayer) float64 {
	breakdown := BalanceScoreDetailed(blue, orange)
	return breakdown.CombinedScore
}

// BalanceScoreDetailed is C5's detailed form: every per-dimension gap plus
// the primary factor driving the combined score.
func BalanceScoreDetailed(blue, orange []RatedPlayer) BalanceBreakdown {
	if len(blue) == 0 || len(orange) == 0 {
		return BalanceBreakdown{CombinedScore: emptyTeamScore, PrimaryFactor: FactorSkills}
	}

	attackDiff := absDiff(meanAttack(blue), meanAttack(orange))
	defenseDiff := absDiff(meanDefense(blue), meanDefense(orange))
	gameIQDiff := absDiff(meanGameIQ(blue), meanGameIQ(orange))
	skillGap := maxOf(attackDiff, defenseDiff, gameIQDiff)

	blueStyle, blueHasStyle := styleMeans(blue)
	orangeStyle, orangeHasStyle := styleMeans(orange)

	var paceDiff, shootingDiff, passingDiff, dribblingDiff, defendingDiff, physicalDiff, attrGap float64
	if blueHasStyle || orangeHasStyle {
		paceDiff = absDiff(blueStyle.Pace, orangeStyle.Pace) * 10
		shootingDiff = absDiff(blueStyle.Shooting, orangeStyle.Shooting) * 10
		passingDiff = absDiff(blueStyle.Passing, orangeStyle.Passing) * 10
		dribblingDiff = absDiff(blueStyle.Dribbling, orangeStyle.Dribbling) * 10
		defendingDiff = absDiff(blueStyle.Defending, orangeStyle.Defending) * 10
		physicalDiff = absDiff(blueStyle.Physical, orangeStyle.Physical) * 10
		attrGap = maxOf(paceDiff, shootingDiff, passingDiff, dribblingDiff, defendingDiff, physicalDiff)
	}

	combined := 0.8*skillGap + 0.2*attrGap

	var factor PrimaryFactor
	switch {
	case 0.2*attrGap > 0.8*skillGap:
		factor = FactorAttributes
	case 0.2*attrGap > 0.5*0.8*skillGap:
		factor = FactorBoth
	default:
		factor = FactorSkills
	}

	return BalanceBreakdown{
		AttackDiff:    attackDiff,
		DefenseDiff:   defenseDiff,
		GameIQDiff:    gameIQDiff,
		SkillGap:      skillGap,
		PaceDiff:      paceDiff,
		ShootingDiff:  shootingDiff,
		PassingDiff:   passingDiff,
		DribblingDiff: dribblingDiff,
		DefendingDiff: defendingDiff,
		PhysicalDiff:  physicalDiff,
		AttrGap:       attrGap,
		CombinedScore: combined,
		PrimaryFactor: factor,
	}
}
