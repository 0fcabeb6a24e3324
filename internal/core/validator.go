package core

import (
	"fmt"
	"sort"
)

// bottomConcentrationSpread is the composite-rating spread within a tier
// above which the two lowest-rated members are checked for concentration.
const bottomConcentrationSpread = 1.5

// swapImprovementFloor is the minimum improvement required to accept a swap
// that introduces or changes a distribution violation.
const swapImprovementFloor = 0.10

// ValidateDistribution is C6: it checks the tier-distribution fairness rules
// against a team assignment and returns "FAIR" or a message describing the
// first violation found.
func ValidateDistribution(assignment Assignment, tiers []Tier) string {
	blueSet := make(map[PlayerID]bool, len(assignment.Blue))
	for _, p := range assignment.Blue {
		blueSet[p.ID] = true
	}
	orangeSet := make(map[PlayerID]bool, len(assignment.Orange))
	for _, p := range assignment.Orange {
		orangeSet[p.ID] = true
	}

	for _, tier := range tiers {
		if len(tier.Members) < 2 {
			continue
		}

		blueCount, orangeCount := 0, 0
		for _, m := range tier.Members {
			if blueSet[m.ID] {
				blueCount++
			} else if orangeSet[m.ID] {
				orangeCount++
			}
		}

		if blueCount == len(tier.Members) || orangeCount == len(tier.Members) {
			return fmt.Sprintf("tier %d monopoly: one team holds all %d members", tier.Number, len(tier.Members))
		}

		if len(tier.Members) >= 3 {
			spread := tier.Max - tier.Min
			if spread > bottomConcentrationSpread {
				sorted := make([]RatedPlayer, len(tier.Members))
				copy(sorted, tier.Members)
				sort.Slice(sorted, func(i, j int) bool {
					return sorted[i].CompositeRating < sorted[j].CompositeRating
				})
				lowest, secondLowest := sorted[0], sorted[1]

				bothBlue := blueSet[lowest.ID] && blueSet[secondLowest.ID]
				bothOrange := orangeSet[lowest.ID] && orangeSet[secondLowest.ID]
				if bothBlue || bothOrange {
					return fmt.Sprintf("tier %d bottom concentration: %s and %s held by the same team",
						tier.Number, lowest.ID, secondLowest.ID)
				}
			}
		}
	}

	return "FAIR"
}

const fairTag = "FAIR"

// IsSwapAcceptable encodes C6's swap-acceptance policy table.
func IsSwapAcceptable(before, after string, improvement float64) bool {
	beforeFair := before == fairTag
	afterFair := after == fairTag

	switch {
	case beforeFair && afterFair:
		return true
	case beforeFair && !afterFair:
		return improvement > swapImprovementFloor
	case !beforeFair && afterFair:
		return true
	case before == after:
		return true
	default:
		return improvement > swapImprovementFloor
	}
}
