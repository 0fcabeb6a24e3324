package core

import (
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// optimizerSwapCap bounds the total number of accepted swaps in one run, a
// defensive backstop against pathological inputs.
const optimizerSwapCap = 100

// optimizerThreshold computes C7's dynamic stopping threshold from team size
// and the composite-rating range across the full roster.
func optimizerThreshold(teamSize int, ratingRange float64) float64 {
	sizeTerm := math.Max(0.15, 0.5/math.Sqrt(float64(teamSize)))
	rangeFactor := math.Min(1.5, ratingRange/3)
	return clamp(sizeTerm*rangeFactor, 0.15, 0.5)
}

func compositeRange(rated []RatedPlayer) float64 {
	if len(rated) == 0 {
		return 0
	}
	min, max := rated[0].CompositeRating, rated[0].CompositeRating
	for _, p := range rated {
		if p.CompositeRating < min {
			min = p.CompositeRating
		}
		if p.CompositeRating > max {
			max = p.CompositeRating
		}
	}
	return max - min
}

// tierIndex maps a tier number to the members of each side currently in it.
type tierIndex struct {
	blue   map[int][]RatedPlayer
	orange map[int][]RatedPlayer
}

func buildTierIndex(blue, orange []RatedPlayer) *tierIndex {
	idx := &tierIndex{blue: map[int][]RatedPlayer{}, orange: map[int][]RatedPlayer{}}
	for _, p := range blue {
		idx.blue[p.Tier] = append(idx.blue[p.Tier], p)
	}
	for _, p := range orange {
		idx.orange[p.Tier] = append(idx.orange[p.Tier], p)
	}
	return idx
}

func (idx *tierIndex) flatten() (blue, orange []RatedPlayer) {
	for _, members := range idx.blue {
		blue = append(blue, members...)
	}
	for _, members := range idx.orange {
		orange = append(orange, members...)
	}
	return blue, orange
}

// replace trades team sides between bluePlayer and orangePlayer. A player's
// Tier is a property of the player (their skill band from C3), not of which
// team holds them, so it is never rewritten here — only which side's bucket
// holds the player changes.
func (idx *tierIndex) replace(bluePlayer, orangePlayer RatedPlayer) {
	idx.blue[bluePlayer.Tier] = removeByID(idx.blue[bluePlayer.Tier], bluePlayer.ID)
	idx.blue[orangePlayer.Tier] = append(idx.blue[orangePlayer.Tier], orangePlayer)

	idx.orange[orangePlayer.Tier] = removeByID(idx.orange[orangePlayer.Tier], orangePlayer.ID)
	idx.orange[bluePlayer.Tier] = append(idx.orange[bluePlayer.Tier], bluePlayer)
}

func removeByID(members []RatedPlayer, id PlayerID) []RatedPlayer {
	result := make([]RatedPlayer, 0, len(members))
	for _, m := range members {
		if m.ID == id {
			continue
		}
		result = append(result, m)
	}
	return result
}

// candidate is one simulated swap under consideration.
type candidate struct {
	blue, orange   RatedPlayer
	candidateScore float64
	improvement    float64
	acceptable     bool
}

// scanCandidates simulates every (blue, orange) pair under a filter and
// scores them concurrently via a bounded errgroup fan-out; each goroutine
// writes to its own pre-sized slice slot so the result order — and therefore
// which candidate the sequential reduction below picks as "best" on a tie —
// never depends on goroutine scheduling.
func scanCandidates(ctx context.Context, pairs [][2]RatedPlayer, idx *tierIndex, currentScore float64, currentStatus string, tiers []Tier) (candidate, bool) {
	results := make([]candidate, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, o := pair[0], pair[1]

			trialIdx := &tierIndex{blue: map[int][]RatedPlayer{}, orange: map[int][]RatedPlayer{}}
			for t, m := range idx.blue {
				trialIdx.blue[t] = m
			}
			for t, m := range idx.orange {
				trialIdx.orange[t] = m
			}
			trialIdx.replace(b, o)
			trialBlue, trialOrange := trialIdx.flatten()

			candidateScore := BalanceScore(trialBlue, trialOrange)
			improvement := currentScore - candidateScore

			trialAssignment := Assignment{Blue: trialBlue, Orange: trialOrange}
			afterStatus := ValidateDistribution(trialAssignment, tiers)
			// Only swaps that actually improve the score are candidates at
			// all; the acceptance policy then decides whether a resulting
			// distribution change is tolerable.
			acceptable := improvement > 0 && IsSwapAcceptable(currentStatus, afterStatus, improvement)

			results[i] = candidate{
				blue:           b,
				orange:         o,
				candidateScore: candidateScore,
				improvement:    improvement,
				acceptable:     acceptable,
			}
			return nil
		})
	}
	_ = g.Wait() // scoring is pure and cannot fail; only context cancellation would error

	best, found := candidate{}, false
	for _, c := range results {
		if !c.acceptable {
			continue
		}
		if !found || c.candidateScore < best.candidateScore {
			best, found = c, true
		}
	}
	return best, found
}

// OptimizeAssignment is C7: local-search refinement of a draft assignment.
// It never fails; if no accepted swap improves the split it returns the
// input assignment with wasOptimized = false.
func OptimizeAssignment(ctx context.Context, assignment Assignment, tiers []Tier, fullRoster []RatedPlayer) (result Assignment, wasOptimized bool, swaps []SwapRecord) {
	teamSize := len(assignment.Blue)
	if len(assignment.Orange) > teamSize {
		teamSize = len(assignment.Orange)
	}
	if teamSize == 0 {
		return assignment, false, nil
	}

	threshold := optimizerThreshold(teamSize, compositeRange(fullRoster))
	currentScore := BalanceScore(assignment.Blue, assignment.Orange)
	if currentScore <= threshold {
		return assignment, false, nil
	}

	idx := buildTierIndex(assignment.Blue, assignment.Orange)
	currentStatus := ValidateDistribution(assignment, tiers)

	sortedTiers := make([]Tier, len(tiers))
	copy(sortedTiers, tiers)
	sort.Slice(sortedTiers, func(i, j int) bool { return sortedTiers[i].Number > sortedTiers[j].Number })

	accepted := 0

	for ti, tier := range sortedTiers {
		if accepted >= optimizerSwapCap || currentScore <= threshold {
			break
		}

		// Same-tier phase.
		var pairs [][2]RatedPlayer
		for _, b := range idx.blue[tier.Number] {
			for _, o := range idx.orange[tier.Number] {
				pairs = append(pairs, [2]RatedPlayer{b, o})
			}
		}
		if len(pairs) > 0 {
			if best, ok := scanCandidates(ctx, pairs, idx, currentScore, currentStatus, tiers); ok {
				idx.replace(best.blue, best.orange)
				currentScore = best.candidateScore
				blueFlat, orangeFlat := idx.flatten()
				currentStatus = ValidateDistribution(Assignment{Blue: blueFlat, Orange: orangeFlat}, tiers)
				swaps = append(swaps, SwapRecord{
					BluePlayer: best.blue.ID, OrangePlayer: best.orange.ID,
					Improvement: best.improvement, Tier: tier.Number, ResultScore: currentScore,
				})
				accepted++
			}
		}

		if accepted >= optimizerSwapCap || currentScore <= threshold {
			break
		}

		// Cross-tier phase: adjacent unvisited higher tier U = T-1.
		upperTierNumber := tier.Number - 1
		hasUpper := ti+1 < len(sortedTiers) && sortedTiers[ti+1].Number == upperTierNumber
		if !hasUpper {
			continue
		}

		var crossPairs [][2]RatedPlayer
		for _, b := range idx.blue[tier.Number] {
			for _, o := range idx.orange[upperTierNumber] {
				if math.Abs(b.CompositeRating-o.CompositeRating) <= 1.5 {
					crossPairs = append(crossPairs, [2]RatedPlayer{b, o})
				}
			}
		}
		for _, o := range idx.orange[tier.Number] {
			for _, b := range idx.blue[upperTierNumber] {
				if math.Abs(b.CompositeRating-o.CompositeRating) <= 1.5 {
					crossPairs = append(crossPairs, [2]RatedPlayer{b, o})
				}
			}
		}

		if len(crossPairs) > 0 {
			if best, ok := scanCandidates(ctx, crossPairs, idx, currentScore, currentStatus, tiers); ok {
				idx.replace(best.blue, best.orange)
				currentScore = best.candidateScore
				blueFlat, orangeFlat := idx.flatten()
				currentStatus = ValidateDistribution(Assignment{Blue: blueFlat, Orange: orangeFlat}, tiers)
				swaps = append(swaps, SwapRecord{
					BluePlayer: best.blue.ID, OrangePlayer: best.orange.ID,
					Improvement: best.improvement, Tier: -1, ResultScore: currentScore,
				})
				accepted++
			}
		}
	}

	blueFlat, orangeFlat := idx.flatten()
	sort.Slice(blueFlat, func(i, j int) bool { return blueFlat[i].ID < blueFlat[j].ID })
	sort.Slice(orangeFlat, func(i, j int) bool { return orangeFlat[i].ID < orangeFlat[j].ID })

	return Assignment{Blue: blueFlat, Orange: orangeFlat}, accepted > 0, swaps
}
