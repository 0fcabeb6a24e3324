package core

import "math"

// styleAttrScore computes the 0..10 style-attribute score for a player with a
// style bundle: (sum of six components / 6) * 10.
func styleAttrScore(s StyleAttributes) float64 {
	sum := s.Pace + s.Shooting + s.Passing + s.Dribbling + s.Defending + s.Physical
	return (sum / 6) * 10
}

// ComputeLeagueStats is C1: population mean, standard deviation, min, and max
// of the style-attribute score across every player in the roster that has a
// style bundle. If no player has one, the neutral defaults {5,1,5,5} are
// returned so downstream z-scoring never divides against an empty sample.
func ComputeLeagueStats(roster []Player) LeagueStats {
	var scores []float64
	for _, p := range roster {
		if p.Style != nil {
			scores = append(scores, styleAttrScore(*p.Style))
		}
	}

	if len(scores) == 0 {
		return LeagueStats{Mean: 5, Std: 1, Min: 5, Max: 5}
	}

	var sum float64
	min, max := scores[0], scores[0]
	for _, s := range scores {
		sum += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	mean := sum / float64(len(scores))

	var variance float64
	for _, s := range scores {
		d := s - mean
		variance += d * d
	}
	variance /= float64(len(scores))

	return LeagueStats{
		Mean: mean,
		Std:  math.Sqrt(variance),
		Min:  min,
		Max:  max,
	}
}
