package core

import "sort"

// SortRoster orders rated players by composite rating descending, breaking
// ties by identifier ascending so the ordering (and everything downstream of
// it) is fully deterministic.
func SortRoster(rated []RatedPlayer) []RatedPlayer {
	sorted := make([]RatedPlayer, len(rated))
	copy(sorted, rated)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CompositeRating != sorted[j].CompositeRating {
			return sorted[i].CompositeRating > sorted[j].CompositeRating
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// tierSizes determines tier group sizes from roster size n (§4.3).
func tierSizes(n int) []int {
	switch {
	case n == 0:
		return nil
	case n == 18:
		return []int{4, 4, 3, 4, 3}
	case n <= 10:
		sizes := make([]int, 0, n/2+1)
		for remaining := n; remaining > 3; remaining -= 2 {
			sizes = append(sizes, 2)
		}
		remaining := n - sumInts(sizes)
		if remaining > 0 {
			sizes = append(sizes, remaining)
		}
		return sizes
	case n <= 20:
		base := n / 4
		remainder := n % 4
		sizes := make([]int, base)
		for i := range sizes {
			sizes[i] = 4
		}
		switch remainder {
		case 1:
			if len(sizes) == 0 {
				sizes = append(sizes, 1)
			} else {
				sizes[len(sizes)-1] += 1
			}
		case 2:
			sizes = append(sizes, 2)
		case 3:
			sizes = append(sizes, 3)
		}
		return sizes
	default:
		// Tiers of 5; if n isn't a multiple of 5, shorten the last few
		// tiers to 4 to absorb the excess rather than appending one small
		// tail tier, per §4.3 ("n > 20").
		k := (n + 4) / 5 // ceil(n/5)
		sizes := make([]int, k)
		for i := range sizes {
			sizes[i] = 5
		}
		excess := 5*k - n
		for i := k - excess; i < k; i++ {
			sizes[i]--
		}
		return sizes
	}
}

func sumInts(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

// BuildTiers is C3: sorts the roster by composite rating and cuts the sorted
// sequence into contiguous tiers whose sizes are determined by roster size.
// It stamps each member's Tier field and returns the tier layout alongside
// the sorted roster (with tier stamps applied).
func BuildTiers(rated []RatedPlayer) (sorted []RatedPlayer, tiers []Tier) {
	sorted = SortRoster(rated)
	sizes := tierSizes(len(sorted))

	tiers = make([]Tier, 0, len(sizes))
	offset := 0
	for idx, size := range sizes {
		end := offset + size
		if end > len(sorted) {
			end = len(sorted)
		}
		members := sorted[offset:end]
		tierNum := idx + 1

		min, max := 0.0, 0.0
		if len(members) > 0 {
			min, max = members[len(members)-1].CompositeRating, members[0].CompositeRating
		}

		for i := range members {
			sorted[offset+i].Tier = tierNum
		}

		tiers = append(tiers, Tier{
			Number:  tierNum,
			Members: append([]RatedPlayer(nil), members...),
			Min:     min,
			Max:     max,
		})

		offset = end
	}

	return sorted, tiers
}
