package core

import (
	"reflect"
	"testing"
)

func TestTierSizes(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, []int{1}},
		{4, []int{2, 2}},
		{5, []int{2, 3}},
		{10, []int{2, 2, 2, 2, 2}},
		{11, []int{4, 4, 3}},
		{12, []int{4, 4, 4}},
		{13, []int{4, 4, 5}},
		{14, []int{4, 4, 4, 2}},
		{15, []int{4, 4, 4, 3}},
		{18, []int{4, 4, 3, 4, 3}},
		{20, []int{4, 4, 4, 4, 4}},
		{21, []int{5, 4, 4, 4, 4}},
		{23, []int{5, 5, 5, 4, 4}},
		{25, []int{5, 5, 5, 5, 5}},
	}

	for _, tt := range tests {
		got := tierSizes(tt.n)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tierSizes(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestSortRosterTieBreak(t *testing.T) {
	rated := []RatedPlayer{
		{Player: Player{ID: "b"}, CompositeRating: 5.0},
		{Player: Player{ID: "a"}, CompositeRating: 5.0},
		{Player: Player{ID: "c"}, CompositeRating: 7.0},
	}

	sorted := SortRoster(rated)
	want := []PlayerID{"c", "a", "b"}
	for i, p := range sorted {
		if p.ID != want[i] {
			t.Errorf("sorted[%d] = %s, want %s", i, p.ID, want[i])
		}
	}
}

func TestBuildTiersStampsAndRanges(t *testing.T) {
	rated := make([]RatedPlayer, 10)
	for i := range rated {
		rated[i] = RatedPlayer{Player: Player{ID: PlayerID(string(rune('a' + i)))}, CompositeRating: float64(10 - i)}
	}

	sorted, tiers := BuildTiers(rated)
	if len(tiers) != 5 {
		t.Fatalf("got %d tiers, want 5", len(tiers))
	}
	for i, p := range sorted {
		wantTier := i/2 + 1
		if p.Tier != wantTier {
			t.Errorf("sorted[%d] (%s) tier = %d, want %d", i, p.ID, p.Tier, wantTier)
		}
	}
	if tiers[0].Max != 10 || tiers[0].Min != 9 {
		t.Errorf("tier 1 range = [%v,%v], want [9,10]", tiers[0].Min, tiers[0].Max)
	}
}
