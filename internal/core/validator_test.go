package core

import "testing"

func TestValidateDistributionMonopoly(t *testing.T) {
	tier := Tier{Number: 2, Min: 6, Max: 7, Members: []RatedPlayer{
		{Player: Player{ID: "a"}, CompositeRating: 7},
		{Player: Player{ID: "b"}, CompositeRating: 6},
	}}
	assignment := Assignment{
		Blue:   []RatedPlayer{{Player: Player{ID: "a"}}, {Player: Player{ID: "b"}}},
		Orange: nil,
	}

	got := ValidateDistribution(assignment, []Tier{tier})
	if got == fairTag {
		t.Fatalf("expected a monopoly violation, got FAIR")
	}
}

func TestValidateDistributionBottomConcentration(t *testing.T) {
	tier := Tier{Number: 1, Min: 5, Max: 8, Members: []RatedPlayer{
		{Player: Player{ID: "a"}, CompositeRating: 8},
		{Player: Player{ID: "b"}, CompositeRating: 5.5},
		{Player: Player{ID: "c"}, CompositeRating: 5},
	}}

	got := ValidateDistribution(Assignment{
		Blue:   []RatedPlayer{{Player: Player{ID: "b"}}, {Player: Player{ID: "c"}}},
		Orange: []RatedPlayer{{Player: Player{ID: "a"}}},
	}, []Tier{tier})
	if got == fairTag {
		t.Fatalf("expected a bottom-concentration violation, got FAIR")
	}

	ok := ValidateDistribution(Assignment{
		Blue:   []RatedPlayer{{Player: Player{ID: "a"}}, {Player: Player{ID: "b"}}},
		Orange: []RatedPlayer{{Player: Player{ID: "c"}}},
	}, []Tier{tier})
	if ok != fairTag {
		t.Errorf("got %q, want FAIR (the two lowest-rated members are split across teams)", ok)
	}
}

func TestValidateDistributionFair(t *testing.T) {
	tier := Tier{Number: 1, Min: 5, Max: 5.5, Members: []RatedPlayer{
		{Player: Player{ID: "a"}, CompositeRating: 5.5},
		{Player: Player{ID: "b"}, CompositeRating: 5},
	}}
	assignment := Assignment{
		Blue:   []RatedPlayer{{Player: Player{ID: "a"}}},
		Orange: []RatedPlayer{{Player: Player{ID: "b"}}},
	}
	if got := ValidateDistribution(assignment, []Tier{tier}); got != fairTag {
		t.Errorf("got %q, want FAIR", got)
	}
}

func TestIsSwapAcceptable(t *testing.T) {
	tests := []struct {
		name        string
		before      string
		after       string
		improvement float64
		want        bool
	}{
		{"fair to fair", fairTag, fairTag, 0.01, true},
		{"fair to violation small improvement", fairTag, "tier 1 monopoly", 0.05, false},
		{"fair to violation large improvement", fairTag, "tier 1 monopoly", 0.12, true},
		{"violation to fair", "tier 1 monopoly", fairTag, 0.01, true},
		{"same violation both sides", "tier 1 monopoly", "tier 1 monopoly", 0.01, true},
		{"different violation small improvement", "tier 1 monopoly", "tier 2 monopoly", 0.05, false},
		{"different violation large improvement", "tier 1 monopoly", "tier 2 monopoly", 0.12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSwapAcceptable(tt.before, tt.after, tt.improvement)
			if got != tt.want {
				t.Errorf("IsSwapAcceptable(%q, %q, %v) = %v, want %v", tt.before, tt.after, tt.improvement, got, tt.want)
			}
		})
	}
}
