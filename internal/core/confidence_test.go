package core

import "testing"

func TestEstimateConfidenceBands(t *testing.T) {
	experienced := Player{ID: "e", Career: &CareerStats{TotalGames: 50}}
	new_ := Player{ID: "n", Career: &CareerStats{TotalGames: 2}}
	missing := Player{ID: "m"}

	tests := []struct {
		name   string
		roster []Player
		want   ConfidenceLevel
	}{
		{"empty roster", nil, ConfidenceLow},
		{"all experienced", []Player{experienced, experienced, experienced, experienced}, ConfidenceHigh},
		{"mostly new", []Player{new_, new_, new_, experienced}, ConfidenceLow},
		{"mixed", []Player{new_, experienced, experienced, missing}, ConfidenceMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := EstimateConfidence(tt.roster)
			if got != tt.want {
				t.Errorf("got %v, want %v (message: %s)", got, tt.want, msg)
			}
			if msg == "" {
				t.Error("expected a non-empty confidence message")
			}
		})
	}
}
