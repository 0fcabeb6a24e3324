package search

import "testing"

func TestParseRosterQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantMinGames *int
		wantStyle    *string
		wantTier     *int
	}{
		{name: "games threshold", query: "players with 10+ games", wantMinGames: intPtr(10)},
		{name: "at least phrasing", query: "at least 25 games played", wantMinGames: intPtr(25)},
		{name: "tier number", query: "show tier 3", wantTier: intPtr(3)},
		{name: "style keyword", query: "find a fast defender", wantStyle: strPtr("defending")},
		{name: "no matches", query: "anyone available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRosterQuery(tt.query)

			if (got.MinGames == nil) != (tt.wantMinGames == nil) {
				t.Fatalf("MinGames = %v, want %v", got.MinGames, tt.wantMinGames)
			}
			if got.MinGames != nil && *got.MinGames != *tt.wantMinGames {
				t.Errorf("MinGames = %d, want %d", *got.MinGames, *tt.wantMinGames)
			}

			if (got.TierNum == nil) != (tt.wantTier == nil) {
				t.Fatalf("TierNum = %v, want %v", got.TierNum, tt.wantTier)
			}
			if got.TierNum != nil && *got.TierNum != *tt.wantTier {
				t.Errorf("TierNum = %d, want %d", *got.TierNum, *tt.wantTier)
			}

			if (got.Style == nil) != (tt.wantStyle == nil) {
				t.Fatalf("Style = %v, want %v", got.Style, tt.wantStyle)
			}
			if got.Style != nil && *got.Style != *tt.wantStyle {
				t.Errorf("Style = %s, want %s", *got.Style, *tt.wantStyle)
			}
		})
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
