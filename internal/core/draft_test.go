package core

import "testing"

func TestBuildDraftConservesRoster(t *testing.T) {
	rated := make([]RatedPlayer, 14)
	for i := range rated {
		rated[i] = RatedPlayer{Player: Player{ID: PlayerID(string(rune('a' + i)))}, CompositeRating: float64(14 - i)}
	}
	_, tiers := BuildTiers(rated)

	state := BuildDraft(tiers, FixedRandomSource(false))
	if len(state.Blue)+len(state.Orange) != 14 {
		t.Fatalf("total assigned = %d, want 14", len(state.Blue)+len(state.Orange))
	}

	diff := len(state.Blue) - len(state.Orange)
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		t.Errorf("team size gap = %d, want <= 1", diff)
	}

	if len(state.Picks) != 14 {
		t.Errorf("pick log length = %d, want 14", len(state.Picks))
	}
}

func TestBuildDraftDeterministic(t *testing.T) {
	rated := make([]RatedPlayer, 18)
	for i := range rated {
		rated[i] = RatedPlayer{Player: Player{ID: PlayerID(string(rune('a' + i)))}, CompositeRating: float64(18 - i)}
	}
	_, tiers := BuildTiers(rated)

	first := BuildDraft(tiers, FixedRandomSource(true))
	second := BuildDraft(tiers, FixedRandomSource(true))

	if len(first.Blue) != len(second.Blue) {
		t.Fatalf("blue sizes differ: %d vs %d", len(first.Blue), len(second.Blue))
	}
	for i := range first.Blue {
		if first.Blue[i].ID != second.Blue[i].ID {
			t.Errorf("blue[%d] = %s, want %s", i, second.Blue[i].ID, first.Blue[i].ID)
		}
	}
}
