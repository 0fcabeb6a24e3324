package core

// RandomSource abstracts the single random decision the core makes: which
// side picks first in tier 1. Callers may inject a seeded source for
// reproducible drafts; production callers (the CLI and the API) pass
// CryptoRandomSource from rng.go, which draws from crypto/rand.
type RandomSource interface {
	// Bool returns a pseudo-random boolean.
	Bool() bool
}

// DraftState is the running output of BuildDraft: the two teams plus the
// ordered log of picks for the audit trail.
type DraftState struct {
	Blue   []RatedPlayer
	Orange []RatedPlayer
	Picks  []DraftPick
}

// BuildDraft is C4: it allocates a tiered, sorted roster into two teams via
// a snake draft, with the one-shot last-two-tiers adjustment and a defensive
// post-pass size correction.
func BuildDraft(tiers []Tier, rnd RandomSource) DraftState {
	state := DraftState{}

	total := 0
	for _, t := range tiers {
		total += len(t.Members)
	}
	target := total / 2

	firstPicker := TeamBlue
	if rnd.Bool() {
		firstPicker = TeamOrange
	}

	for ti, tier := range tiers {
		isLastTwo := ti >= len(tiers)-2
		adjusted := false

		if isLastTwo {
			gap := len(state.Blue) - len(state.Orange)
			if gap < 0 {
				gap = -gap
			}
			if gap >= 2 {
				if len(state.Blue) < len(state.Orange) {
					firstPicker = TeamBlue
				} else {
					firstPicker = TeamOrange
				}
				adjusted = true
			}
		}

		secondPicker := TeamOrange
		if firstPicker == TeamOrange {
			secondPicker = TeamBlue
		}

		for i, player := range tier.Members {
			side := firstPicker
			if i%2 == 1 {
				side = secondPicker
			}

			// Once a team has reached target size, every remaining pick in
			// the whole draft goes to the other team.
			if len(state.Blue) >= target && side == TeamBlue {
				side = TeamOrange
			} else if len(state.Orange) >= target && side == TeamOrange {
				side = TeamBlue
			}

			if side == TeamBlue {
				state.Blue = append(state.Blue, player)
			} else {
				state.Orange = append(state.Orange, player)
			}

			state.Picks = append(state.Picks, DraftPick{
				TierNumber:  tier.Number,
				FirstPicker: firstPicker,
				PlayerID:    player.ID,
				Side:        side,
				PickIndex:   i,
				Adjusted:    adjusted,
			})
		}

		if !adjusted {
			if firstPicker == TeamBlue {
				firstPicker = TeamOrange
			} else {
				firstPicker = TeamBlue
			}
		}
	}

	// Post-pass: defend against an off-by-one from the target cutoff logic
	// above by moving the most recently appended player from the larger
	// team to the smaller, if the sizes differ by more than one.
	if diff := len(state.Blue) - len(state.Orange); diff > 1 {
		moved := state.Blue[len(state.Blue)-1]
		state.Blue = state.Blue[:len(state.Blue)-1]
		state.Orange = append(state.Orange, moved)
	} else if diff < -1 {
		moved := state.Orange[len(state.Orange)-1]
		state.Orange = state.Orange[:len(state.Orange)-1]
		state.Blue = append(state.Blue, moved)
	}

	return state
}
