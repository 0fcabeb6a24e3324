package core

import "testing"

func rp(id string, attack, defense, gameIQ float64) RatedPlayer {
	return RatedPlayer{Player: Player{ID: PlayerID(id), Attack: &attack, Defense: &defense, GameIQ: &gameIQ}}
}

func TestBalanceScoreEmptyTeamSentinel(t *testing.T) {
	blue := []RatedPlayer{rp("a", 5, 5, 5)}
	if got := BalanceScore(blue, nil); got != emptyTeamScore {
		t.Errorf("got %v, want sentinel %v", got, emptyTeamScore)
	}
}

func TestBalanceScoreCombinesSkillAndAttr(t *testing.T) {
	blue := []RatedPlayer{rp("a", 8, 8, 8)}
	orange := []RatedPlayer{rp("b", 4, 4, 4)}

	breakdown := BalanceScoreDetailed(blue, orange)
	if breakdown.SkillGap != 4 {
		t.Errorf("skill_gap = %v, want 4", breakdown.SkillGap)
	}
	if breakdown.AttrGap != 0 {
		t.Errorf("attr_gap = %v, want 0 (no style bundles)", breakdown.AttrGap)
	}
	if breakdown.CombinedScore != 0.8*4 {
		t.Errorf("combined = %v, want %v", breakdown.CombinedScore, 0.8*4)
	}
	if breakdown.PrimaryFactor != FactorSkills {
		t.Errorf("primary factor = %v, want skills", breakdown.PrimaryFactor)
	}
}

func TestBalanceScorePrimaryFactorAttributes(t *testing.T) {
	blue := []RatedPlayer{rp("a", 5, 5, 5)}
	orange := []RatedPlayer{rp("b", 5, 5, 5)}
	blue[0].Style = &StyleAttributes{Pace: 0.9, Shooting: 0.9, Passing: 0.9, Dribbling: 0.9, Defending: 0.9, Physical: 0.9}
	orange[0].Style = &StyleAttributes{Pace: 0.1, Shooting: 0.1, Passing: 0.1, Dribbling: 0.1, Defending: 0.1, Physical: 0.1}

	breakdown := BalanceScoreDetailed(blue, orange)
	if breakdown.SkillGap != 0 {
		t.Fatalf("skill_gap = %v, want 0", breakdown.SkillGap)
	}
	if breakdown.PrimaryFactor != FactorAttributes {
		t.Errorf("primary factor = %v, want attributes", breakdown.PrimaryFactor)
	}
}
