// Package core implements the rating-and-draft engine: composite player
// ratings, tiering, snake-draft allocation, balance scoring, tier-distribution
// validation, local-search optimization, confidence estimation, and the audit
// trail that ties them together.
package core

// PlayerID is an opaque, caller-supplied identifier, unique within one call.
type PlayerID string

// MomentumCategory classifies a player's recent form relative to career form.
// @Description Momentum bucket derived from recent vs. career performance
type MomentumCategory string

const (
	MomentumHot    MomentumCategory = "hot"
	MomentumCold   MomentumCategory = "cold"
	MomentumSteady MomentumCategory = "steady"
)

// ConfidenceLevel tags how much game history backs a balance result.
// @Description Confidence in the balance result given available history
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// TeamSide identifies which of the two teams a player lands on.
type TeamSide string

const (
	TeamBlue   TeamSide = "blue"
	TeamOrange TeamSide = "orange"
)

// PrimaryFactor tags which dimension drives the balance gap between two teams.
type PrimaryFactor string

const (
	FactorSkills     PrimaryFactor = "skills"
	FactorAttributes PrimaryFactor = "attributes"
	FactorBoth       PrimaryFactor = "both"
)

// StyleAttributes is the six-component play-style bundle, each in [0,1].
// @Description Six-component play-style bundle, each value in [0,1]
type StyleAttributes struct {
	Pace      float64 `json:"pace"`
	Shooting  float64 `json:"shooting"`
	Passing   float64 `json:"passing"`
	Dribbling float64 `json:"dribbling"`
	Defending float64 `json:"defending"`
	Physical  float64 `json:"physical"`
}

// CareerStats is optional career-level track record.
type CareerStats struct {
	TotalGames int     `json:"total_games"`
	WinRate    float64 `json:"win_rate"`    // fraction [0,1] or percentage (1,100]
	GoalDiff   float64 `json:"goal_diff"`   // career goal differential
}

// RecentStats is optional recent-form track record.
type RecentStats struct {
	WinRate  float64 `json:"win_rate"`
	GoalDiff float64 `json:"goal_diff"`
}

// Player is the immutable input record supplied by the caller.
// @Description Roster entry with base skills and optional style/history data
type Player struct {
	ID          PlayerID         `json:"id"`
	DisplayName string           `json:"display_name"`
	Attack      *float64         `json:"attack,omitempty"`
	Defense     *float64         `json:"defense,omitempty"`
	GameIQ      *float64         `json:"game_iq,omitempty"`
	Style       *StyleAttributes `json:"style,omitempty"`
	Career      *CareerStats     `json:"career,omitempty"`
	Recent      *RecentStats     `json:"recent,omitempty"`
}

// baseSkillDefault is substituted for any missing base skill component.
const baseSkillDefault = 5.0

// attackOr returns the attack score, defaulting missing values to 5.
func (p Player) attackOr() float64 { return orDefault(p.Attack, baseSkillDefault) }

// defenseOr returns the defense score, defaulting missing values to 5.
func (p Player) defenseOr() float64 { return orDefault(p.Defense, baseSkillDefault) }

// gameIQOr returns the game-IQ score, defaulting missing values to 5.
func (p Player) gameIQOr() float64 { return orDefault(p.GameIQ, baseSkillDefault) }

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// RatedPlayer augments a Player with every value derived by the composite
// rating function (C2). It is the unit of work for every downstream stage.
// @Description Player augmented with derived ratings and tier assignment
type RatedPlayer struct {
	Player

	BaseSkill         float64          `json:"base_skill"`
	AttrScore         float64          `json:"attribute_score"`
	AttrAdjustment    float64          `json:"attribute_adjustment"`
	OverallPerf       float64          `json:"overall_performance"`
	RecentForm        float64          `json:"recent_form"`
	MomentumScore     float64          `json:"momentum_score"`
	MomentumCategory  MomentumCategory `json:"momentum_category"`
	CompositeRating   float64          `json:"composite_rating"`

	Tier int `json:"tier"`
}

// LeagueStats is the C1 output: population statistics over style-attribute
// scores, used to normalize each player's attribute adjustment.
type LeagueStats struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Tier is a contiguous, rating-ordered band of the roster.
// @Description Contiguous rating band; Number 1 is the highest-rated tier
type Tier struct {
	Number  int           `json:"number"`
	Members []RatedPlayer `json:"members"`
	Min     float64       `json:"min"`
	Max     float64       `json:"max"`
}

// DraftPick records one decision made during the snake draft, for the audit
// trail. Side is the team the player was assigned to.
type DraftPick struct {
	TierNumber   int      `json:"tier"`
	FirstPicker  TeamSide `json:"first_picker"`
	PlayerID     PlayerID `json:"player_id"`
	Side         TeamSide `json:"side"`
	PickIndex    int      `json:"pick_index"`
	Adjusted     bool     `json:"adjusted"`
}

// SwapRecord documents one accepted optimizer swap (C7).
// @Description One accepted local-search swap, with its score improvement
type SwapRecord struct {
	BluePlayer    PlayerID `json:"blue_player"`
	OrangePlayer  PlayerID `json:"orange_player"`
	Improvement   float64  `json:"improvement"`
	Tier          int      `json:"tier"` // -1 for cross-tier swaps
	ResultScore   float64  `json:"result_score"`
}

// BalanceBreakdown is the detailed variant of the balance score (C5),
// exposing every per-dimension gap and the primary factor driving it.
// @Description Per-dimension gaps behind a balance score
type BalanceBreakdown struct {
	AttackDiff  float64       `json:"attack_diff"`
	DefenseDiff float64       `json:"defense_diff"`
	GameIQDiff  float64       `json:"game_iq_diff"`
	SkillGap    float64       `json:"skill_gap"`

	PaceDiff      float64 `json:"pace_diff"`
	ShootingDiff  float64 `json:"shooting_diff"`
	PassingDiff   float64 `json:"passing_diff"`
	DribblingDiff float64 `json:"dribbling_diff"`
	DefendingDiff float64 `json:"defending_diff"`
	PhysicalDiff  float64 `json:"physical_diff"`
	AttrGap       float64 `json:"attribute_gap"`

	CombinedScore float64       `json:"combined_score"`
	PrimaryFactor PrimaryFactor `json:"primary_factor"`
}

// Assignment is the disjoint, ordered pair of teams produced by the draft and
// refined by the optimizer.
// @Description Final two-team split
type Assignment struct {
	Blue   []RatedPlayer `json:"blue_team"`
	Orange []RatedPlayer `json:"orange_team"`
}

// Result is the value returned by the top-level BalanceRoster entry point.
// @Description Full output of a roster-balancing run
type Result struct {
	BlueTeam           []RatedPlayer `json:"blue_team"`
	OrangeTeam         []RatedPlayer `json:"orange_team"`
	Tiers              []Tier        `json:"tiers"`
	InitialScore       float64       `json:"initial_score"`
	OptimizedScore     float64       `json:"optimized_score"`
	WasOptimized       bool          `json:"was_optimized"`
	ConfidenceLevel    ConfidenceLevel `json:"confidence_level"`
	ConfidenceMessage  string        `json:"confidence_message"`
	Audit              *AuditRecord  `json:"audit"`
}
