package repository

import (
	"context"
	"database/sql"
	"fmt"

	"stormlightlabs.org/matchday/internal/core"
)

// RosterRepository is a Postgres-backed core.RosterRepository.
type RosterRepository struct {
	db *sql.DB
}

func NewRosterRepository(db *sql.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

var _ core.RosterRepository = (*RosterRepository)(nil)

// GetRoster loads every player row belonging to the named roster.
func (r *RosterRepository) GetRoster(ctx context.Context, id string) ([]core.Player, error) {
	query := `
		SELECT
			player_id, display_name, attack, defense, game_iq,
			style_pace, style_shooting, style_passing, style_dribbling, style_defending, style_physical,
			career_total_games, career_win_rate, career_goal_diff,
			recent_win_rate, recent_goal_diff
		FROM roster_players
		WHERE roster_id = $1
		ORDER BY player_id
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster %s: %w", id, err)
	}
	defer rows.Close()

	var players []core.Player
	for rows.Next() {
		var (
			playerID, displayName                                      string
			attack, defense, gameIQ                                    sql.NullFloat64
			pace, shooting, passing, dribbling, defending, physical     sql.NullFloat64
			careerGames                                                 sql.NullInt64
			careerWinRate, careerGoalDiff, recentWinRate, recentGoalDiff sql.NullFloat64
		)

		if err := rows.Scan(
			&playerID, &displayName, &attack, &defense, &gameIQ,
			&pace, &shooting, &passing, &dribbling, &defending, &physical,
			&careerGames, &careerWinRate, &careerGoalDiff,
			&recentWinRate, &recentGoalDiff,
		); err != nil {
			return nil, fmt.Errorf("failed to scan roster player: %w", err)
		}

		p := core.Player{ID: core.PlayerID(playerID), DisplayName: displayName}
		if attack.Valid {
			v := attack.Float64
			p.Attack = &v
		}
		if defense.Valid {
			v := defense.Float64
			p.Defense = &v
		}
		if gameIQ.Valid {
			v := gameIQ.Float64
			p.GameIQ = &v
		}
		if pace.Valid && shooting.Valid && passing.Valid && dribbling.Valid && defending.Valid && physical.Valid {
			p.Style = &core.StyleAttributes{
				Pace: pace.Float64, Shooting: shooting.Float64, Passing: passing.Float64,
				Dribbling: dribbling.Float64, Defending: defending.Float64, Physical: physical.Float64,
			}
		}
		if careerGames.Valid {
			p.Career = &core.CareerStats{
				TotalGames: int(careerGames.Int64),
				WinRate:    careerWinRate.Float64,
				GoalDiff:   careerGoalDiff.Float64,
			}
		}
		if recentWinRate.Valid || recentGoalDiff.Valid {
			p.Recent = &core.RecentStats{WinRate: recentWinRate.Float64, GoalDiff: recentGoalDiff.Float64}
		}

		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster players: %w", err)
	}

	if len(players) == 0 {
		return nil, core.NewNotFoundError("roster", id)
	}

	return players, nil
}

// SaveRoster replaces a roster's player rows within a single transaction,
// used by the seed command after parsing a CSV roster file.
func (r *RosterRepository) SaveRoster(ctx context.Context, id, name string, players []core.Player) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO rosters (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
	`, id, name); err != nil {
		return fmt.Errorf("failed to upsert roster %s: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM roster_players WHERE roster_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear existing roster players for %s: %w", id, err)
	}

	for _, p := range players {
		var pace, shooting, passing, dribbling, defending, physical sql.NullFloat64
		if p.Style != nil {
			pace = sql.NullFloat64{Float64: p.Style.Pace, Valid: true}
			shooting = sql.NullFloat64{Float64: p.Style.Shooting, Valid: true}
			passing = sql.NullFloat64{Float64: p.Style.Passing, Valid: true}
			dribbling = sql.NullFloat64{Float64: p.Style.Dribbling, Valid: true}
			defending = sql.NullFloat64{Float64: p.Style.Defending, Valid: true}
			physical = sql.NullFloat64{Float64: p.Style.Physical, Valid: true}
		}

		var careerGames sql.NullInt64
		var careerWinRate, careerGoalDiff sql.NullFloat64
		if p.Career != nil {
			careerGames = sql.NullInt64{Int64: int64(p.Career.TotalGames), Valid: true}
			careerWinRate = sql.NullFloat64{Float64: p.Career.WinRate, Valid: true}
			careerGoalDiff = sql.NullFloat64{Float64: p.Career.GoalDiff, Valid: true}
		}

		var recentWinRate, recentGoalDiff sql.NullFloat64
		if p.Recent != nil {
			recentWinRate = sql.NullFloat64{Float64: p.Recent.WinRate, Valid: true}
			recentGoalDiff = sql.NullFloat64{Float64: p.Recent.GoalDiff, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO roster_players (
				roster_id, player_id, display_name, attack, defense, game_iq,
				style_pace, style_shooting, style_passing, style_dribbling, style_defending, style_physical,
				career_total_games, career_win_rate, career_goal_diff,
				recent_win_rate, recent_goal_diff
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		`,
			id, string(p.ID), p.DisplayName, p.Attack, p.Defense, p.GameIQ,
			pace, shooting, passing, dribbling, defending, physical,
			careerGames, careerWinRate, careerGoalDiff,
			recentWinRate, recentGoalDiff,
		); err != nil {
			return fmt.Errorf("failed to insert roster player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit roster save: %w", err)
	}
	return nil
}
