// Package seed loads a roster from a CSV file into Postgres before balancing it.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"stormlightlabs.org/matchday/internal/core"
	"stormlightlabs.org/matchday/internal/echo"
	"stormlightlabs.org/matchday/internal/repository"
)

// RosterCSVOptions controls how a roster CSV file is parsed and loaded.
type RosterCSVOptions struct {
	RosterID string
	Name     string
	CSVPath  string
}

// LoadRosterCSV reads a roster CSV file, converts each row into a core.Player,
// and upserts the whole roster in one transaction via the repository layer.
func LoadRosterCSV(ctx context.Context, repo *repository.RosterRepository, opts RosterCSVOptions) (int, error) {
	file, err := os.Open(opts.CSVPath)
	if err != nil {
		return 0, fmt.Errorf("error: failed to open roster CSV %s: %w", opts.CSVPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("error: failed to read roster CSV header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	if _, ok := colIdx["player_id"]; !ok {
		return 0, fmt.Errorf("error: roster CSV %s is missing required column %q", opts.CSVPath, "player_id")
	}

	echo.Infof("Loading roster %s from %s...", opts.RosterID, opts.CSVPath)

	var players []core.Player
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("error: failed to read roster CSV row: %w", err)
		}

		p, err := rowToPlayer(record, colIdx)
		if err != nil {
			return 0, fmt.Errorf("error: failed to parse roster row: %w", err)
		}
		players = append(players, p)
	}

	if err := repo.SaveRoster(ctx, opts.RosterID, opts.Name, players); err != nil {
		return 0, fmt.Errorf("error: failed to save roster %s: %w", opts.RosterID, err)
	}

	echo.Successf("✓ Loaded roster %s (%d players)", opts.RosterID, len(players))
	return len(players), nil
}

func rowToPlayer(record []string, colIdx map[string]int) (core.Player, error) {
	get := func(col string) string {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	p := core.Player{
		ID:          core.PlayerID(get("player_id")),
		DisplayName: get("display_name"),
	}

	if p.ID == "" {
		return p, fmt.Errorf("row is missing player_id")
	}

	var err error
	if p.Attack, err = optionalFloat(get("attack")); err != nil {
		return p, err
	}
	if p.Defense, err = optionalFloat(get("defense")); err != nil {
		return p, err
	}
	if p.GameIQ, err = optionalFloat(get("game_iq")); err != nil {
		return p, err
	}

	style, err := readStyle(get, colIdx)
	if err != nil {
		return p, err
	}
	p.Style = style

	if games := get("career_total_games"); games != "" {
		totalGames, err := strconv.Atoi(games)
		if err != nil {
			return p, fmt.Errorf("career_total_games: %w", err)
		}
		winRate, err := parseFloatOrZero(get("career_win_rate"))
		if err != nil {
			return p, err
		}
		goalDiff, err := parseFloatOrZero(get("career_goal_diff"))
		if err != nil {
			return p, err
		}
		p.Career = &core.CareerStats{TotalGames: totalGames, WinRate: winRate, GoalDiff: goalDiff}
	}

	if wr, gd := get("recent_win_rate"), get("recent_goal_diff"); wr != "" || gd != "" {
		winRate, err := parseFloatOrZero(wr)
		if err != nil {
			return p, err
		}
		goalDiff, err := parseFloatOrZero(gd)
		if err != nil {
			return p, err
		}
		p.Recent = &core.RecentStats{WinRate: winRate, GoalDiff: goalDiff}
	}

	return p, nil
}

func readStyle(get func(string) string, colIdx map[string]int) (*core.StyleAttributes, error) {
	fields := []string{"style_pace", "style_shooting", "style_passing", "style_dribbling", "style_defending", "style_physical"}
	present := false
	for _, f := range fields {
		if _, ok := colIdx[f]; ok && get(f) != "" {
			present = true
			break
		}
	}
	if !present {
		return nil, nil
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseFloatOrZero(get(f))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		vals[i] = v
	}
	return &core.StyleAttributes{
		Pace: vals[0], Shooting: vals[1], Passing: vals[2],
		Dribbling: vals[3], Defending: vals[4], Physical: vals[5],
	}, nil
}

func optionalFloat(val string) (*float64, error) {
	if val == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseFloatOrZero(val string) (float64, error) {
	if val == "" {
		return 0, nil
	}
	return strconv.ParseFloat(val, 64)
}
