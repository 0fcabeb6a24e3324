package search

import (
	"regexp"
	"strconv"
	"strings"
)

// RosterQuery represents parsed natural language filters over a roster:
// a minimum games-played threshold, a dominant play style, and/or a tier
// number, extracted from a single free-text search string.
type RosterQuery struct {
	RawQuery string
	MinGames *int
	Style    *string
	TierNum  *int
}

var (
	// Matches "N+ games", "N games", or "at least N games".
	minGamesPattern = regexp.MustCompile(`\b(?:at least\s+)?(\d+)\+?\s*games?\b`)

	// Matches "tier N".
	tierPattern = regexp.MustCompile(`\btier\s+(\d+)\b`)

	// Style keywords mapped to the matching StyleAttributes field name.
	styleKeywords = map[string]string{
		"fast":      "pace",
		"pace":      "pace",
		"shooter":   "shooting",
		"shooting":  "shooting",
		"passer":    "passing",
		"passing":   "passing",
		"dribbler":  "dribbling",
		"dribbling": "dribbling",
		"defender":  "defending",
		"defensive": "defending",
		"defending": "defending",
		"physical":  "physical",
		"strong":    "physical",
	}
)

// ParseRosterQuery extracts structured filters from a natural language
// roster search string. It identifies a games-played threshold, a tier
// number, and a dominant play style keyword. When several style keywords
// appear, the one occurring last in the query wins.
func ParseRosterQuery(raw string) RosterQuery {
	query := RosterQuery{RawQuery: raw}

	normalized := strings.ToLower(strings.TrimSpace(raw))

	if matches := minGamesPattern.FindStringSubmatch(normalized); len(matches) > 1 {
		if games, err := strconv.Atoi(matches[1]); err == nil {
			query.MinGames = &games
		}
	}

	if matches := tierPattern.FindStringSubmatch(normalized); len(matches) > 1 {
		if tier, err := strconv.Atoi(matches[1]); err == nil {
			query.TierNum = &tier
		}
	}

	bestPos := -1
	for keyword, field := range styleKeywords {
		if pos := strings.LastIndex(normalized, keyword); pos > bestPos {
			f := field
			query.Style = &f
			bestPos = pos
		}
	}

	return query
}
