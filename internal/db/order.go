package db

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// sortColumns maps the frontend sort keys to storage columns. The map
// is the whitelist: nothing outside it ever reaches the SQL text.
// "player" is the one composite key, expanding to first then last name.
var sortColumns = map[string][]string{
	"player":        {"first_name", "last_name"},
	"team":          {"team_abbreviation"},
	"gamesPlayed":   {"games_played"},
	"minutes":       {"minutes_per_game"},
	"points":        {"points_per_game"},
	"rebounds":      {"rebounds_per_game"},
	"assists":       {"assists_per_game"},
	"steals":        {"steals_per_game"},
	"blocks":        {"blocks_per_game"},
	"threes":        {"threes_per_game"},
	"fgPct":         {"fg_pct"},
	"ftPct":         {"ft_pct"},
	"pointsLast5":   {"points_last5"},
	"reboundsLast5": {"rebounds_last5"},
	"assistsLast5":  {"assists_last5"},
}

// defaultSortKey is the fallback when the requested key is unknown
const defaultSortKey = "player"

// NormalizeDirection maps a user-supplied direction to ASC or DESC.
// Anything unrecognized falls back to ASC with a warning; invalid
// directions are never a request error.
func NormalizeDirection(sortOrder string) string {
	switch strings.ToLower(strings.TrimSpace(sortOrder)) {
	case "asc", "":
		return "ASC"
	case "desc":
		return "DESC"
	}
	log.Warn().Str("sort_order", sortOrder).Msg("unknown sort direction, defaulting to ASC")
	return "ASC"
}

// BuildOrderBy resolves a frontend sort key and direction into an
// ORDER BY column list. Unknown keys fall back to name ascending with
// a warning rather than failing the request. Every column sorts nulls
// last regardless of direction, and composite keys inherit the same
// direction for each column.
func BuildOrderBy(sortBy, sortOrder string) string {
	direction := NormalizeDirection(sortOrder)

	columns, ok := sortColumns[sortBy]
	if !ok {
		if sortBy != "" {
			log.Warn().Str("sort_by", sortBy).Msg("unknown sort key, defaulting to player name")
		}
		columns = sortColumns[defaultSortKey]
		direction = "ASC"
	}

	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = col + " " + direction + " NULLS LAST"
	}
	return strings.Join(parts, ", ")
}
