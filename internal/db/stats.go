package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XavierBriggs/propboard/pkg/models"
	_ "github.com/lib/pq"
)

// PropboardDB defines the storage operations the handlers depend on
type PropboardDB interface {
	GetPlayerStats(ctx context.Context, q StatsQuery) ([]models.PlayerSeasonStats, int, error)
	GetPredictions(ctx context.Context, date time.Time) ([]models.Prediction, error)
	GetGames(ctx context.Context, sportKey string, date time.Time) ([]models.Game, error)
	Close() error
	Ping(ctx context.Context) error
}

// StatsQuery describes one player-stats request after validation.
// SortBy/SortOrder are resolved against the whitelist by the store,
// never interpolated from raw input.
type StatsQuery struct {
	Season    string
	SortBy    string
	SortOrder string
	Search    string
	Limit     int
	Offset    int
	Paginate  bool
}

// Client implements PropboardDB against Postgres
type Client struct {
	db *sql.DB
}

// NewClient opens a pooled connection and verifies it
func NewClient(dsn string) (*Client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

const statsColumns = `player_id, first_name, last_name, team_abbreviation, season,
	       games_played, minutes_per_game, points_per_game, rebounds_per_game,
	       assists_per_game, steals_per_game, blocks_per_game, threes_per_game,
	       fg_pct, ft_pct, points_last5, rebounds_last5, assists_last5`

// GetPlayerStats returns one season's player rows plus the total row
// count for the same filters (used for pagination metadata). The sort
// clause comes from BuildOrderBy, so only whitelisted identifiers
// appear in the statement; every value stays a bound parameter.
func (c *Client) GetPlayerStats(ctx context.Context, q StatsQuery) ([]models.PlayerSeasonStats, int, error) {
	where := " WHERE season = $1"
	args := []interface{}{q.Season}
	argIdx := 2

	if q.Search != "" {
		where += fmt.Sprintf(" AND (first_name || ' ' || last_name) ILIKE $%d", argIdx)
		args = append(args, "%"+q.Search+"%")
		argIdx++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM player_season_stats" + where
	if err := c.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count player stats: %w", err)
	}

	query := "SELECT " + statsColumns + " FROM player_season_stats" + where
	query += " ORDER BY " + BuildOrderBy(q.SortBy, q.SortOrder)

	if q.Paginate {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, q.Limit, q.Offset)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query player stats: %w", err)
	}
	defer rows.Close()

	var stats []models.PlayerSeasonStats
	for rows.Next() {
		var s models.PlayerSeasonStats
		if err := rows.Scan(
			&s.PlayerID, &s.FirstName, &s.LastName, &s.Team, &s.Season,
			&s.GamesPlayed, &s.MinutesPerGame, &s.PointsPerGame, &s.ReboundsPerGame,
			&s.AssistsPerGame, &s.StealsPerGame, &s.BlocksPerGame, &s.ThreesPerGame,
			&s.FGPct, &s.FTPct, &s.PointsLast5, &s.ReboundsLast5, &s.AssistsLast5,
		); err != nil {
			return nil, 0, fmt.Errorf("scan player stats: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate player stats: %w", err)
	}

	return stats, total, nil
}

// GetPredictions returns the prop predictions generated for a slate date
func (c *Client) GetPredictions(ctx context.Context, date time.Time) ([]models.Prediction, error) {
	query := `
		SELECT id, player_first_name, player_last_name, player_team, prop_type,
		       line, predicted_value_over, predicted_value_under, confidence_score,
		       best_over_odds, best_under_odds, game_id, created_at
		FROM prop_predictions
		WHERE prediction_date = $1
		ORDER BY created_at ASC
	`

	rows, err := c.db.QueryContext(ctx, query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []models.Prediction
	for rows.Next() {
		var p models.Prediction
		if err := rows.Scan(
			&p.ID, &p.PlayerFirstName, &p.PlayerLastName, &p.PlayerTeam, &p.PropType,
			&p.Line, &p.PredictedValueOver, &p.PredictedValueUnder, &p.ConfidenceScore,
			&p.BestOverOdds, &p.BestUnderOdds, &p.GameID, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}

	return predictions, nil
}

// GetGames returns a sport's games commencing on the given UTC day
func (c *Client) GetGames(ctx context.Context, sportKey string, date time.Time) ([]models.Game, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	query := `
		SELECT game_id, sport_key, home_team, away_team, commence_time, game_status
		FROM games
		WHERE sport_key = $1 AND commence_time >= $2 AND commence_time < $3
		ORDER BY commence_time ASC
	`

	rows, err := c.db.QueryContext(ctx, query, sportKey, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(
			&g.GameID, &g.SportKey, &g.HomeTeam, &g.AwayTeam,
			&g.CommenceTime, &g.GameStatus,
		); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}

	return games, nil
}

// Close closes the underlying connection pool
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies database connectivity
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
