package models

import "time"

// PropType identifies a player-prop market category
type PropType string

const (
	PropPoints   PropType = "points"
	PropAssists  PropType = "assists"
	PropRebounds PropType = "rebounds"
	PropSteals   PropType = "steals"
	PropBlocks   PropType = "blocks"
	PropThrees   PropType = "threes"
)

// Prediction represents a single player-prop forecast with the best
// market prices found across books. Nullable fields use pointers:
// a nil value means the model (or the market) had nothing for that side.
type Prediction struct {
	ID                  string    `json:"id"`
	PlayerFirstName     string    `json:"player_first_name"`
	PlayerLastName      string    `json:"player_last_name"`
	PlayerTeam          string    `json:"player_team"`
	PropType            PropType  `json:"prop_type"`
	Line                *float64  `json:"line"`
	PredictedValueOver  *float64  `json:"predicted_value_over"`
	PredictedValueUnder *float64  `json:"predicted_value_under"`
	ConfidenceScore     float64   `json:"confidence_score"`
	BestOverOdds        *int      `json:"best_over_odds"`
	BestUnderOdds       *int      `json:"best_under_odds"`
	GameID              string    `json:"game_id"`
	OpponentTeam        string    `json:"opponent_team,omitempty"`
	BestOddsImpliedProb *float64  `json:"best_odds_implied_prob,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// PlayerName returns the display name used for sorting and search
func (p Prediction) PlayerName() string {
	return p.PlayerFirstName + " " + p.PlayerLastName
}

// Game represents an upcoming or live game
type Game struct {
	GameID       string    `json:"game_id"`
	SportKey     string    `json:"sport_key"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
	GameStatus   string    `json:"game_status"` // upcoming, live, final
}

// PlayerSeasonStats is a flat row of a player's season averages plus
// last-5-game rolling averages, keyed by player + season
type PlayerSeasonStats struct {
	PlayerID        string   `json:"player_id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Team            *string  `json:"team"`
	Season          string   `json:"season"`
	GamesPlayed     int      `json:"games_played"`
	MinutesPerGame  *float64 `json:"minutes_per_game"`
	PointsPerGame   *float64 `json:"points_per_game"`
	ReboundsPerGame *float64 `json:"rebounds_per_game"`
	AssistsPerGame  *float64 `json:"assists_per_game"`
	StealsPerGame   *float64 `json:"steals_per_game"`
	BlocksPerGame   *float64 `json:"blocks_per_game"`
	ThreesPerGame   *float64 `json:"threes_per_game"`
	FGPct           *float64 `json:"fg_pct"`
	FTPct           *float64 `json:"ft_pct"`
	PointsLast5     *float64 `json:"points_last5"`
	ReboundsLast5   *float64 `json:"rebounds_last5"`
	AssistsLast5    *float64 `json:"assists_last5"`
}

// Pagination describes the page window returned by a stats query
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalPlayers    int  `json:"totalPlayers"`
	Limit           int  `json:"limit"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// StatsResponse is the player-stats endpoint payload. Pagination is
// null when the caller did not page or when search mode is active.
type StatsResponse struct {
	Data       []PlayerSeasonStats `json:"data"`
	Pagination *Pagination         `json:"pagination"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
