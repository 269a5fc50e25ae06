package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/XavierBriggs/propboard/pkg/models"
	"github.com/redis/go-redis/v9"
)

// TTL constants
const (
	TodaysGamesListTTL = 24 * time.Hour
	GameSummaryTTL     = 6 * time.Hour
	SnapshotTTL        = 30 * time.Minute
)

// ErrNotFound is returned when a key is absent from the cache
var ErrNotFound = redis.Nil

// Snapshot is one published set of predictions. The predictions
// handler serves from the latest snapshot and falls back to Postgres
// on a miss.
type Snapshot struct {
	SnapshotID  string              `json:"snapshot_id"`
	SportKey    string              `json:"sport_key"`
	GeneratedAt time.Time           `json:"generated_at"`
	Predictions []models.Prediction `json:"predictions"`
}

// Cache reads and writes propboard data in Redis
type Cache struct {
	client *redis.Client
}

// New creates a cache around an existing Redis client
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// WriteTodaysGames stores the ordered list of game IDs for a sport and
// date, plus each game's summary blob
func (c *Cache) WriteTodaysGames(ctx context.Context, sportKey string, date time.Time, games []models.Game) error {
	key := fmt.Sprintf("games:today:%s:%s", sportKey, date.Format("2006-01-02"))

	values := make([]interface{}, len(games))
	for i, g := range games {
		values[i] = g.GameID
	}

	pipe := c.client.Pipeline()
	pipe.Del(ctx, key) // Clear old list
	if len(values) > 0 {
		pipe.RPush(ctx, key, values...)
	}
	pipe.Expire(ctx, key, TodaysGamesListTTL)

	for _, g := range games {
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("marshaling game %s: %w", g.GameID, err)
		}
		pipe.Set(ctx, fmt.Sprintf("game:%s:summary", g.GameID), data, GameSummaryTTL)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// GetUpcomingGames returns today's games for a sport, falling back to
// tomorrow's slate when today's is empty (late-night users)
func (c *Cache) GetUpcomingGames(ctx context.Context, sportKey string) ([]models.Game, error) {
	today := time.Now().UTC()
	gameIDs, err := c.gameIDsFor(ctx, sportKey, today)
	if err != nil {
		return nil, err
	}

	if len(gameIDs) == 0 {
		gameIDs, _ = c.gameIDsFor(ctx, sportKey, today.Add(24*time.Hour))
	}

	games := make([]models.Game, 0, len(gameIDs))
	for _, id := range gameIDs {
		game, err := c.getGameSummary(ctx, id)
		if err != nil {
			// Skip games that can't be loaded
			continue
		}
		games = append(games, game)
	}

	return games, nil
}

// WriteSnapshot stores the latest prediction snapshot for a sport
func (c *Cache) WriteSnapshot(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	key := fmt.Sprintf("predictions:latest:%s", snap.SportKey)
	if err := c.client.Set(ctx, key, data, SnapshotTTL).Err(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot returns the latest prediction snapshot for a sport,
// or ErrNotFound when none is cached
func (c *Cache) ReadSnapshot(ctx context.Context, sportKey string) (*Snapshot, error) {
	key := fmt.Sprintf("predictions:latest:%s", sportKey)
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

func (c *Cache) gameIDsFor(ctx context.Context, sportKey string, date time.Time) ([]string, error) {
	key := fmt.Sprintf("games:today:%s:%s", sportKey, date.Format("2006-01-02"))
	return c.client.LRange(ctx, key, 0, -1).Result()
}

func (c *Cache) getGameSummary(ctx context.Context, gameID string) (models.Game, error) {
	key := fmt.Sprintf("game:%s:summary", gameID)

	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return models.Game{}, err
	}

	var game models.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return models.Game{}, fmt.Errorf("parsing game: %w", err)
	}
	return game, nil
}
