package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/XavierBriggs/propboard/internal/cache"
	"github.com/XavierBriggs/propboard/internal/db"
	"github.com/XavierBriggs/propboard/internal/hub"
	"github.com/XavierBriggs/propboard/internal/props"
	"github.com/XavierBriggs/propboard/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PredictionCache is the slice of the cache the predictions handler uses
type PredictionCache interface {
	ReadSnapshot(ctx context.Context, sportKey string) (*cache.Snapshot, error)
	WriteSnapshot(ctx context.Context, snap cache.Snapshot) error
	GetUpcomingGames(ctx context.Context, sportKey string) ([]models.Game, error)
	WriteTodaysGames(ctx context.Context, sportKey string, date time.Time, games []models.Game) error
}

// Broadcaster notifies live clients about new snapshots
type Broadcaster interface {
	Broadcast(event hub.RefreshEvent)
}

// PredictionsHandler serves the grouped prediction board
type PredictionsHandler struct {
	db       db.PropboardDB
	cache    PredictionCache
	hub      Broadcaster
	sportKey string
}

// NewPredictionsHandler creates a new predictions handler
func NewPredictionsHandler(database db.PropboardDB, c PredictionCache, b Broadcaster, sportKey string) *PredictionsHandler {
	return &PredictionsHandler{
		db:       database,
		cache:    c,
		hub:      b,
		sportKey: sportKey,
	}
}

// GetPredictions serves today's prop predictions, filtered by value
// and confidence thresholds, sorted by the requested directive, and
// grouped by prop type in the fixed category order
// GET /api/v1/predictions?sort=value_desc&min_value=5&min_confidence=60&prop_type=points
func (h *PredictionsHandler) GetPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	directive := props.SortValueDesc
	if sortParam := r.URL.Query().Get("sort"); sortParam != "" {
		parsed, ok := props.ParseDirective(sortParam)
		if !ok {
			// Permissive fallback: unknown directives keep input order
			log.Warn().Str("sort", sortParam).Msg("unknown sort directive, keeping input order")
		}
		directive = parsed
	}

	minValue := parseFloatParam(r, "min_value", 0)
	minConfidence := parseFloatParam(r, "min_confidence", 0)

	var only models.PropType
	if catParam := r.URL.Query().Get("prop_type"); catParam != "" {
		cat := models.PropType(catParam)
		if isKnownCategory(cat) {
			only = cat
		} else {
			log.Warn().Str("prop_type", catParam).Msg("unknown prop type filter, ignoring")
		}
	}

	predictions, err := h.loadPredictions(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve predictions", err)
		return
	}

	groups := props.BuildView(predictions, directive, minValue, minConfidence, only)

	count := 0
	for _, g := range groups {
		count += len(g.Predictions)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"groups": groups,
		"count":  count,
		"sort":   string(directive),
	})
}

// RefreshPredictions rebuilds the cached snapshot and the games cache
// from the store and notifies connected clients
// POST /api/v1/predictions/refresh
func (h *PredictionsHandler) RefreshPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	now := time.Now().UTC()

	predictions, err := h.db.GetPredictions(ctx, now)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to refresh predictions", err)
		return
	}

	games, err := h.db.GetGames(ctx, h.sportKey, now)
	if err != nil {
		// Opponent names are cosmetic; refresh the board without them
		log.Warn().Err(err).Msg("games unavailable, skipping games cache refresh")
	} else {
		if err := h.cache.WriteTodaysGames(ctx, h.sportKey, now, games); err != nil {
			log.Warn().Err(err).Msg("failed to refresh games cache")
		}
		predictions = props.AttachOpponents(predictions, games)
	}

	snap := cache.Snapshot{
		SnapshotID:  uuid.New().String(),
		SportKey:    h.sportKey,
		GeneratedAt: now,
		Predictions: predictions,
	}

	if err := h.cache.WriteSnapshot(ctx, snap); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to write snapshot", err)
		return
	}

	h.hub.Broadcast(hub.RefreshEvent{
		Type:        hub.EventTypeRefresh,
		SnapshotID:  snap.SnapshotID,
		SportKey:    snap.SportKey,
		Predictions: len(snap.Predictions),
		Timestamp:   snap.GeneratedAt,
	})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"snapshot_id": snap.SnapshotID,
		"predictions": len(snap.Predictions),
	})
}

// loadPredictions serves from the latest snapshot, falling back to
// the store on a cache miss
func (h *PredictionsHandler) loadPredictions(ctx context.Context) ([]models.Prediction, error) {
	snap, err := h.cache.ReadSnapshot(ctx, h.sportKey)
	if err == nil {
		return snap.Predictions, nil
	}
	if err != cache.ErrNotFound {
		log.Warn().Err(err).Msg("snapshot read failed, falling back to store")
	}

	return h.loadFromStore(ctx)
}

// loadFromStore reads today's predictions from Postgres and resolves
// opponents from the upcoming-games cache
func (h *PredictionsHandler) loadFromStore(ctx context.Context) ([]models.Prediction, error) {
	predictions, err := h.db.GetPredictions(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	games, err := h.cache.GetUpcomingGames(ctx, h.sportKey)
	if err != nil {
		// Opponent names are cosmetic; serve without them
		log.Warn().Err(err).Msg("upcoming games unavailable, skipping opponent enrichment")
		return predictions, nil
	}

	return props.AttachOpponents(predictions, games), nil
}

func isKnownCategory(cat models.PropType) bool {
	for _, c := range props.CategoryOrder {
		if c == cat {
			return true
		}
	}
	return false
}
