package handlers

import (
	"context"
	"net/http"

	"github.com/XavierBriggs/propboard/pkg/models"
)

// GamesSource lists upcoming games for a sport
type GamesSource interface {
	GetUpcomingGames(ctx context.Context, sportKey string) ([]models.Game, error)
}

// GamesHandler handles games-related API endpoints
type GamesHandler struct {
	source GamesSource
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(source GamesSource) *GamesHandler {
	return &GamesHandler{source: source}
}

// HandleGetUpcomingGames returns the upcoming slate for a sport
// GET /api/v1/games/upcoming?sport={sport_key}
func (h *GamesHandler) HandleGetUpcomingGames(w http.ResponseWriter, r *http.Request) {
	sportKey := r.URL.Query().Get("sport")
	if sportKey == "" {
		sportKey = "basketball_nba" // Default to NBA
	}

	games, err := h.source.GetUpcomingGames(r.Context(), sportKey)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve games", err)
		return
	}

	if games == nil {
		games = []models.Game{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sport": sportKey,
		"games": games,
		"count": len(games),
	})
}
