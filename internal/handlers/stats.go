package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/XavierBriggs/propboard/internal/db"
	"github.com/XavierBriggs/propboard/pkg/models"
)

const maxStatsLimit = 100

// GetPlayerStats serves paginated, sortable player season statistics
// GET /api/v1/stats/players?season=2024-25&sortBy=points&sortOrder=desc&page=1&limit=50&search=curry
//
// Invalid sortBy/sortOrder values never fail the request; they fall
// back to defaults inside the store's order-by builder. Pagination is
// null when the caller did not page or when search mode is active
// (search returns the full matching set).
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	season := r.URL.Query().Get("season")
	if season == "" {
		respondError(w, http.StatusBadRequest, "season is required", nil)
		return
	}

	search := r.URL.Query().Get("search")
	paginate := search == "" &&
		(r.URL.Query().Get("page") != "" || r.URL.Query().Get("limit") != "")

	page := parseIntParam(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := parseIntParam(r, "limit", 50)
	if limit < 1 {
		limit = 50
	}
	if limit > maxStatsLimit {
		limit = maxStatsLimit
	}

	q := db.StatsQuery{
		Season:    season,
		SortBy:    r.URL.Query().Get("sortBy"),
		SortOrder: r.URL.Query().Get("sortOrder"),
		Search:    search,
		Limit:     limit,
		Offset:    (page - 1) * limit,
		Paginate:  paginate,
	}

	stats, total, err := h.db.GetPlayerStats(ctx, q)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve player stats", err)
		return
	}

	if stats == nil {
		stats = []models.PlayerSeasonStats{}
	}

	var pagination *models.Pagination
	if paginate {
		totalPages := (total + limit - 1) / limit
		pagination = &models.Pagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalPlayers:    total,
			Limit:           limit,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		}
	}

	respondJSON(w, http.StatusOK, models.StatsResponse{
		Data:       stats,
		Pagination: pagination,
	})
}
