package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/XavierBriggs/propboard/internal/db"
	"github.com/XavierBriggs/propboard/internal/handlers"
	"github.com/XavierBriggs/propboard/pkg/models"
)

// MockDB implements db.PropboardDB for testing
type MockDB struct {
	stats       []models.PlayerSeasonStats
	total       int
	predictions []models.Prediction
	games       []models.Game
	lastQuery   db.StatsQuery
	statsCalls  int
	predCalls   int
	shouldError bool
}

func (m *MockDB) GetPlayerStats(ctx context.Context, q db.StatsQuery) ([]models.PlayerSeasonStats, int, error) {
	m.statsCalls++
	m.lastQuery = q
	if m.shouldError {
		return nil, 0, context.DeadlineExceeded
	}
	return m.stats, m.total, nil
}

func (m *MockDB) GetPredictions(ctx context.Context, date time.Time) ([]models.Prediction, error) {
	m.predCalls++
	if m.shouldError {
		return nil, context.DeadlineExceeded
	}
	return m.predictions, nil
}

func (m *MockDB) GetGames(ctx context.Context, sportKey string, date time.Time) ([]models.Game, error) {
	if m.shouldError {
		return nil, context.DeadlineExceeded
	}
	return m.games, nil
}

func (m *MockDB) Close() error { return nil }

func (m *MockDB) Ping(ctx context.Context) error {
	if m.shouldError {
		return context.DeadlineExceeded
	}
	return nil
}

func strptr(s string) *string { return &s }

func sampleStats() []models.PlayerSeasonStats {
	return []models.PlayerSeasonStats{
		{PlayerID: "101", FirstName: "Stephen", LastName: "Curry", Team: strptr("GSW"), Season: "2024-25", GamesPlayed: 70},
		{PlayerID: "102", FirstName: "Nikola", LastName: "Jokic", Team: strptr("DEN"), Season: "2024-25", GamesPlayed: 72},
	}
}

func doStatsRequest(t *testing.T, mockDB *MockDB, url string) (*httptest.ResponseRecorder, models.StatsResponse) {
	t.Helper()

	handler := handlers.NewHandler(mockDB)
	req := httptest.NewRequest("GET", url, nil)
	w := httptest.NewRecorder()

	handler.GetPlayerStats(w, req)

	var resp models.StatsResponse
	if w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return w, resp
}

func TestGetPlayerStats_MissingSeason(t *testing.T) {
	mockDB := &MockDB{}

	w, _ := doStatsRequest(t, mockDB, "/api/v1/stats/players")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if mockDB.statsCalls != 0 {
		t.Errorf("store queried despite invalid request")
	}
}

func TestGetPlayerStats_InvalidSortParamsStillSucceed(t *testing.T) {
	mockDB := &MockDB{stats: sampleStats(), total: 2}

	w, resp := doStatsRequest(t, mockDB,
		"/api/v1/stats/players?season=2024-25&sortBy=invalid_column&sortOrder=sideways")

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for invalid sort params, got %d", w.Code)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 rows, got %d", len(resp.Data))
	}
}

func TestGetPlayerStats_PaginationMetadata(t *testing.T) {
	mockDB := &MockDB{stats: sampleStats(), total: 120}

	w, resp := doStatsRequest(t, mockDB,
		"/api/v1/stats/players?season=2024-25&page=2&limit=50")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if resp.Pagination == nil {
		t.Fatal("expected pagination metadata")
	}

	p := resp.Pagination
	if p.CurrentPage != 2 || p.TotalPages != 3 || p.TotalPlayers != 120 || p.Limit != 50 {
		t.Errorf("unexpected pagination: %+v", p)
	}
	if !p.HasNextPage || !p.HasPreviousPage {
		t.Errorf("expected both page flags set: %+v", p)
	}

	if !mockDB.lastQuery.Paginate || mockDB.lastQuery.Offset != 50 {
		t.Errorf("unexpected store query: %+v", mockDB.lastQuery)
	}
}

func TestGetPlayerStats_NoPagingMeansNullPagination(t *testing.T) {
	mockDB := &MockDB{stats: sampleStats(), total: 2}

	_, resp := doStatsRequest(t, mockDB, "/api/v1/stats/players?season=2024-25")

	if resp.Pagination != nil {
		t.Errorf("expected null pagination, got %+v", resp.Pagination)
	}
	if mockDB.lastQuery.Paginate {
		t.Errorf("store asked to paginate without page/limit params")
	}
}

func TestGetPlayerStats_SearchDisablesPagination(t *testing.T) {
	mockDB := &MockDB{stats: sampleStats(), total: 2}

	_, resp := doStatsRequest(t, mockDB,
		"/api/v1/stats/players?season=2024-25&search=curry&page=1&limit=10")

	if resp.Pagination != nil {
		t.Errorf("expected null pagination in search mode, got %+v", resp.Pagination)
	}
	if mockDB.lastQuery.Paginate {
		t.Errorf("store asked to paginate in search mode")
	}
	if mockDB.lastQuery.Search != "curry" {
		t.Errorf("search term not passed through: %+v", mockDB.lastQuery)
	}
}

func TestGetPlayerStats_StoreFailure(t *testing.T) {
	mockDB := &MockDB{shouldError: true}

	w, _ := doStatsRequest(t, mockDB, "/api/v1/stats/players?season=2024-25")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestGetPlayerStats_EmptyResultIsNotNull(t *testing.T) {
	mockDB := &MockDB{stats: nil, total: 0}

	w, resp := doStatsRequest(t, mockDB, "/api/v1/stats/players?season=1999-00")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if resp.Data == nil {
		t.Errorf("expected empty array, got null")
	}
}
