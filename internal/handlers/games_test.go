package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/XavierBriggs/propboard/internal/handlers"
	"github.com/XavierBriggs/propboard/pkg/models"
)

func TestHandleGetUpcomingGames(t *testing.T) {
	mockCache := &MockCache{games: []models.Game{
		{GameID: "g1", SportKey: "basketball_nba", HomeTeam: "DEN", AwayTeam: "LAL", GameStatus: "upcoming"},
	}}

	handler := handlers.NewGamesHandler(mockCache)
	req := httptest.NewRequest("GET", "/api/v1/games/upcoming", nil)
	w := httptest.NewRecorder()

	handler.HandleGetUpcomingGames(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Sport string        `json:"sport"`
		Games []models.Game `json:"games"`
		Count int           `json:"count"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Sport != "basketball_nba" {
		t.Errorf("sport defaulted to %q", resp.Sport)
	}
	if resp.Count != 1 || len(resp.Games) != 1 || resp.Games[0].GameID != "g1" {
		t.Errorf("unexpected games payload: %+v", resp)
	}
}

func TestHandleGetUpcomingGames_EmptySlate(t *testing.T) {
	mockCache := &MockCache{}

	handler := handlers.NewGamesHandler(mockCache)
	req := httptest.NewRequest("GET", "/api/v1/games/upcoming?sport=baseball_mlb", nil)
	w := httptest.NewRecorder()

	handler.HandleGetUpcomingGames(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["games"] == nil {
		t.Errorf("expected empty array, got null")
	}
}
