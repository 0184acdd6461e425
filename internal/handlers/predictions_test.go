package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pitchstats/matches-api/internal/models"
	"github.com/pitchstats/matches-api/internal/store"
)

func TestGetPredictionValidation(t *testing.T) {
	h := newTestHandler(storeOf(testDataset()))

	tests := []struct {
		name  string
		query string
		field string
	}{
		{"missing both", "", "home_team"},
		{"missing away", "home_team=Arsenal", "away_team"},
		{"missing home", "away_team=Chelsea", "home_team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/predictions?"+tt.query, nil)
			w := httptest.NewRecorder()
			h.GetPrediction(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var body struct {
				Fields map[string]string `json:"fields"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if _, ok := body.Fields[tt.field]; !ok {
				t.Errorf("fields = %v, want entry for %s", body.Fields, tt.field)
			}
		})
	}
}

func TestGetPrediction(t *testing.T) {
	h := newTestHandler(storeOf(testDataset()))

	req := httptest.NewRequest("GET", "/api/v1/predictions?home_team=Arsenal&away_team=Chelsea", nil)
	w := httptest.NewRecorder()
	h.GetPrediction(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var bundle models.PredictionBundle
	if err := json.Unmarshal(w.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if bundle.HomeTeam != "Arsenal" || bundle.AwayTeam != "Chelsea" {
		t.Errorf("fixture = %s vs %s", bundle.HomeTeam, bundle.AwayTeam)
	}
	if bundle.MatchesAnalyzed != 2 {
		t.Errorf("MatchesAnalyzed = %d, want 2 (both orientations)", bundle.MatchesAnalyzed)
	}
	// Arsenal won one and drew one of the two head-to-head matches
	if bundle.WinnerPrediction.PredictedWinner != "Arsenal" {
		t.Errorf("PredictedWinner = %q, want Arsenal", bundle.WinnerPrediction.PredictedWinner)
	}
	if bundle.HeadToHeadStats.HomeWins != 1 || bundle.HeadToHeadStats.Draws != 1 {
		t.Errorf("head-to-head = %+v", bundle.HeadToHeadStats)
	}
}

func TestGetPredictionUnknownTeams(t *testing.T) {
	h := newTestHandler(storeOf(testDataset()))

	req := httptest.NewRequest("GET", "/api/v1/predictions?home_team=Ajax&away_team=Porto", nil)
	w := httptest.NewRecorder()
	h.GetPrediction(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var bundle models.PredictionBundle
	if err := json.Unmarshal(w.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bundle.WinnerPrediction.PredictedWinner != models.PredictedInsufficientData {
		t.Errorf("PredictedWinner = %q, want %q",
			bundle.WinnerPrediction.PredictedWinner, models.PredictedInsufficientData)
	}
	if bundle.ConfidenceLevel != 0 {
		t.Errorf("ConfidenceLevel = %v, want 0", bundle.ConfidenceLevel)
	}
}

func TestGetPredictionDataUnavailable(t *testing.T) {
	h := newTestHandler(&MockMatchStore{
		GetAllFunc: func(ctx context.Context) ([]models.Match, error) {
			return nil, store.ErrDataUnavailable
		},
	})

	req := httptest.NewRequest("GET", "/api/v1/predictions?home_team=Arsenal&away_team=Chelsea", nil)
	w := httptest.NewRecorder()
	h.GetPrediction(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
