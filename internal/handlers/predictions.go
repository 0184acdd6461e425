package handlers

import (
	"net/http"

	"github.com/pitchstats/matches-api/internal/models"
)

// GetPrediction returns the heuristic forecast for a fixture
// @Summary Predict Fixture Outcome
// @Description Head-to-head based winner prediction with expected goals and form analysis
// @Tags Predictions
// @Produce json
// @Param home_team query string true "Home team name"
// @Param away_team query string true "Away team name"
// @Success 200 {object} models.PredictionBundle
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]string "Data unavailable"
// @Router /predictions [get]
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	predictionRequests.Inc()

	pq := models.PredictionQuery{
		HomeTeam: r.URL.Query().Get("home_team"),
		AwayTeam: r.URL.Query().Get("away_team"),
	}
	if err := h.validator.Struct(pq); err != nil {
		fieldErrs := make(map[string]string)
		for _, fe := range extractFieldErrors(err) {
			switch fe.field {
			case "HomeTeam":
				fieldErrs["home_team"] = fe.message
			case "AwayTeam":
				fieldErrs["away_team"] = fe.message
			}
		}
		h.validationErrorResponse(w, fieldErrs)
		return
	}

	all, err := h.store.GetAll(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to load matches", "error", err)
		h.storeErrorResponse(w, err)
		return
	}

	bundle := h.prediction.RunPrediction(pq.HomeTeam, pq.AwayTeam, all)
	h.jsonResponse(w, http.StatusOK, bundle)
}
