package handlers

import (
	"net/http"
)

// GetTeams lists all team names present in the dataset
// @Summary List Teams
// @Tags Teams
// @Produce json
// @Success 200 {object} map[string]interface{} "Team names"
// @Failure 404 {object} map[string]string "Data unavailable"
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.GetAll(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to load matches", "error", err)
		h.storeErrorResponse(w, err)
		return
	}

	teams := collectTeams(all)
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"count": len(teams),
	})
}
