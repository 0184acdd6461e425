package handlers

import (
	"net/http"
)

// ReloadDataset replaces the cached snapshot from the underlying source
// @Summary Reload Match Dataset
// @Description Explicitly re-reads the match source and flushes the response cache
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Source unavailable"
// @Router /system/reload [post]
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.Reload(ctx); err != nil {
		h.logger.Errorw("Dataset reload failed", "error", err)
		h.storeErrorResponse(w, err)
		return
	}
	h.cache.Flush(ctx)

	h.logger.Infow("Dataset reloaded")
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "reloaded"})
}
