package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pitchstats/matches-api/internal/store"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check all dependencies; hitting the store triggers the lazy load
	_, storeErr := h.store.GetAll(ctx)
	checks := map[string]bool{
		"store": storeErr == nil,
		"cache": h.cache.Ping(ctx) == nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !allHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// validationErrorResponse reports itemized per-field problems with a 400
func (h *Handler) validationErrorResponse(w http.ResponseWriter, fields map[string]string) {
	h.jsonResponse(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "invalid request parameters",
		"fields": fields,
	})
}

// storeErrorResponse maps store failures to client-visible statuses without
// leaking internal detail
func (h *Handler) storeErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrDataUnavailable) {
		h.errorResponse(w, http.StatusNotFound, "match data unavailable")
		return
	}
	h.errorResponse(w, http.StatusInternalServerError, "internal server error")
}
