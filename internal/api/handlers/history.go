package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hoanghai1803/newsgenie/internal/history"
	"github.com/hoanghai1803/newsgenie/internal/models"
)

// GetHistory handles GET /api/history. An optional ?limit=N query parameter
// bounds the response to the newest N turns, still in chronological order.
func GetHistory(store *history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
			limit = n
		}

		turns, err := store.Recent(r.Context(), limit)
		if err != nil {
			slog.Error("failed to load history", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to load history")
			return
		}

		if turns == nil {
			turns = []models.Turn{}
		}
		writeJSON(w, http.StatusOK, turns)
	}
}
