package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hoanghai1803/newsgenie/internal/history"
	"github.com/hoanghai1803/newsgenie/internal/pipeline"
)

// TurnRunner is the slice of the pipeline the chat handler needs.
type TurnRunner interface {
	RunTurn(ctx context.Context, text string, categories []string, queryHint string) []pipeline.State
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message    string   `json:"message"`
	Categories []string `json:"categories,omitempty"`
	Query      string   `json:"query,omitempty"`
}

// ChatResponse carries one result per executed category (or a single result
// for general questions).
type ChatResponse struct {
	Intent  string           `json:"intent"`
	Results []pipeline.State `json:"results"`
}

// Chat handles POST /api/chat. It runs the full turn workflow and records
// both sides of the exchange in the session log.
func Chat(runner TurnRunner, store *history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		req.Message = strings.TrimSpace(req.Message)
		if req.Message == "" {
			writeError(w, http.StatusBadRequest, "Message must not be empty")
			return
		}

		if _, err := store.Append(ctx, "user", req.Message); err != nil {
			slog.Warn("failed to record user turn", "error", err)
		}

		results := runner.RunTurn(ctx, req.Message, req.Categories, req.Query)

		for _, res := range results {
			if _, err := store.Append(ctx, "assistant", res.Answer); err != nil {
				slog.Warn("failed to record assistant turn", "error", err)
			}
		}

		resp := ChatResponse{Results: results}
		if len(results) > 0 {
			resp.Intent = string(results[0].Intent)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
