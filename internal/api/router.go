package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hoanghai1803/newsgenie/internal/api/handlers"
	"github.com/hoanghai1803/newsgenie/internal/history"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(runner handlers.TurnRunner, store *history.Store) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	r.Route("/api", func(api chi.Router) {
		api.Post("/chat", handlers.Chat(runner, store))
		api.Get("/history", handlers.GetHistory(store))
		api.Get("/categories", handlers.GetCategories)

		api.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})
	})

	return r
}
