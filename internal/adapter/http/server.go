// Package adapthttp is the driving HTTP adapter that routes requests to
// application services.
package adapthttp

import (
	"log/slog"
	"net/http"

	"weathervane/internal/app"
)

// Server routes HTTP requests to the observation service.
type Server struct {
	obs *app.ObservationService
	log *slog.Logger
}

// New creates a Server wired to the given application service.
func New(obs *app.ObservationService, log *slog.Logger) *Server {
	return &Server{obs: obs, log: log}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("GET /weather", s.handleListObservations)
	api.HandleFunc("POST /weather", s.handleCreateObservation)
	api.HandleFunc("GET /weather/{id}", s.handleGetObservation)
	api.HandleFunc("PUT /weather/{id}", s.handleReplaceObservation)
	api.HandleFunc("PATCH /weather/{id}", s.handleMergeObservation)
	api.HandleFunc("DELETE /weather/{id}", s.handleDeleteObservation)

	root := http.NewServeMux()
	root.Handle("/api/v1/", http.StripPrefix("/api/v1", api))

	return withNoCache(s.loggingMiddleware(root))
}
