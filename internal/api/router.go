package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lumenforge/luxd/internal/show"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/status", s.handleStatus)
		r.Post("/stop", s.handleStop)

		r.Route("/shows", func(r chi.Router) {
			r.Get("/", s.handleListShows)
			r.Post("/{name}/play", s.handlePlay)
		})
	})

	// WebSocket status stream
	r.Get("/ws", s.handleWebSocket)

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}

// handleStatus returns the current playback status.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.runner.Status())
}

// handleListShows returns the registered show names.
func (s *Server) handleListShows(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"shows": s.runner.Shows(),
	})
}

// handlePlay starts the named show, optionally at a clip-time offset
// given by the start_at query parameter (seconds).
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	startAt := 0.0
	if raw := r.URL.Query().Get("start_at"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			writeBadRequest(w, "start_at must be a non-negative number of seconds")
			return
		}
		startAt = v
	}

	if err := s.runner.Play(name, startAt); err != nil {
		if errors.Is(err, show.ErrUnknownShow) {
			writeNotFound(w, err.Error())
			return
		}
		writeInternalError(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.runner.Status())
}

// handleStop stops the current show. Stopping an idle runner succeeds.
func (s *Server) handleStop(w http.ResponseWriter, _ *http.Request) {
	s.runner.Stop()
	writeJSON(w, http.StatusOK, s.runner.Status())
}
