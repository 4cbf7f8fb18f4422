package handlers

import (
	"errors"
	"net/http"
	"time"

	"dashboard/internal/domain"
)

// Health reports process health from a trivial liveness query: 200 when the
// database answers, 503 when it is down or not configured, 500 when the check
// itself blows up. No retry, no circuit breaking.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			a.Logger.Error().Interface("panic", rec).Msg("health check panicked")
			a.json(w, http.StatusInternalServerError, map[string]any{
				"status":    "error",
				"message":   "health check failed unexpectedly",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		}
	}()

	if err := a.Store.Ping(r.Context()); err != nil {
		message := "database unreachable"
		if errors.Is(err, domain.ErrNoDatabase) {
			message = "database not configured"
		}
		a.Logger.Error().Err(err).Msg("health check failed")
		a.json(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "error",
			"message":   message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  "down",
		})
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"message":   "service is healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  "up",
	})
}
