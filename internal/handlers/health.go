package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/middlewares"
)

const (
	healthCheckTimeout = 2 * time.Second
	checkUnavailable   = "unavailable"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

// HealthResponse reports the state of each dependency
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`

	// Failing dependencies. The value is "unavailable", or the error in development mode
	Checks map[string]string `json:"checks,omitempty"`
}

// NewHealthHandler returns an HTTP handler running every check.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "All dependencies reachable"
// @Failure 503 {object} handlers.HealthResponse "A dependency is unreachable"
// @Router /health [get]
func NewHealthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		failed := map[string]string{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.Log.Errorw("health check failed", "dependency", name, "error", err)
				failed[name] = checkUnavailable
				if middlewares.IsDevMode(r.Context()) {
					failed[name] = err.Error()
				}
			}
		}

		if len(failed) > 0 {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Checks: failed})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
