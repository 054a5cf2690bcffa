package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/middlewares"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp 10.0.3.7:5432: connection refused") }

	tests := []struct {
		name         string
		checks       map[string]HealthCheck
		devMode      bool
		expectedCode int
		expected     HealthResponse
	}{
		{
			name:         "all up",
			checks:       map[string]HealthCheck{"postgres": ok, "redis": ok},
			expectedCode: http.StatusOK,
			expected:     HealthResponse{Status: "ok"},
		},
		{
			name:         "redis down",
			checks:       map[string]HealthCheck{"postgres": ok, "redis": down},
			expectedCode: http.StatusServiceUnavailable,
			expected:     HealthResponse{Status: "unavailable", Checks: map[string]string{"redis": "unavailable"}},
		},
		{
			name:         "dev mode shows the error",
			checks:       map[string]HealthCheck{"postgres": down, "redis": ok},
			devMode:      true,
			expectedCode: http.StatusServiceUnavailable,
			expected:     HealthResponse{Status: "unavailable", Checks: map[string]string{"postgres": "dial tcp 10.0.3.7:5432: connection refused"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h http.Handler = NewHealthHandler(tt.checks)
			if tt.devMode {
				h = middlewares.DevModeMiddleware(h)
			}

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHealthHandler_LogsFailure(t *testing.T) {
	logs := observeLogs(t)

	checks := map[string]HealthCheck{
		"kafka": func(context.Context) error { return errors.New("broker 10.0.3.9:9092 unreachable") },
	}

	rr := httptest.NewRecorder()
	NewHealthHandler(checks)(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.NotContains(t, rr.Body.String(), "10.0.3.9")

	entries := logs.FilterMessage("health check failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kafka", entries[0].ContextMap()["dependency"])
	assert.Equal(t, "broker 10.0.3.9:9092 unreachable", entries[0].ContextMap()["error"])
}
