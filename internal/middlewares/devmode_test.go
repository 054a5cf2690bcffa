package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevModeMiddleware(t *testing.T) {
	var on bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		on = IsDevMode(r.Context())
	})

	DevModeMiddleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, on)

	next.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, on)
}
