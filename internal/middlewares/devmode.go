package middlewares

import (
	"context"
	"net/http"
)

type devModeKey struct{}

// DevModeMiddleware marks requests so error responses may carry internal details.
// It is only mounted when APP_ENV=development.
func DevModeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), devModeKey{}, true)))
	})
}

// IsDevMode reports whether the request passed through DevModeMiddleware.
func IsDevMode(ctx context.Context) bool {
	on, _ := ctx.Value(devModeKey{}).(bool)
	return on
}
