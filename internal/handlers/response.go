package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/jwt"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/middlewares"
	"github.com/google/uuid"
)

//go:generate mockgen -source=response.go -destination=response_mock.go -package=handlers

// ErrorResponse is the error envelope of every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Underlying error, only set in development mode
	Details string `json:"details,omitempty"`
}

// Tokener resolves the authenticated user of a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError writes the error envelope. cause is exposed as details in development mode only.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string, cause error) {
	resp := ErrorResponse{Error: msg}
	if cause != nil && middlewares.IsDevMode(r.Context()) {
		resp.Details = cause.Error()
	}
	writeJSON(w, status, resp)
}

func internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"uri", r.RequestURI,
		"err", err,
	)
	writeError(w, r, http.StatusInternalServerError, "Internal server error", err)
}

// authenticatedUser returns the user the bearer token was issued to, or writes 401.
func authenticatedUser(w http.ResponseWriter, r *http.Request, tokener Tokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Warnw("unauthorized request: missing or malformed token", "uri", r.RequestURI)
		writeError(w, r, http.StatusUnauthorized, "Unauthorized", nil)
		return uuid.Nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Warnw("failed to parse token claims", "error", err)
		writeError(w, r, http.StatusUnauthorized, "Unauthorized", nil)
		return uuid.Nil, false
	}

	return claims.UserID, true
}
