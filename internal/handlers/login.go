package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.PublicUser, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// Unknown e-mail and wrong password produce the same response.
// @Summary User login
// @Description Authenticate user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AuthResponse "Session token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid credentials / invalid request body"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				writeError(w, r, http.StatusBadRequest, "Email and password are required", err)
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, r, http.StatusBadRequest, "Invalid credentials", nil)
			default:
				internalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
	}
}
