package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, displayName, username string) (*models.PublicUser, string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Display name, defaults to the username
	// default: Alice
	DisplayName string `json:"displayName,omitempty"`

	// Username, defaults to the e-mail local part
	// default: alice
	Username string `json:"username,omitempty"`
}

// AuthResponse is returned by register and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Public user projection
	User *models.PublicUser `json:"user"`

	// Session token, valid for 7 days
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. E-mail must be unique. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "User already exists / invalid request / password too long"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		user, token, err := svc.Register(r.Context(), req.Email, req.Password, req.DisplayName, req.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingCredentials):
				writeError(w, r, http.StatusBadRequest, "Email and password are required", err)
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, r, http.StatusBadRequest, "Password must be at most 72 bytes", err)
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, r, http.StatusBadRequest, "User already exists", err)
			default:
				internalError(w, r, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
	}
}
