package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/google/uuid"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileGetter defines the interface for reading the caller's profile.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// ProfileUpdater defines the interface for changing the caller's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.Profile, error)
}

// UpdateProfileRequest represents the JSON body of a profile update.
// Absent fields are left unchanged.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// default: Alice
	DisplayName *string `json:"displayName,omitempty"`

	// default: Upcycling furniture since 2019
	Bio *string `json:"bio,omitempty"`

	// default: https://example.com/avatar.png
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get profile
// @Description Returns the profile of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			writeProfileError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update profile
// @Description Updates display name, bio and avatar of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		profile, err := svc.UpdateProfile(r.Context(), userID, models.ProfileUpdate{
			DisplayName: req.DisplayName,
			Bio:         req.Bio,
			AvatarURL:   req.AvatarURL,
		})
		if err != nil {
			writeProfileError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

func writeProfileError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		writeError(w, r, http.StatusNotFound, "User not found", nil)
		return
	}
	internalError(w, r, err)
}
