package services

import (
	"context"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
)

// ProfileService reads and updates the authenticated user's profile.
type ProfileService struct {
	reader UserReader
	writer UserWriter
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader UserReader, writer UserWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// GetProfile returns the profile of userID.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile applies the non-nil fields of upd and returns the new profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.Profile, error) {
	user, err := s.writer.UpdateProfile(ctx, userID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := user.Profile()
	return &profile, nil
}
