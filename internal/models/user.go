package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID        uuid.UUID `json:"id" db:"id"`                        // Primary key
	Email         string    `json:"email" db:"email"`                  // Unique identity key
	PasswordHash  string    `json:"-" db:"password_hash"`              // bcrypt hash, never serialized
	Username      string    `json:"username" db:"username"`            // Handle, defaults to e-mail local part
	DisplayName   *string   `json:"displayName" db:"display_name"`     // Optional display name
	Bio           *string   `json:"bio" db:"bio"`                      // Optional bio
	AvatarURL     *string   `json:"avatarUrl" db:"avatar_url"`         // Optional avatar
	GreenPoints   int       `json:"greenPoints" db:"green_points"`     // Gamification counter
	CO2Saved      float64   `json:"co2Saved" db:"co2_saved"`           // Kilograms of CO2 saved
	WasteDiverted float64   `json:"wasteDiverted" db:"waste_diverted"` // Kilograms diverted from landfill
	BadgesEarned  int       `json:"badgesEarned" db:"badges_earned"`   // Badge counter
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`         // Last update timestamp
}

// NewUser holds the fields written on registration.
type NewUser struct {
	Email        string
	PasswordHash string
	Username     string
	DisplayName  string
}

// ProfileUpdate lists the profile fields a user may change. Nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

// PublicUser is the projection returned by auth endpoints.
type PublicUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"displayName"`
}

// Profile is the projection returned by profile endpoints.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	DisplayName   *string   `json:"displayName"`
	Bio           *string   `json:"bio"`
	AvatarURL     *string   `json:"avatarUrl"`
	GreenPoints   int       `json:"greenPoints"`
	CO2Saved      float64   `json:"co2Saved"`
	WasteDiverted float64   `json:"wasteDiverted"`
	BadgesEarned  int       `json:"badgesEarned"`
}

// Public returns the auth projection of the user.
func (u *UserDB) Public() PublicUser {
	return PublicUser{
		ID:          u.UserID,
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}

// Profile returns the profile projection of the user.
func (u *UserDB) Profile() Profile {
	return Profile{
		ID:            u.UserID,
		Email:         u.Email,
		Username:      u.Username,
		DisplayName:   u.DisplayName,
		Bio:           u.Bio,
		AvatarURL:     u.AvatarURL,
		GreenPoints:   u.GreenPoints,
		CO2Saved:      u.CO2Saved,
		WasteDiverted: u.WasteDiverted,
		BadgesEarned:  u.BadgesEarned,
	}
}

// UserRef is the submitter/seller identity attached to other records.
type UserRef struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"`
	DisplayName *string   `json:"displayName" db:"display_name"`
}
