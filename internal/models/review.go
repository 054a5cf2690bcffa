package models

import (
	"time"

	"github.com/google/uuid"
)

// ReviewDB represents a review. At most one exists per (ProductID, UserID).
type ReviewDB struct {
	ReviewID  uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   *string   `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	User      *UserRef  `json:"user,omitempty" db:"user"`
}
