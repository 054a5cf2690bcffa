package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// Activity types recorded by the services.
const (
	ActivityRegistration  = "registration"
	ActivityLogin         = "login"
	ActivityProductAdd    = "product_add"
	ActivityProductUpdate = "product_update"
	ActivityProductDelete = "product_delete"
	ActivityCartAdd       = "cart_add"
	ActivityCartRemove    = "cart_remove"
	ActivityReview        = "review_submit"
)

// ActivityDB is an entry of the user activity feed.
type ActivityDB struct {
	ActivityID  uuid.UUID      `json:"id" db:"id"`
	UserID      uuid.UUID      `json:"userId" db:"user_id"`
	Type        string         `json:"type" db:"type"`
	Description string         `json:"description" db:"description"`
	Metadata    types.JSONText `json:"metadata" db:"metadata"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	User        *UserRef       `json:"user,omitempty" db:"user"`
}

// Activity is an activity about to be recorded.
type Activity struct {
	UserID      uuid.UUID
	Type        string
	Description string
	Metadata    map[string]any
}
