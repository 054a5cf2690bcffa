package models

import "github.com/google/uuid"

// RatingRecomputeRequest asks the background worker to recompute a product's rating.
// It is published when the inline recompute after a review write fails.
type RatingRecomputeRequest struct {
	ProductID   uuid.UUID `json:"product_id"`   // Product whose aggregate may be stale
	Reason      string    `json:"reason"`       // Error that left the aggregate stale
	RequestedAt int64     `json:"requested_at"` // Unix timestamp (seconds)
}
