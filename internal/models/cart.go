package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItemDB is one product in a user's cart. Repeated adds accumulate Quantity.
type CartItemDB struct {
	CartItemID uuid.UUID  `json:"id" db:"id"`
	UserID     uuid.UUID  `json:"userId" db:"user_id"`
	ProductID  uuid.UUID  `json:"productId" db:"product_id"`
	Quantity   int        `json:"quantity" db:"quantity"`
	AddedAt    time.Time  `json:"addedAt" db:"added_at"`
	Product    *ProductDB `json:"product,omitempty" db:"product"`
}
