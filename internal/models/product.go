package models

import (
	"time"

	"github.com/google/uuid"
)

// Product statuses.
const (
	ProductStatusAvailable = "available"
	ProductStatusSold      = "sold"
)

// ProductDB represents a marketplace listing.
// Rating and ReviewsCount are derived from the product's reviews and only written by the rating recompute.
type ProductDB struct {
	ProductID    uuid.UUID `json:"id" db:"id"`
	SellerID     uuid.UUID `json:"sellerId" db:"seller_id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description" db:"description"`
	Category     *string   `json:"category" db:"category"`
	Price        float64   `json:"price" db:"price"`
	ImageURL     *string   `json:"imageUrl" db:"image_url"`
	Rating       float64   `json:"rating" db:"rating"`
	ReviewsCount int       `json:"reviewsCount" db:"reviews_count"`
	Quantity     int       `json:"quantity" db:"quantity"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	Seller       *UserRef  `json:"seller,omitempty" db:"seller"`
}

// NewProduct holds the fields written when a product is listed.
type NewProduct struct {
	SellerID    uuid.UUID
	Title       string
	Description *string
	Category    *string
	Price       float64
	ImageURL    *string
	Quantity    int
	Status      string
}

// ProductUpdate holds the fields a seller may change. Nil fields are left as they are.
type ProductUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Price       *float64
	ImageURL    *string
	Quantity    *int
	Status      *string
}
