package services

import (
	"context"
	"errors"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=cart.go -destination=cart_mock.go -package=services

var (
	// ErrInvalidQuantity is returned for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrCartItemNotFound is returned when removing a product that is not in the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartWriter defines cart write operations.
type CartWriter interface {
	SaveItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.CartItemDB, bool, error)
	DeleteItem(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

// CartReader defines cart read operations.
type CartReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartItemDB, error)
}

// CartService manages a user's cart.
type CartService struct {
	writer     CartWriter
	reader     CartReader
	products   ProductReader
	activities ActivityRecorder
}

// NewCartService creates a new CartService.
func NewCartService(writer CartWriter, reader CartReader, products ProductReader, activities ActivityRecorder) *CartService {
	return &CartService{
		writer:     writer,
		reader:     reader,
		products:   products,
		activities: activities,
	}
}

// AddItem adds quantity of the product to the cart. Adding a product already in the
// cart increases its quantity. created reports whether a new entry was made.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.CartItemDB, bool, error) {
	if quantity <= 0 {
		return nil, false, ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		logger.Log.Errorw("failed to get product", "productID", productID, "error", err)
		return nil, false, err
	}
	if product == nil {
		return nil, false, ErrProductNotFound
	}

	item, created, err := s.writer.SaveItem(ctx, userID, productID, quantity)
	if err != nil {
		logger.Log.Errorw("failed to save cart item", "userID", userID, "productID", productID, "error", err)
		return nil, false, err
	}

	if created {
		s.activities.Record(ctx, models.Activity{
			UserID:      userID,
			Type:        models.ActivityCartAdd,
			Description: "Added item to cart",
			Metadata:    map[string]any{"productId": productID.String(), "quantity": quantity},
		})
	}

	return item, created, nil
}

// RemoveItem removes the product from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	removed, err := s.writer.DeleteItem(ctx, userID, productID)
	if err != nil {
		logger.Log.Errorw("failed to delete cart item", "userID", userID, "productID", productID, "error", err)
		return err
	}
	if !removed {
		return ErrCartItemNotFound
	}

	s.activities.Record(ctx, models.Activity{
		UserID:      userID,
		Type:        models.ActivityCartRemove,
		Description: "Removed item from cart",
		Metadata:    map[string]any{"productId": productID.String()},
	})
	return nil
}

// ListItems returns the user's cart, most recently added first.
func (s *CartService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItemDB, error) {
	items, err := s.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get cart", "userID", userID, "error", err)
		return nil, err
	}
	return items, nil
}
