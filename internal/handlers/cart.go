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

//go:generate mockgen -source=cart.go -destination=cart_mock.go -package=handlers

// CartAdder defines the interface for adding to the cart.
type CartAdder interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*models.CartItemDB, bool, error)
}

// CartRemover defines the interface for removing from the cart.
type CartRemover interface {
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
}

// CartLister defines the interface for reading the cart.
type CartLister interface {
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItemDB, error)
}

// AddToCartRequest represents the JSON body for adding a product to the cart
// swagger:model AddToCartRequest
type AddToCartRequest struct {
	// required: true
	ProductID string `json:"productId"`

	// Positive quantity, defaults to 1
	// default: 1
	Quantity *int `json:"quantity,omitempty"`
}

// MessageResponse is a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Item removed from cart
	Message string `json:"message"`
}

// NewAddToCartHandler returns an HTTP handler adding a product to the caller's cart.
// @Summary Add to cart
// @Description Adds a product to the cart; adding it again increases the quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param addToCartRequest body handlers.AddToCartRequest true "Cart item"
// @Success 200 {object} models.CartItemDB "Quantity increased"
// @Success 201 {object} models.CartItemDB "Added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid productId or quantity"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Product not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /cart [post]
// @Security BearerAuth
func NewAddToCartHandler(svc CartAdder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		var req AddToCartRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid productId", err)
			return
		}

		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		item, created, err := svc.AddItem(r.Context(), userID, productID, quantity)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidQuantity):
				writeError(w, r, http.StatusBadRequest, "Quantity must be a positive integer", nil)
			case errors.Is(err, services.ErrProductNotFound):
				writeError(w, r, http.StatusNotFound, "Product not found", nil)
			default:
				internalError(w, r, err)
			}
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		writeJSON(w, status, item)
	}
}

// NewGetCartHandler returns an HTTP handler for the caller's cart.
// @Summary Get cart
// @Description Returns the caller's cart items with their products, most recent first
// @Tags cart
// @Produce json
// @Success 200 {array} models.CartItemDB "Cart"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /cart [get]
// @Security BearerAuth
func NewGetCartHandler(svc CartLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		items, err := svc.ListItems(r.Context(), userID)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if items == nil {
			items = []models.CartItemDB{}
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// NewRemoveFromCartHandler returns an HTTP handler removing a product from the caller's cart.
// @Summary Remove from cart
// @Tags cart
// @Produce json
// @Param productId query string true "Product ID"
// @Success 200 {object} handlers.MessageResponse "Removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid productId"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Item not in cart"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /cart [delete]
// @Security BearerAuth
func NewRemoveFromCartHandler(svc CartRemover, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		productID, err := uuid.Parse(r.URL.Query().Get("productId"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid productId", err)
			return
		}

		if err := svc.RemoveItem(r.Context(), userID, productID); err != nil {
			if errors.Is(err, services.ErrCartItemNotFound) {
				writeError(w, r, http.StatusNotFound, "Item not in cart", nil)
				return
			}
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Item removed from cart"})
	}
}
