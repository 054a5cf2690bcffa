package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=product.go -destination=product_mock.go -package=handlers

// ProductCreator defines the interface for listing a new product.
type ProductCreator interface {
	CreateProduct(ctx context.Context, p models.NewProduct) (*models.ProductDB, error)
}

// ProductGetter defines the interface for reading one product.
type ProductGetter interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error)
}

// ProductLister defines the interface for listing products.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]models.ProductDB, error)
}

// SellerProductLister defines the interface for listing one seller's products.
type SellerProductLister interface {
	ListProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductDB, error)
}

// ProductUpdater defines the interface for editing a product.
type ProductUpdater interface {
	UpdateProduct(ctx context.Context, userID, productID uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error)
}

// ProductDeleter defines the interface for removing a product.
type ProductDeleter interface {
	DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error
}

// CreateProductRequest represents the JSON body of a new listing
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	// required: true
	// default: Oak dining chair
	Title string `json:"title"`

	// default: Solid oak, minor scratches
	Description *string `json:"description,omitempty"`

	// default: furniture
	Category *string `json:"category,omitempty"`

	// required: true
	// default: 25
	Price float64 `json:"price"`

	ImageURL *string `json:"imageUrl,omitempty"`

	// default: 1
	Quantity int `json:"quantity,omitempty"`
}

// UpdateProductRequest represents the JSON body of a product edit. Omitted fields are unchanged.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	// default: Oak dining chair
	Title *string `json:"title,omitempty"`

	Description *string `json:"description,omitempty"`

	Category *string `json:"category,omitempty"`

	// default: 20
	Price *float64 `json:"price,omitempty"`

	ImageURL *string `json:"imageUrl,omitempty"`

	Quantity *int `json:"quantity,omitempty"`

	// available or sold
	// default: sold
	Status *string `json:"status,omitempty"`
}

// NewCreateProductHandler returns an HTTP handler listing a product for the caller.
// @Summary Create product
// @Description Lists a product in the marketplace; the caller is the seller
// @Tags products
// @Accept json
// @Produce json
// @Param createProductRequest body handlers.CreateProductRequest true "Product"
// @Success 201 {object} models.ProductDB "Created product"
// @Failure 400 {object} handlers.ErrorResponse "Invalid product"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /products [post]
// @Security BearerAuth
func NewCreateProductHandler(svc ProductCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		var req CreateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), models.NewProduct{
			SellerID:    sellerID,
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			Quantity:    req.Quantity,
		})
		if err != nil {
			if errors.Is(err, services.ErrInvalidProduct) {
				writeError(w, r, http.StatusBadRequest, "Title and a positive price are required", nil)
				return
			}
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, product)
	}
}

// NewGetProductHandler returns an HTTP handler for one product.
// @Summary Get product
// @Description Returns a product with its rating aggregate and seller
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ProductDB "Product"
// @Failure 400 {object} handlers.ErrorResponse "Invalid product id"
// @Failure 404 {object} handlers.ErrorResponse "Product not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /products/{id} [get]
func NewGetProductHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid product id", err)
			return
		}

		product, err := svc.GetProduct(r.Context(), productID)
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				writeError(w, r, http.StatusNotFound, "Product not found", nil)
				return
			}
			internalError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

// NewListProductsHandler returns an HTTP handler listing all products.
// @Summary List products
// @Description Returns all products, newest first
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductDB "Products"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /products [get]
func NewListProductsHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.ListProducts(r.Context())
		if err != nil {
			internalError(w, r, err)
			return
		}
		if products == nil {
			products = []models.ProductDB{}
		}

		writeJSON(w, http.StatusOK, products)
	}
}

// NewListSellerProductsHandler returns an HTTP handler listing one seller's products.
// @Summary List seller products
// @Description Returns the products listed by a user, newest first
// @Tags products
// @Produce json
// @Param userId path string true "Seller ID"
// @Success 200 {array} models.ProductDB "Products"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /products/user/{userId} [get]
func NewListSellerProductsHandler(svc SellerProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := uuid.Parse(chi.URLParam(r, "userId"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid user id", err)
			return
		}

		products, err := svc.ListProductsBySeller(r.Context(), sellerID)
		if err != nil {
			internalError(w, r, err)
			return
		}
		if products == nil {
			products = []models.ProductDB{}
		}

		writeJSON(w, http.StatusOK, products)
	}
}

// NewUpdateProductHandler returns an HTTP handler editing one of the caller's products.
// @Summary Update product
// @Description Changes the given fields of a product; only its seller may do so
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param updateProductRequest body handlers.UpdateProductRequest true "Changed fields"
// @Success 200 {object} models.ProductDB "Updated product"
// @Failure 400 {object} handlers.ErrorResponse "Invalid product"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the seller"
// @Failure 404 {object} handlers.ErrorResponse "Product not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /products/{id} [put]
// @Security BearerAuth
func NewUpdateProductHandler(svc ProductUpdater, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid product id", err)
			return
		}

		var req UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), userID, productID, models.ProductUpdate{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Price:       req.Price,
			ImageURL:    req.ImageURL,
			Quantity:    req.Quantity,
			Status:      req.Status,
		})
		if err != nil {
			writeProductError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}

// NewDeleteProductHandler returns an HTTP handler removing one of the caller's products.
// @Summary Delete product
// @Description Removes a product with its reviews and cart entries; only its seller may do so
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} handlers.MessageResponse "Deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid product id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the seller"
// @Failure 404 {object} handlers.ErrorResponse "Product not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /products/{id} [delete]
// @Security BearerAuth
func NewDeleteProductHandler(svc ProductDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUser(w, r, tokener)
		if !ok {
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid product id", err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), userID, productID); err != nil {
			writeProductError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
	}
}

func writeProductError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidProduct):
		writeError(w, r, http.StatusBadRequest, "Title, price, quantity or status is invalid", nil)
	case errors.Is(err, services.ErrProductForbidden):
		writeError(w, r, http.StatusForbidden, "Only the seller can change this product", nil)
	case errors.Is(err, services.ErrProductNotFound):
		writeError(w, r, http.StatusNotFound, "Product not found", nil)
	default:
		internalError(w, r, err)
	}
}
