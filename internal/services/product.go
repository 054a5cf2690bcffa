package services

import (
	"context"
	"errors"
	"strings"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/repositories"
	"github.com/google/uuid"
)

//go:generate mockgen -source=product.go -destination=product_mock.go -package=services

var (
	// ErrInvalidProduct is returned when a listing lacks a title or a positive price.
	ErrInvalidProduct = errors.New("title and a positive price are required")
	// ErrProductForbidden is returned when a user changes a product listed by someone else.
	ErrProductForbidden = errors.New("product belongs to another seller")
)

// ProductLister lists products.
type ProductLister interface {
	GetByID(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error)
	List(ctx context.Context) ([]models.ProductDB, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductDB, error)
}

// ProductSaver inserts, edits and removes products.
type ProductSaver interface {
	Save(ctx context.Context, p models.NewProduct) (*models.ProductDB, error)
	Update(ctx context.Context, productID uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error)
	Delete(ctx context.Context, productID uuid.UUID) error
}

// ProductCache is a read-through cache of single products.
// Set only stores the product if its generation is still gen; Delete bumps the generation.
type ProductCache interface {
	Get(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error)
	Generation(ctx context.Context, productID uuid.UUID) (int64, error)
	Set(ctx context.Context, product *models.ProductDB, gen int64) (bool, error)
	Delete(ctx context.Context, productID uuid.UUID) error
}

// ProductService lists marketplace products.
type ProductService struct {
	reader     ProductLister
	writer     ProductSaver
	cache      ProductCache
	activities ActivityRecorder
}

// NewProductService creates a new ProductService.
func NewProductService(reader ProductLister, writer ProductSaver, cache ProductCache, activities ActivityRecorder) *ProductService {
	return &ProductService{
		reader:     reader,
		writer:     writer,
		cache:      cache,
		activities: activities,
	}
}

// CreateProduct lists a new product for p.SellerID.
func (s *ProductService) CreateProduct(ctx context.Context, p models.NewProduct) (*models.ProductDB, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || p.Price <= 0 || p.Quantity < 0 {
		return nil, ErrInvalidProduct
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if p.Status == "" {
		p.Status = models.ProductStatusAvailable
	}

	product, err := s.writer.Save(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to save product", "sellerID", p.SellerID, "error", err)
		return nil, err
	}

	s.activities.Record(ctx, models.Activity{
		UserID:      p.SellerID,
		Type:        models.ActivityProductAdd,
		Description: "Added new product to marketplace",
		Metadata: map[string]any{
			"productId": product.ProductID.String(),
			"title":     product.Title,
			"price":     product.Price,
		},
	})

	// Re-read to attach the seller.
	full, err := s.reader.GetByID(ctx, product.ProductID)
	if err != nil || full == nil {
		logger.Log.Warnw("failed to load product seller", "productID", product.ProductID, "error", err)
		return product, nil
	}
	return full, nil
}

// GetProduct returns a product, served from the cache when possible.
func (s *ProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error) {
	cached, err := s.cache.Get(ctx, productID)
	if err != nil {
		logger.Log.Warnw("product cache read failed", "productID", productID, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	// Read before the row, so an eviction racing with this read is detected.
	gen, genErr := s.cache.Generation(ctx, productID)
	if genErr != nil {
		logger.Log.Warnw("product cache generation read failed", "productID", productID, "error", genErr)
	}

	product, err := s.reader.GetByID(ctx, productID)
	if err != nil {
		logger.Log.Errorw("failed to get product", "productID", productID, "error", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if genErr != nil {
		return product, nil
	}
	stored, err := s.cache.Set(ctx, product, gen)
	if err != nil {
		logger.Log.Warnw("failed to cache product", "productID", productID, "error", err)
	} else if !stored {
		logger.Log.Debugw("product changed while reading, not cached", "productID", productID)
	}
	return product, nil
}

// ListProducts returns all products, newest first.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.ProductDB, error) {
	products, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list products", "error", err)
		return nil, err
	}
	return products, nil
}

// ListProductsBySeller returns the products listed by sellerID, newest first.
func (s *ProductService) ListProductsBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductDB, error) {
	products, err := s.reader.ListBySeller(ctx, sellerID)
	if err != nil {
		logger.Log.Errorw("failed to list seller products", "sellerID", sellerID, "error", err)
		return nil, err
	}
	return products, nil
}

// UpdateProduct changes a product listed by userID and evicts it from the cache.
func (s *ProductService) UpdateProduct(ctx context.Context, userID, productID uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error) {
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		upd.Title = &title
	}
	if !validUpdate(upd) {
		return nil, ErrInvalidProduct
	}

	if _, err := s.ownedProduct(ctx, userID, productID); err != nil {
		return nil, err
	}

	product, err := s.writer.Update(ctx, productID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update product", "productID", productID, "error", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	s.evict(ctx, productID)

	s.activities.Record(ctx, models.Activity{
		UserID:      userID,
		Type:        models.ActivityProductUpdate,
		Description: "Updated product in marketplace",
		Metadata: map[string]any{
			"productId": productID.String(),
			"title":     product.Title,
		},
	})

	full, err := s.reader.GetByID(ctx, productID)
	if err != nil || full == nil {
		logger.Log.Warnw("failed to load product seller", "productID", productID, "error", err)
		return product, nil
	}
	return full, nil
}

// DeleteProduct removes a product listed by userID together with its reviews and cart entries.
func (s *ProductService) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	product, err := s.ownedProduct(ctx, userID, productID)
	if err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		logger.Log.Errorw("failed to delete product", "productID", productID, "error", err)
		return err
	}
	s.evict(ctx, productID)

	s.activities.Record(ctx, models.Activity{
		UserID:      userID,
		Type:        models.ActivityProductDelete,
		Description: "Removed product from marketplace",
		Metadata: map[string]any{
			"productId": productID.String(),
			"title":     product.Title,
		},
	})
	return nil
}

// ownedProduct reads the product from the store, bypassing the cache.
func (s *ProductService) ownedProduct(ctx context.Context, userID, productID uuid.UUID) (*models.ProductDB, error) {
	product, err := s.reader.GetByID(ctx, productID)
	if err != nil {
		logger.Log.Errorw("failed to get product", "productID", productID, "error", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.SellerID != userID {
		return nil, ErrProductForbidden
	}
	return product, nil
}

func (s *ProductService) evict(ctx context.Context, productID uuid.UUID) {
	if err := s.cache.Delete(ctx, productID); err != nil {
		logger.Log.Warnw("failed to evict cached product", "productID", productID, "error", err)
	}
}

func validUpdate(upd models.ProductUpdate) bool {
	switch {
	case upd.Title != nil && *upd.Title == "":
		return false
	case upd.Price != nil && *upd.Price <= 0:
		return false
	case upd.Quantity != nil && *upd.Quantity < 0:
		return false
	case upd.Status != nil && *upd.Status != models.ProductStatusAvailable && *upd.Status != models.ProductStatusSold:
		return false
	}
	return true
}
