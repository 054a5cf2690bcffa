package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/rating"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const productWithSellerSelect = `
	SELECT p.id, p.seller_id, p.title, p.description, p.category, p.price, p.image_url,
	       p.rating, p.reviews_count, p.quantity, p.status, p.created_at, p.updated_at,
	       u.id AS "seller.id", u.username AS "seller.username", u.display_name AS "seller.display_name"
	FROM products p
	JOIN users u ON u.id = p.seller_id`

// ProductReadRepository reads products together with their seller.
type ProductReadRepository struct {
	db *sqlx.DB
}

func NewProductReadRepository(db *sqlx.DB) *ProductReadRepository {
	return &ProductReadRepository{db: db}
}

// GetByID returns the product, or nil when it does not exist.
func (r *ProductReadRepository) GetByID(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error) {
	query := productWithSellerSelect + ` WHERE p.id = $1`

	var product models.ProductDB
	err := r.db.GetContext(ctx, &product, query, productID)

	logQuery(query, []any{productID}, product.ProductID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns all products, newest first.
func (r *ProductReadRepository) List(ctx context.Context) ([]models.ProductDB, error) {
	query := productWithSellerSelect + ` ORDER BY p.created_at DESC`

	products := []models.ProductDB{}
	err := r.db.SelectContext(ctx, &products, query)

	logQuery(query, nil, len(products), err)

	return products, err
}

// ListBySeller returns the products listed by sellerID, newest first.
func (r *ProductReadRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.ProductDB, error) {
	query := productWithSellerSelect + ` WHERE p.seller_id = $1 ORDER BY p.created_at DESC`

	products := []models.ProductDB{}
	err := r.db.SelectContext(ctx, &products, query, sellerID)

	logQuery(query, []any{sellerID}, len(products), err)

	return products, err
}

// ProductWriteRepository writes products and their rating aggregate.
type ProductWriteRepository struct {
	db *sqlx.DB
}

func NewProductWriteRepository(db *sqlx.DB) *ProductWriteRepository {
	return &ProductWriteRepository{db: db}
}

// Save inserts a new listing with an empty rating aggregate.
func (r *ProductWriteRepository) Save(ctx context.Context, p models.NewProduct) (*models.ProductDB, error) {
	query := `
		INSERT INTO products (seller_id, title, description, category, price, image_url, quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, seller_id, title, description, category, price, image_url,
		          rating, reviews_count, quantity, status, created_at, updated_at`
	args := []any{p.SellerID, p.Title, p.Description, p.Category, p.Price, p.ImageURL, p.Quantity, p.Status}

	var product models.ProductDB
	err := r.db.GetContext(ctx, &product, query, args...)

	logQuery(query, args, product.ProductID, err)

	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateRating overwrites the stored aggregate. ErrNotFound when the product is gone.
func (r *ProductWriteRepository) UpdateRating(ctx context.Context, productID uuid.UUID, agg rating.Aggregate) error {
	query := `
		UPDATE products
		SET rating = $2, reviews_count = $3, updated_at = NOW()
		WHERE id = $1`
	args := []any{productID, agg.Rating, agg.ReviewsCount}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Update applies the non-nil fields of upd. Returns nil when the product does not exist.
func (r *ProductWriteRepository) Update(ctx context.Context, productID uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error) {
	query := `
		UPDATE products
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    category = COALESCE($4, category),
		    price = COALESCE($5, price),
		    image_url = COALESCE($6, image_url),
		    quantity = COALESCE($7, quantity),
		    status = COALESCE($8, status),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, seller_id, title, description, category, price, image_url,
		          rating, reviews_count, quantity, status, created_at, updated_at`
	args := []any{productID, upd.Title, upd.Description, upd.Category, upd.Price, upd.ImageURL, upd.Quantity, upd.Status}

	var product models.ProductDB
	err := r.db.GetContext(ctx, &product, query, args...)

	logQuery(query, args, product.ProductID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product; its reviews and cart entries go with it. ErrNotFound when the product is gone.
func (r *ProductWriteRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, productID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{productID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
