package repositories

import (
	"context"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CartWriterRepository handles cart write operations
type CartWriterRepository struct {
	db *sqlx.DB
}

func NewCartWriterRepository(db *sqlx.DB) *CartWriterRepository {
	return &CartWriterRepository{db: db}
}

// SaveItem performs an UPSERT: creates the cart entry if it does not exist, otherwise increases its quantity.
// created reports whether a new row was inserted.
func (r *CartWriterRepository) SaveItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (item *models.CartItemDB, created bool, err error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, user_id, product_id, quantity, added_at, (xmax = 0) AS inserted
	`
	args := []any{userID, productID, quantity}

	var row struct {
		models.CartItemDB
		Inserted bool `db:"inserted"`
	}
	err = r.db.GetContext(ctx, &row, query, args...)

	logQuery(query, args, row.Quantity, err)

	if err != nil {
		return nil, false, err
	}
	return &row.CartItemDB, row.Inserted, nil
}

// DeleteItem removes the product from the user's cart. It reports whether a row was removed.
func (r *CartWriterRepository) DeleteItem(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`
	args := []any{userID, productID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return rowsAffected > 0, err
}

// CartReaderRepository handles cart read operations
type CartReaderRepository struct {
	db *sqlx.DB
}

func NewCartReaderRepository(db *sqlx.DB) *CartReaderRepository {
	return &CartReaderRepository{db: db}
}

// GetByUserID returns the user's cart with the products attached, most recently added first.
func (r *CartReaderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartItemDB, error) {
	const query = `
		SELECT c.id, c.user_id, c.product_id, c.quantity, c.added_at,
		       p.id AS "product.id", p.seller_id AS "product.seller_id", p.title AS "product.title",
		       p.description AS "product.description", p.category AS "product.category",
		       p.price AS "product.price", p.image_url AS "product.image_url",
		       p.rating AS "product.rating", p.reviews_count AS "product.reviews_count",
		       p.quantity AS "product.quantity", p.status AS "product.status",
		       p.created_at AS "product.created_at", p.updated_at AS "product.updated_at"
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.added_at DESC
	`

	items := []models.CartItemDB{}
	err := r.db.SelectContext(ctx, &items, query, userID)

	logQuery(query, []any{userID}, len(items), err)

	return items, err
}
