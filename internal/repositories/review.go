package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const reviewColumns = `id, product_id, user_id, rating, comment, created_at, updated_at`

const reviewWithUserSelect = `
	SELECT r.id, r.product_id, r.user_id, r.rating, r.comment, r.created_at, r.updated_at,
	       u.id AS "user.id", u.username AS "user.username", u.display_name AS "user.display_name"
	FROM reviews r
	JOIN users u ON u.id = r.user_id`

// ReviewReadRepository reads reviews.
type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// GetByProductAndUser returns the user's review of the product, or nil when there is none.
func (r *ReviewReadRepository) GetByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*models.ReviewDB, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id = $1 AND user_id = $2`
	args := []any{productID, userID}

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, args...)

	logQuery(query, args, review.ReviewID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByID returns the review with its author, or nil when it does not exist.
func (r *ReviewReadRepository) GetByID(ctx context.Context, reviewID uuid.UUID) (*models.ReviewDB, error) {
	query := reviewWithUserSelect + ` WHERE r.id = $1`

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, reviewID)

	logQuery(query, []any{reviewID}, review.ReviewID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByProduct returns the product's reviews with their authors, newest first.
func (r *ReviewReadRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.ReviewDB, error) {
	query := reviewWithUserSelect + ` WHERE r.product_id = $1 ORDER BY r.created_at DESC`

	reviews := []models.ReviewDB{}
	err := r.db.SelectContext(ctx, &reviews, query, productID)

	logQuery(query, []any{productID}, len(reviews), err)

	return reviews, err
}

// ListRatingsByProduct returns every current score of the product.
func (r *ReviewReadRepository) ListRatingsByProduct(ctx context.Context, productID uuid.UUID) ([]int, error) {
	const query = `SELECT rating FROM reviews WHERE product_id = $1`

	ratings := []int{}
	err := r.db.SelectContext(ctx, &ratings, query, productID)

	logQuery(query, []any{productID}, ratings, err)

	return ratings, err
}

// ReviewWriteRepository writes reviews.
type ReviewWriteRepository struct {
	db *sqlx.DB
}

func NewReviewWriteRepository(db *sqlx.DB) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db}
}

// Create inserts a review. A concurrent insert for the same (product, user)
// loses on the UNIQUE constraint and gets ErrUniqueViolation.
func (r *ReviewWriteRepository) Create(ctx context.Context, productID, userID uuid.UUID, score int, comment *string) (*models.ReviewDB, error) {
	query := `
		INSERT INTO reviews (product_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + reviewColumns
	args := []any{productID, userID, score, comment}

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, args...)

	logQuery(query, args, review.ReviewID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &review, nil
}

// Update overwrites score and comment of an existing review.
func (r *ReviewWriteRepository) Update(ctx context.Context, reviewID uuid.UUID, score int, comment *string) (*models.ReviewDB, error) {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + reviewColumns
	args := []any{reviewID, score, comment}

	var review models.ReviewDB
	err := r.db.GetContext(ctx, &review, query, args...)

	logQuery(query, args, review.ReviewID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}
