package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/rating"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestMapError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "reviews_product_user_key"}
	assert.ErrorIs(t, mapError(uniqueErr), ErrUniqueViolation)
	assert.Contains(t, mapError(uniqueErr).Error(), "reviews_product_user_key")

	fkErr := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, fkErr, mapError(fkErr))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapError(plain))
}

func TestReviewWriteRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewWriteRepository(db)

	productID, userID := uuid.New(), uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reviews")).
		WithArgs(productID, userID, 3, nil).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_product_user_key"})

	review, err := repo.Create(context.Background(), productID, userID, 3, nil)
	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.Nil(t, review)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductWriteRepository_UpdateRating(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductWriteRepository(db)
	productID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs(productID, 3.5, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs(productID, 0.0, 0).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WillReturnError(errors.New("db down"))

	ctx := context.Background()
	assert.NoError(t, repo.UpdateRating(ctx, productID, rating.Aggregate{Rating: 3.5, ReviewsCount: 2}))
	assert.ErrorIs(t, repo.UpdateRating(ctx, productID, rating.Aggregate{}), ErrNotFound)
	assert.EqualError(t, repo.UpdateRating(ctx, productID, rating.Aggregate{}), "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewReadRepository_ListRatingsByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewReadRepository(db)
	productID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT rating FROM reviews WHERE product_id = $1")).
		WithArgs(productID).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(4).AddRow(2).AddRow(5))

	ratings, err := repo.ListRatingsByProduct(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 5}, ratings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByEmail_NoRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
