package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewReviewWriteRepository(db)
	readRepo := NewReviewReadRepository(db)

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	product := seedProduct(t, db, alice.UserID, "Bamboo toothbrush")

	comment := "great"
	first, err := writeRepo.Create(ctx, product.ProductID, alice.UserID, 4, &comment)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Rating)

	t.Run("duplicate insert hits the unique constraint", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, product.ProductID, alice.UserID, 2, nil)
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("lookup by product and user", func(t *testing.T) {
		got, err := readRepo.GetByProductAndUser(ctx, product.ProductID, alice.UserID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, first.ReviewID, got.ReviewID)

		got, err = readRepo.GetByProductAndUser(ctx, product.ProductID, bob.UserID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("update overwrites score and comment", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, first.ReviewID, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Rating)
		assert.Nil(t, updated.Comment)

		_, err = writeRepo.Update(ctx, uuid.New(), 2, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	_, err = writeRepo.Create(ctx, product.ProductID, bob.UserID, 5, nil)
	require.NoError(t, err)

	t.Run("list newest first with authors", func(t *testing.T) {
		reviews, err := readRepo.ListByProduct(ctx, product.ProductID)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, bob.UserID, reviews[0].UserID)
		require.NotNil(t, reviews[0].User)
		assert.Equal(t, bob.Username, reviews[0].User.Username)
	})

	t.Run("get by id with author", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, first.ReviewID)
		require.NoError(t, err)
		require.NotNil(t, got.User)
		assert.Equal(t, alice.UserID, got.User.ID)
	})

	t.Run("ratings", func(t *testing.T) {
		ratings, err := readRepo.ListRatingsByProduct(ctx, product.ProductID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{2, 5}, ratings)
	})
}
