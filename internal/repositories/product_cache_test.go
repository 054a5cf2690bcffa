package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCacheRepository(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewProductCacheRepository(rdb, 2*time.Second)

	product := &models.ProductDB{
		ProductID:    uuid.New(),
		SellerID:     uuid.New(),
		Title:        "Cork yoga mat",
		Price:        25,
		Rating:       4.5,
		ReviewsCount: 2,
		Quantity:     1,
		Status:       models.ProductStatusAvailable,
	}

	t.Run("miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set then get", func(t *testing.T) {
		gen, err := repo.Generation(ctx, product.ProductID)
		require.NoError(t, err)
		assert.Zero(t, gen)

		stored, err := repo.Set(ctx, product, gen)
		require.NoError(t, err)
		assert.True(t, stored)

		got, err := repo.Get(ctx, product.ProductID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, product.Title, got.Title)
		assert.Equal(t, product.Rating, got.Rating)
	})

	t.Run("delete evicts and bumps generation", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, product.ProductID))

		got, err := repo.Get(ctx, product.ProductID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		gen, err := repo.Generation(ctx, product.ProductID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), gen)
	})

	t.Run("read that started before an eviction is not cached", func(t *testing.T) {
		stale := *product
		stale.Rating = 1

		before, err := repo.Generation(ctx, product.ProductID)
		require.NoError(t, err)

		// A rating recompute lands between the row read and the cache write.
		require.NoError(t, repo.Delete(ctx, product.ProductID))

		stored, err := repo.Set(ctx, &stale, before)
		require.NoError(t, err)
		assert.False(t, stored)

		got, err := repo.Get(ctx, product.ProductID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("entries expire", func(t *testing.T) {
		gen, err := repo.Generation(ctx, product.ProductID)
		require.NoError(t, err)
		stored, err := repo.Set(ctx, product, gen)
		require.NoError(t, err)
		require.True(t, stored)
		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, product.ProductID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
