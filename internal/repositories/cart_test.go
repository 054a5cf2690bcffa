package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	writer := NewCartWriterRepository(db)
	reader := NewCartReaderRepository(db)

	buyer := seedUser(t, db, "buyer@example.com")
	seller := seedUser(t, db, "seller@example.com")
	product := seedProduct(t, db, seller.UserID, "Solar lamp")

	item, created, err := writer.SaveItem(ctx, buyer.UserID, product.ProductID, 1)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, item.Quantity)

	item, created, err = writer.SaveItem(ctx, buyer.UserID, product.ProductID, 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 3, item.Quantity)

	items, err := reader.GetByUserID(ctx, buyer.UserID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Solar lamp", items[0].Product.Title)

	removed, err := writer.DeleteItem(ctx, buyer.UserID, product.ProductID)
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = writer.DeleteItem(ctx, buyer.UserID, product.ProductID)
	assert.NoError(t, err)
	assert.False(t, removed)
}
