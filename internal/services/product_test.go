package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/repositories"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProductLister(ctrl)
	mockWriter := services.NewMockProductSaver(ctrl)
	mockCache := services.NewMockProductCache(ctrl)
	mockActivities := services.NewMockActivityRecorder(ctrl)

	svc := services.NewProductService(mockReader, mockWriter, mockCache, mockActivities)

	sellerID := uuid.New()
	productID := uuid.New()

	t.Run("defaults applied", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p models.NewProduct) (*models.ProductDB, error) {
				assert.Equal(t, "Oak chair", p.Title)
				assert.Equal(t, 1, p.Quantity)
				assert.Equal(t, models.ProductStatusAvailable, p.Status)
				return &models.ProductDB{ProductID: productID, SellerID: sellerID, Title: p.Title, Price: p.Price}, nil
			})
		mockActivities.EXPECT().Record(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, a models.Activity) {
				assert.Equal(t, models.ActivityProductAdd, a.Type)
				assert.Equal(t, sellerID, a.UserID)
			})
		full := &models.ProductDB{ProductID: productID, Seller: &models.UserRef{ID: sellerID, Username: "alice"}}
		mockReader.EXPECT().GetByID(gomock.Any(), productID).Return(full, nil)

		got, err := svc.CreateProduct(context.Background(), models.NewProduct{SellerID: sellerID, Title: "  Oak chair ", Price: 25})
		require.NoError(t, err)
		assert.Equal(t, full, got)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, p := range []models.NewProduct{
			{SellerID: sellerID, Title: " ", Price: 10},
			{SellerID: sellerID, Title: "Lamp", Price: 0},
			{SellerID: sellerID, Title: "Lamp", Price: 5, Quantity: -1},
		} {
			_, err := svc.CreateProduct(context.Background(), p)
			assert.ErrorIs(t, err, services.ErrInvalidProduct)
		}
	})

	t.Run("save error", func(t *testing.T) {
		mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
		_, err := svc.CreateProduct(context.Background(), models.NewProduct{SellerID: sellerID, Title: "Lamp", Price: 5})
		assert.EqualError(t, err, "db error")
	})
}

func TestProductService_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProductLister(ctrl)
	mockCache := services.NewMockProductCache(ctrl)
	svc := services.NewProductService(mockReader, services.NewMockProductSaver(ctrl), mockCache, services.NewMockActivityRecorder(ctrl))

	productID := uuid.New()
	product := &models.ProductDB{ProductID: productID, Title: "Bike"}

	t.Run("cache hit", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), productID).Return(product, nil)

		got, err := svc.GetProduct(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("cache miss populates cache", func(t *testing.T) {
		gomock.InOrder(
			mockCache.EXPECT().Get(gomock.Any(), productID).Return(nil, nil),
			mockCache.EXPECT().Generation(gomock.Any(), productID).Return(int64(3), nil),
			mockReader.EXPECT().GetByID(gomock.Any(), productID).Return(product, nil),
			mockCache.EXPECT().Set(gomock.Any(), product, int64(3)).Return(true, nil),
		)

		got, err := svc.GetProduct(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("eviction during read still returns the row", func(t *testing.T) {
		gomock.InOrder(
			mockCache.EXPECT().Get(gomock.Any(), productID).Return(nil, nil),
			mockCache.EXPECT().Generation(gomock.Any(), productID).Return(int64(3), nil),
			mockReader.EXPECT().GetByID(gomock.Any(), productID).Return(product, nil),
			mockCache.EXPECT().Set(gomock.Any(), product, int64(3)).Return(false, nil),
		)

		got, err := svc.GetProduct(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("cache down falls back to store", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), productID).Return(nil, errors.New("redis down"))
		mockCache.EXPECT().Generation(gomock.Any(), productID).Return(int64(0), nil)
		mockReader.EXPECT().GetByID(gomock.Any(), productID).Return(product, nil)
		mockCache.EXPECT().Set(gomock.Any(), product, int64(0)).Return(false, errors.New("redis down"))

		got, err := svc.GetProduct(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("unknown generation skips caching", func(t *testing.T) {
		// No Set is expected.
		mockCache.EXPECT().Get(gomock.Any(), productID).Return(nil, nil)
		mockCache.EXPECT().Generation(gomock.Any(), productID).Return(int64(0), errors.New("redis down"))
		mockReader.EXPECT().GetByID(gomock.Any(), productID).Return(product, nil)

		got, err := svc.GetProduct(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), productID).Return(nil, nil)
		mockCache.EXPECT().Generation(gomock.Any(), productID).Return(int64(0), nil)
		mockReader.EXPECT().GetByID(gomock.Any(), productID).Return(nil, nil)

		_, err := svc.GetProduct(context.Background(), productID)
		assert.ErrorIs(t, err, services.ErrProductNotFound)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProductLister(ctrl)
	svc := services.NewProductService(mockReader, services.NewMockProductSaver(ctrl), services.NewMockProductCache(ctrl), services.NewMockActivityRecorder(ctrl))

	products := []models.ProductDB{{ProductID: uuid.New()}, {ProductID: uuid.New()}}
	mockReader.EXPECT().List(gomock.Any()).Return(products, nil)

	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProductService_ListProductsBySeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProductLister(ctrl)
	svc := services.NewProductService(mockReader, services.NewMockProductSaver(ctrl), services.NewMockProductCache(ctrl), services.NewMockActivityRecorder(ctrl))

	sellerID := uuid.New()
	products := []models.ProductDB{{ProductID: uuid.New(), SellerID: sellerID}}
	mockReader.EXPECT().ListBySeller(gomock.Any(), sellerID).Return(products, nil)

	got, err := svc.ListProductsBySeller(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Equal(t, products, got)

	mockReader.EXPECT().ListBySeller(gomock.Any(), sellerID).Return(nil, errors.New("db down"))
	_, err = svc.ListProductsBySeller(context.Background(), sellerID)
	assert.Error(t, err)
}

func TestProductService_UpdateProduct(t *testing.T) {
	sellerID := uuid.New()
	productID := uuid.New()
	stored := &models.ProductDB{ProductID: productID, SellerID: sellerID, Title: "Oak chair", Price: 25}
	price := 20.0

	tests := []struct {
		name      string
		userID    uuid.UUID
		upd       models.ProductUpdate
		mockSetup func(reader *services.MockProductLister, writer *services.MockProductSaver, cache *services.MockProductCache, activities *services.MockActivityRecorder)
		wantErr   error
	}{
		{
			name:   "updates, evicts and records",
			userID: sellerID,
			upd:    models.ProductUpdate{Title: strPtr("  Oak chair, refinished "), Price: &price},
			mockSetup: func(reader *services.MockProductLister, writer *services.MockProductSaver, cache *services.MockProductCache, activities *services.MockActivityRecorder) {
				updated := &models.ProductDB{ProductID: productID, SellerID: sellerID, Title: "Oak chair, refinished", Price: price}
				gomock.InOrder(
					reader.EXPECT().GetByID(gomock.Any(), productID).Return(stored, nil),
					writer.EXPECT().Update(gomock.Any(), productID, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ uuid.UUID, upd models.ProductUpdate) (*models.ProductDB, error) {
							assert.Equal(t, "Oak chair, refinished", *upd.Title)
							assert.Equal(t, price, *upd.Price)
							assert.Nil(t, upd.Status)
							return updated, nil
						}),
					cache.EXPECT().Delete(gomock.Any(), productID).Return(nil),
					activities.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, a models.Activity) {
						assert.Equal(t, models.ActivityProductUpdate, a.Type)
						assert.Equal(t, sellerID, a.UserID)
					}),
					reader.EXPECT().GetByID(gomock.Any(), productID).Return(updated, nil),
				)
			},
		},
		{
			name:   "cache eviction failure is not fatal",
			userID: sellerID,
			upd:    models.ProductUpdate{Price: &price},
			mockSetup: func(reader *services.MockProductLister, writer *services.MockProductSaver, cache *services.MockProductCache, activities *services.MockActivityRecorder) {
				reader.EXPECT().GetByID(gomock.Any(), productID).Return(stored, nil).Times(2)
				writer.EXPECT().Update(gomock.Any(), productID, gomock.Any()).Return(stored, nil)
				cache.EXPECT().Delete(gomock.Any(), productID).Return(errors.New("redis down"))
				activities.EXPECT().Record(gomock.Any(), gomock.Any())
			},
		},
		{
			name:    "blank title",
			userID:  sellerID,
			upd:     models.ProductUpdate{Title: strPtr("   ")},
			wantErr: services.ErrInvalidProduct,
		},
		{
			name:    "unknown status",
			userID:  sellerID,
			upd:     models.ProductUpdate{Status: strPtr("reserved")},
			wantErr: services.ErrInvalidProduct,
		},
		{
			name:   "not the seller",
			userID: uuid.New(),
			upd:    models.ProductUpdate{Price: &price},
			mockSetup: func(reader *services.MockProductLister, _ *services.MockProductSaver, _ *services.MockProductCache, _ *services.MockActivityRecorder) {
				reader.EXPECT().GetByID(gomock.Any(), productID).Return(stored, nil)
			},
			wantErr: services.ErrProductForbidden,
		},
		{
			name:   "not found",
			userID: sellerID,
			upd:    models.ProductUpdate{Price: &price},
			mockSetup: func(reader *services.MockProductLister, _ *services.MockProductSaver, _ *services.MockProductCache, _ *services.MockActivityRecorder) {
				reader.EXPECT().GetByID(gomock.Any(), productID).Return(nil, nil)
			},
			wantErr: services.ErrProductNotFound,
		},
		{
			name:   "deleted concurrently",
			userID: sellerID,
			upd:    models.ProductUpdate{Price: &price},
			mockSetup: func(reader *services.MockProductLister, writer *services.MockProductSaver, _ *services.MockProductCache, _ *services.MockActivityRecorder) {
				reader.EXPECT().GetByID(gomock.Any(), productID).Return(stored, nil)
				writer.EXPECT().Update(gomock.Any(), productID, gomock.Any()).Return(nil, nil)
			},
			wantErr: services.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockProductLister(ctrl)
			writer := services.NewMockProductSaver(ctrl)
			cache := services.NewMockProductCache(ctrl)
			activities := services.NewMockActivityRecorder(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(reader, writer, cache, activities)
			}

			svc := services.NewProductService(reader, writer, cache, activities)
			got, err := svc.UpdateProduct(context.Background(), tt.userID, productID, tt.upd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, productID, got.ProductID)
		})
	}
}

func TestProductService_DeleteProduct(t *testing.T) {
	sellerID := uuid.New()
	productID := uuid.New()
	stored := &models.ProductDB{ProductID: productID, SellerID: sellerID, Title: "Glass jars"}

	tests := []struct {
		name      string
		userID    uuid.UUID
		mockSetup func(reader *services.MockProductLister, writer *services.MockProductSaver, cache *services.MockProductCache, activities *services.MockActivityRecorder)
		wantErr   error
	}{
		{
			name:   "deletes, evicts and records",
			userID: sellerID,
			mockSetup: func(reader *services.MockProductLister, writer *services.MockProductSaver, cache *services.MockProductCache, activities *services.MockActivityRecorder) {
				gomock.InOrder(
					reader.EXPECT().GetByID(gomock.Any(), productID).Return(stored, nil),
					writer.EXPECT().Delete(gomock.Any(), productID).Return(nil),
					cache.EXPECT().Delete(gomock.Any(), productID).Return(nil),
					activities.EXPECT().Record(gomock.Any(), gomock.Any()).Do(func(_ context.Context, a models.Activity) {
						assert.Equal(t, models.ActivityProductDelete, a.Type)
						assert.Equal(t, "Glass jars", a.Metadata["title"])
					}),
				)
			},
		},
		{
			name:   "not the seller",
			userID: uuid.New(),
			mockSetup: func(reader *services.MockProductLister, _ *services.MockProductSaver, _ *services.MockProductCache, _ *services.MockActivityRecorder) {
				reader.EXPECT().GetByID(gomock.Any(), productID).Return(stored, nil)
			},
			wantErr: services.ErrProductForbidden,
		},
		{
			name:   "already gone",
			userID: sellerID,
			mockSetup: func(reader *services.MockProductLister, writer *services.MockProductSaver, _ *services.MockProductCache, _ *services.MockActivityRecorder) {
				reader.EXPECT().GetByID(gomock.Any(), productID).Return(stored, nil)
				writer.EXPECT().Delete(gomock.Any(), productID).Return(repositories.ErrNotFound)
			},
			wantErr: services.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockProductLister(ctrl)
			writer := services.NewMockProductSaver(ctrl)
			cache := services.NewMockProductCache(ctrl)
			activities := services.NewMockActivityRecorder(ctrl)
			tt.mockSetup(reader, writer, cache, activities)

			svc := services.NewProductService(reader, writer, cache, activities)
			err := svc.DeleteProduct(context.Background(), tt.userID, productID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
