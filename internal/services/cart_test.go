package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockCartWriter(ctrl)
	mockReader := services.NewMockCartReader(ctrl)
	mockProducts := services.NewMockProductReader(ctrl)
	mockActivities := services.NewMockActivityRecorder(ctrl)

	svc := services.NewCartService(mockWriter, mockReader, mockProducts, mockActivities)

	userID, productID := uuid.New(), uuid.New()
	product := &models.ProductDB{ProductID: productID}

	tests := []struct {
		name       string
		quantity   int
		product    *models.ProductDB
		created    bool
		saveErr    error
		wantErr    error
		wantRecord bool
	}{
		{name: "new entry", quantity: 1, product: product, created: true, wantRecord: true},
		{name: "accumulates existing entry", quantity: 2, product: product, created: false},
		{name: "zero quantity", quantity: 0, wantErr: services.ErrInvalidQuantity},
		{name: "unknown product", quantity: 1, wantErr: services.ErrProductNotFound},
		{name: "store error", quantity: 1, product: product, saveErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.quantity > 0 {
				mockProducts.EXPECT().GetByID(gomock.Any(), productID).Return(tt.product, nil)
			}
			item := &models.CartItemDB{UserID: userID, ProductID: productID, Quantity: tt.quantity}
			if tt.product != nil {
				mockWriter.EXPECT().SaveItem(gomock.Any(), userID, productID, tt.quantity).
					Return(item, tt.created, tt.saveErr)
			}
			if tt.wantRecord {
				mockActivities.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, a models.Activity) {
						assert.Equal(t, models.ActivityCartAdd, a.Type)
					})
			}

			got, created, err := svc.AddItem(context.Background(), userID, productID, tt.quantity)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.created, created)
			assert.Equal(t, item, got)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockCartWriter(ctrl)
	mockActivities := services.NewMockActivityRecorder(ctrl)
	svc := services.NewCartService(mockWriter, services.NewMockCartReader(ctrl), services.NewMockProductReader(ctrl), mockActivities)

	userID, productID := uuid.New(), uuid.New()

	mockWriter.EXPECT().DeleteItem(gomock.Any(), userID, productID).Return(true, nil)
	mockActivities.EXPECT().Record(gomock.Any(), gomock.Any())
	assert.NoError(t, svc.RemoveItem(context.Background(), userID, productID))

	mockWriter.EXPECT().DeleteItem(gomock.Any(), userID, productID).Return(false, nil)
	assert.ErrorIs(t, svc.RemoveItem(context.Background(), userID, productID), services.ErrCartItemNotFound)
}

func TestCartService_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCartReader(ctrl)
	svc := services.NewCartService(services.NewMockCartWriter(ctrl), mockReader, services.NewMockProductReader(ctrl), services.NewMockActivityRecorder(ctrl))

	userID := uuid.New()
	items := []models.CartItemDB{{CartItemID: uuid.New(), UserID: userID, Quantity: 3}}
	mockReader.EXPECT().GetByUserID(gomock.Any(), userID).Return(items, nil)

	got, err := svc.ListItems(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
