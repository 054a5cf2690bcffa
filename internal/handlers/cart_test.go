package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAddToCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, productID := uuid.New(), uuid.New()
	item := &models.CartItemDB{CartItemID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 1}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockCartAdder)
		expectedCode int
	}{
		{
			name: "first add",
			body: fmt.Sprintf(`{"productId":%q}`, productID),
			mockSetup: func(m *MockCartAdder) {
				m.EXPECT().AddItem(gomock.Any(), userID, productID, 1).Return(item, true, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "merged into existing entry",
			body: fmt.Sprintf(`{"productId":%q,"quantity":2}`, productID),
			mockSetup: func(m *MockCartAdder) {
				m.EXPECT().AddItem(gomock.Any(), userID, productID, 2).Return(item, false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "zero quantity",
			body: fmt.Sprintf(`{"productId":%q,"quantity":0}`, productID),
			mockSetup: func(m *MockCartAdder) {
				m.EXPECT().AddItem(gomock.Any(), userID, productID, 0).Return(nil, false, services.ErrInvalidQuantity)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown product",
			body: fmt.Sprintf(`{"productId":%q}`, productID),
			mockSetup: func(m *MockCartAdder) {
				m.EXPECT().AddItem(gomock.Any(), userID, productID, 1).Return(nil, false, services.ErrProductNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{name: "invalid productId", body: `{"productId":"x"}`, expectedCode: http.StatusBadRequest},
		{name: "fractional quantity", body: fmt.Sprintf(`{"productId":%q,"quantity":1.5}`, productID), expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCartAdder(ctrl)
			mockTokener := NewMockTokener(ctrl)
			expectUser(mockTokener, userID)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewAddToCartHandler(mockSvc, mockTokener)(rr, httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockCartLister(ctrl)
	mockTokener := NewMockTokener(ctrl)
	expectUser(mockTokener, userID)
	mockSvc.EXPECT().ListItems(gomock.Any(), userID).Return(nil, nil)

	rr := httptest.NewRecorder()
	NewGetCartHandler(mockSvc, mockTokener)(rr, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestRemoveFromCartHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, productID := uuid.New(), uuid.New()

	tests := []struct {
		name         string
		query        string
		err          error
		callService  bool
		expectedCode int
	}{
		{"removed", "?productId=" + productID.String(), nil, true, http.StatusOK},
		{"not in cart", "?productId=" + productID.String(), services.ErrCartItemNotFound, true, http.StatusNotFound},
		{"store failure", "?productId=" + productID.String(), errors.New("db down"), true, http.StatusInternalServerError},
		{"missing productId", "", nil, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCartRemover(ctrl)
			mockTokener := NewMockTokener(ctrl)
			expectUser(mockTokener, userID)
			if tt.callService {
				mockSvc.EXPECT().RemoveItem(gomock.Any(), userID, productID).Return(tt.err)
			}

			rr := httptest.NewRecorder()
			NewRemoveFromCartHandler(mockSvc, mockTokener)(rr, httptest.NewRequest(http.MethodDelete, "/cart"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
