package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
)

func TestListActivitiesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activities := []models.ActivityDB{{
		ActivityID:  uuid.New(),
		UserID:      uuid.New(),
		Type:        models.ActivityLogin,
		Description: "User logged in",
		Metadata:    types.JSONText(`{"email":"alice@x.com"}`),
	}}

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockActivityLister)
		expectedCode int
	}{
		{
			name: "default limit",
			mockSetup: func(m *MockActivityLister) {
				m.EXPECT().ListActivities(gomock.Any(), 0).Return(activities, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "explicit limit",
			query: "?limit=10",
			mockSetup: func(m *MockActivityLister) {
				m.EXPECT().ListActivities(gomock.Any(), 10).Return(activities, nil)
			},
			expectedCode: http.StatusOK,
		},
		{name: "invalid limit", query: "?limit=ten", expectedCode: http.StatusBadRequest},
		{name: "negative limit", query: "?limit=-1", expectedCode: http.StatusBadRequest},
		{
			name: "store failure",
			mockSetup: func(m *MockActivityLister) {
				m.EXPECT().ListActivities(gomock.Any(), 0).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockActivityLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewListActivitiesHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/activities"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, rr.Body.String(), `"metadata":{"email":"alice@x.com"}`)
			}
		})
	}
}
