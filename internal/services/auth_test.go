package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/repositories"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockActivities := services.NewMockActivityRecorder(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockActivities)

	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		jwtErr       error
		wantErr      error
		wantErrText  string
	}{
		{
			name:     "successful registration",
			email:    "Alice@X.com ",
			password: "pw123",
		},
		{
			name:         "user already exists",
			email:        "bob@example.com",
			password:     "pw123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:        "reader error",
			email:       "eve@example.com",
			password:    "pw123",
			readerErr:   errors.New("db error"),
			wantErrText: "db error",
		},
		{
			name:      "concurrent registration",
			email:     "carol@example.com",
			password:  "pw123",
			writerErr: fmt.Errorf("%w: users_email_key", repositories.ErrUniqueViolation),
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:        "writer error",
			email:       "dave@example.com",
			password:    "pw123",
			writerErr:   errors.New("save error"),
			wantErrText: "save error",
		},
		{
			name:        "token error",
			email:       "frank@example.com",
			password:    "pw123",
			jwtErr:      errors.New("no key"),
			wantErrText: "issue token: no key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			normalized := normalize(tt.email)

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), normalized).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u models.NewUser) (*models.UserDB, error) {
						assert.Equal(t, normalized, u.Email)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(tt.password)))
						cost, err := bcrypt.Cost([]byte(u.PasswordHash))
						assert.NoError(t, err)
						assert.Equal(t, services.PasswordHashCost, cost)
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						return &models.UserDB{
							UserID:       userID,
							Email:        u.Email,
							PasswordHash: u.PasswordHash,
							Username:     u.Username,
							DisplayName:  strPtr(u.DisplayName),
						}, nil
					})

				if tt.writerErr == nil {
					mockActivities.EXPECT().
						Record(gomock.Any(), gomock.Any()).
						Do(func(_ context.Context, a models.Activity) {
							assert.Equal(t, userID, a.UserID)
							assert.Equal(t, models.ActivityRegistration, a.Type)
						})
					mockJWT.EXPECT().
						Generate(gomock.Any(), userID).
						Return("token123", tt.jwtErr)
				}
			}

			user, token, err := svc.Register(context.Background(), tt.email, tt.password, "", "")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
			case tt.wantErrText != "":
				assert.EqualError(t, err, tt.wantErrText)
				assert.Nil(t, user)
				assert.Empty(t, token)
			default:
				require.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, userID, user.ID)
				assert.Equal(t, normalized, user.Email)
			}
		})
	}
}

func TestAuthService_Register_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockActivities := services.NewMockActivityRecorder(ctrl)
	mockActivities.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()
	mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("tok", nil).AnyTimes()
	mockReader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockActivities)

	tests := []struct {
		name            string
		displayName     string
		username        string
		wantUsername    string
		wantDisplayName string
	}{
		{"both empty", "", "", "alice", "alice"},
		{"username only", "", "ally", "ally", "ally"},
		{"both given", "Alice L.", "ally", "ally", "Alice L."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, u models.NewUser) (*models.UserDB, error) {
					assert.Equal(t, tt.wantUsername, u.Username)
					assert.Equal(t, tt.wantDisplayName, u.DisplayName)
					return &models.UserDB{UserID: uuid.New(), Email: u.Email, Username: u.Username}, nil
				})

			_, _, err := svc.Register(context.Background(), "alice@x.com", "pw123", tt.displayName, tt.username)
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Register_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockJWTGenerator(ctrl),
		services.NewMockActivityRecorder(ctrl),
	)

	_, _, err := svc.Register(context.Background(), "  ", "pw123", "", "")
	assert.ErrorIs(t, err, services.ErrMissingCredentials)

	_, _, err = svc.Register(context.Background(), "a@x.com", "", "", "")
	assert.ErrorIs(t, err, services.ErrMissingCredentials)
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No store or token calls are expected: the password is rejected up front.
	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockJWTGenerator(ctrl),
		services.NewMockActivityRecorder(ctrl),
	)

	user, token, err := svc.Register(context.Background(), "a@x.com", strings.Repeat("p", services.MaxPasswordBytes+1), "", "")
	assert.ErrorIs(t, err, services.ErrPasswordTooLong)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockActivities := services.NewMockActivityRecorder(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockActivities)

	password := "pw123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
	}{
		{
			name:      "successful login",
			email:     "ALICE@x.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Email: "alice@x.com", Username: "alice", PasswordHash: string(hashed)},
			expectJWT: "token123",
		},
		{
			name:      "unknown email",
			email:     "nobody@x.com",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "alice@x.com",
			loginPass: "wrongpass",
			user:      &models.UserDB{UserID: userID, Email: "alice@x.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@x.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt generation error",
			email:     "alice@x.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Email: "alice@x.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("issue token: jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), normalize(tt.email)).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockActivities.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, a models.Activity) {
						assert.Equal(t, models.ActivityLogin, a.Type)
						assert.Equal(t, userID, a.UserID)
					})
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.expectJWT, tt.jwtErr)
			}

			user, token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
				assert.Equal(t, userID, user.ID)
			}
		})
	}
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
