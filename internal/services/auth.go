package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/repositories"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

const (
	// PasswordHashCost is the bcrypt work factor for stored passwords.
	PasswordHashCost = 10
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
)

// Error variables
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, u models.NewUser) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// ActivityRecorder records a secondary activity entry. Implementations never fail the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, a models.Activity)
}

// AuthService handles registration and login.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	jwt        JWTGenerator
	activities ActivityRecorder
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, activities ActivityRecorder) *AuthService {
	return &AuthService{
		reader:     reader,
		writer:     writer,
		jwt:        jwt,
		activities: activities,
	}
}

// Register creates a user and issues a session token.
// username defaults to the e-mail local part, displayName to username.
func (svc *AuthService) Register(ctx context.Context, email, password, displayName, username string) (*models.PublicUser, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}
	if len(password) > MaxPasswordBytes {
		return nil, "", ErrPasswordTooLong
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if user != nil {
		logger.Log.Warnw("user already exists", "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = localPart(email)
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = username
	}

	user, err = svc.writer.Save(ctx, models.NewUser{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Username:     username,
		DisplayName:  displayName,
	})
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Warnw("user created concurrently", "email", email)
		return nil, "", ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	svc.activities.Record(ctx, models.Activity{
		UserID:      user.UserID,
		Type:        models.ActivityRegistration,
		Description: "User registered",
		Metadata:    map[string]any{"email": user.Email},
	})

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	public := user.Public()
	return &public, token, nil
}

// Login authenticates a user and returns a JWT token.
// Unknown e-mail and wrong password both yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.PublicUser, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}
	if len(password) > MaxPasswordBytes {
		return nil, "", ErrPasswordTooLong
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		// Spend the same bcrypt work as a real comparison.
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	svc.activities.Record(ctx, models.Activity{
		UserID:      user.UserID,
		Type:        models.ActivityLogin,
		Description: "User logged in",
		Metadata:    map[string]any{"email": user.Email},
	})

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	public := user.Public()
	return &public, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue []byte
)

func dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHashValue, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), PasswordHashCost)
	})
	return dummyHashValue
}
