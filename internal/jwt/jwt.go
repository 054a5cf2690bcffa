package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultExpiration is the lifetime of a session token.
const DefaultExpiration = 7 * 24 * time.Hour

var (
	// ErrSigningKeyNotConfigured is returned when the secret is empty or a known placeholder.
	ErrSigningKeyNotConfigured = errors.New("token signing key is not configured")
	// ErrInvalidToken covers malformed, wrongly signed and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrAuthorizationHeaderMissing is returned when the request carries no Authorization header.
	ErrAuthorizationHeaderMissing = errors.New("authorization header missing")
	// ErrAuthorizationHeaderFormat is returned for anything other than "Bearer <token>".
	ErrAuthorizationHeaderFormat = errors.New("invalid authorization header format")
)

// placeholderSecrets are defaults seen in sample configs. Signing with them is refused.
var placeholderSecrets = map[string]struct{}{
	"fallback-secret":     {},
	"my_super_secret_key": {},
	"changeme":            {},
	"secret":              {},
}

// IsUsableSecret reports whether secret may be used to sign tokens.
func IsUsableSecret(secret string) bool {
	if strings.TrimSpace(secret) == "" {
		return false
	}
	_, placeholder := placeholderSecrets[secret]
	return !placeholder
}

// Claims are the session token claims: the user id plus iat/exp.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// JWT issues and verifies stateless session tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
	now       func() time.Time
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.secretKey = secret
	}
}

// WithExpiration overrides the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Opt {
	return func(j *JWT) {
		j.now = now
	}
}

// New creates a new JWT instance. Without WithSecretKey every operation fails closed.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: DefaultExpiration,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token for userID expiring exp after issuance.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	if !IsUsableSecret(j.secretKey) {
		return "", ErrSigningKeyNotConfigured
	}

	issuedAt := j.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses and verifies tokenString.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	if !IsUsableSecret(j.secretKey) {
		return nil, ErrSigningKeyNotConfigured
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(j.secretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Validate checks the token without returning its claims.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrAuthorizationHeaderMissing
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrAuthorizationHeaderFormat
	}

	return parts[1], nil
}
