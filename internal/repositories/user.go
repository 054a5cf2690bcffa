package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = `id, email, password_hash, username, display_name, bio, avatar_url,
	green_points, co2_saved, waste_diverted, badges_earned, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.get(ctx, query, email)
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with zeroed counters.
// A duplicate email surfaces as ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, u models.NewUser) (*models.UserDB, error) {
	query := `
		INSERT INTO users (email, password_hash, username, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + userColumns
	args := []any{u.Email, u.PasswordHash, u.Username, u.DisplayName}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	// The hash is not logged.
	logQuery(query, []any{u.Email, "***", u.Username, u.DisplayName}, user.UserID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// UpdateProfile sets the non-nil fields of upd. It returns nil when the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.ProfileUpdate) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET display_name = COALESCE($2, display_name),
		    bio = COALESCE($3, bio),
		    avatar_url = COALESCE($4, avatar_url),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns
	args := []any{userID, upd.DisplayName, upd.Bio, upd.AvatarURL}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logQuery(query, args, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
