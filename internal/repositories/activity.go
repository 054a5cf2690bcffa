package repositories

import (
	"context"
	"encoding/json"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/models"
	"github.com/jmoiron/sqlx"
)

// ActivityWriteRepository appends entries to the activity feed.
type ActivityWriteRepository struct {
	db *sqlx.DB
}

func NewActivityWriteRepository(db *sqlx.DB) *ActivityWriteRepository {
	return &ActivityWriteRepository{db: db}
}

func (r *ActivityWriteRepository) Save(ctx context.Context, a models.Activity) error {
	query := `
		INSERT INTO activities (user_id, type, description, metadata, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	var metadata any
	if a.Metadata != nil {
		data, err := json.Marshal(a.Metadata)
		if err != nil {
			return err
		}
		metadata = string(data)
	}
	args := []any{a.UserID, a.Type, a.Description, metadata}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// ActivityReadRepository reads the activity feed.
type ActivityReadRepository struct {
	db *sqlx.DB
}

func NewActivityReadRepository(db *sqlx.DB) *ActivityReadRepository {
	return &ActivityReadRepository{db: db}
}

// List returns up to limit activities, newest first, with the acting user attached.
func (r *ActivityReadRepository) List(ctx context.Context, limit int) ([]models.ActivityDB, error) {
	const query = `
		SELECT a.id, a.user_id, a.type, a.description, a.metadata, a.created_at,
		       u.id AS "user.id", u.username AS "user.username", u.display_name AS "user.display_name"
		FROM activities a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC
		LIMIT $1
	`

	activities := []models.ActivityDB{}
	err := r.db.SelectContext(ctx, &activities, query, limit)

	logQuery(query, []any{limit}, len(activities), err)

	return activities, err
}
