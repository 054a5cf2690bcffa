package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

var (
	// ErrUniqueViolation is returned when an insert hits a UNIQUE constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrNotFound is returned by updates that matched no row.
	ErrNotFound = errors.New("record not found")
)

// mapError translates driver errors into repository sentinels.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}

// logQuery logs a statement on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
