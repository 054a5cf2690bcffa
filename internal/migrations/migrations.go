// Package migrations holds the PostgreSQL schema and applies it at startup.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/UtkarshPandey04/Reuse-hub-innotech/internal/logger"
	"github.com/jmoiron/sqlx"
)

//go:embed *.sql
var files embed.FS

// Apply executes every embedded migration in lexical order.
// Statements are idempotent (IF NOT EXISTS), so Apply is safe on every start.
func Apply(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		logger.Log.Infow("migration applied", "name", name)
	}

	return nil
}
