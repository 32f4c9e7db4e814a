package dbconfig

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

// Schema creates the league admin tables when they do not exist.
//
//go:embed schema.sql
var Schema string

// Migrate applies Schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
