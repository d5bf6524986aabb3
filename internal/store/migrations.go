package store

import (
	"context"
	"database/sql"
)

// schema contains the DDL for all Workdeck tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS gallery_cache (
		position   INTEGER PRIMARY KEY,
		title      TEXT NOT NULL,
		author     TEXT NOT NULL DEFAULT '',
		time       TEXT NOT NULL DEFAULT '',
		thumbnail  TEXT NOT NULL DEFAULT '',
		fetched_at TEXT NOT NULL
	)`,
}

// migrate executes all schema DDL statements.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
