package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// opens the SQLite database named by databaseURL (a "sqlite:" URL or a
// bare path) and applies the schema
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	path := strings.TrimPrefix(databaseURL, "sqlite:")

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite serializes writes; a single connection avoids SQLITE_BUSY
	// under concurrent handlers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}

// applies the schema; safe to run on every startup
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaTodoItems)
	if err != nil {
		return fmt.Errorf("create todo_items: %w", err)
	}

	return nil
}

const schemaTodoItems = `
	CREATE TABLE IF NOT EXISTS todo_items (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id      TEXT NOT NULL,
		list_id      INTEGER NOT NULL DEFAULT 1,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		is_completed INTEGER NOT NULL DEFAULT 0,
		due_date     TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_todo_items_user ON todo_items (user_id);
`
