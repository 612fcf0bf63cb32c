package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite curve cache schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS terminator_cache (
		cache_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
	);
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create terminator_cache: %w", err)
	}

	return nil
}

// Initialize the Postgres curve cache schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS terminator_cache (
		cache_key TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create terminator_cache: %w", err)
	}

	return nil
}
