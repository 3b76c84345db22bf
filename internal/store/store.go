// Package store manages the normalized SQLite database file.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/blaze-oss/orderbase/internal/logging"
)

// Open opens (creating if necessary) the database at path. Foreign key
// enforcement is switched on for the connection. The caller owns the
// handle and must Close it.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// The builders assume a single writer end to end.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	logging.Debug().Str("path", path).Msg("Opened database")
	return db, nil
}

// TableExists reports whether a table with the given name exists.
// Presence is checked by name only; a stale table still counts.
func TableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var found string
	err := db.QueryRowContext(ctx, `
        SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?
    `, name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}
	return true, nil
}

// Recreate drops the named table if present and creates it fresh from
// ddl. Foreign key enforcement is toggled off around the drop so a
// parent table can be replaced ahead of its dependents.
func Recreate(ctx context.Context, db *sql.DB, name, ddl string) error {
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("failed to disable foreign keys: %w", err)
	}
	_, dropErr := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", name))
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to re-enable foreign keys: %w", err)
	}
	if dropErr != nil {
		return fmt.Errorf("failed to drop table %s: %w", name, dropErr)
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", name, err)
	}

	logging.Debug().Str("table", name).Msg("Recreated table")
	return nil
}
