// Package testutil provides helpers for tests that need a database or
// a raw source fixture.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/blaze-oss/orderbase/internal/store"
)

// SourceHeader is the raw source header line.
const SourceHeader = "Name\tAddress\tCity\tCountry\tRegion\tProductName\t" +
	"ProductCategory\tProductCategoryDescription\tProductUnitPrice\t" +
	"QuantityOrdered\tOrderDate"

// WriteSource writes a raw source fixture (header plus the given data
// lines) into dir and returns its path.
func WriteSource(t *testing.T, dir string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, "data.tsv")
	content := SourceHeader + "\n" + strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write source fixture: %v", err)
	}
	return path
}

// OpenTestDB opens a fresh SQLite database under dir and closes it when
// the test finishes.
func OpenTestDB(t *testing.T, dir string) *sql.DB {
	t.Helper()

	db, err := store.Open(filepath.Join(dir, "normalized.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// PostgresAvailable checks if PostgreSQL is available for testing.
// Returns the connection string if available, empty string otherwise.
// Override the default with the ORDERBASE_TEST_CONN environment
// variable.
func PostgresAvailable() string {
	connStr := os.Getenv("ORDERBASE_TEST_CONN")
	if connStr == "" {
		connStr = "postgres://postgres@localhost:5432/postgres"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return ""
	}
	defer conn.Close(ctx)

	if err := conn.Ping(ctx); err != nil {
		return ""
	}
	return connStr
}

// SkipIfNoPostgres skips the test if PostgreSQL is not available.
func SkipIfNoPostgres(t *testing.T) string {
	connStr := PostgresAvailable()
	if connStr == "" {
		t.Skip("PostgreSQL not available, skipping integration test")
	}
	return connStr
}
