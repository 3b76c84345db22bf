package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestTableExists(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	exists, err := TableExists(ctx, db, "Widget")
	if err != nil {
		t.Fatalf("TableExists failed: %v", err)
	}
	if exists {
		t.Error("Expected Widget to not exist")
	}

	if _, err := db.Exec("CREATE TABLE Widget (id integer PRIMARY KEY)"); err != nil {
		t.Fatal(err)
	}

	exists, err = TableExists(ctx, db, "Widget")
	if err != nil {
		t.Fatalf("TableExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected Widget to exist")
	}
}

func TestRecreateReplacesRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	ddl := "CREATE TABLE IF NOT EXISTS Widget (id integer PRIMARY KEY, name text)"

	if err := Recreate(ctx, db, "Widget", ddl); err != nil {
		t.Fatalf("Recreate failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO Widget (id, name) VALUES (1, 'a')"); err != nil {
		t.Fatal(err)
	}

	if err := Recreate(ctx, db, "Widget", ddl); err != nil {
		t.Fatalf("Second Recreate failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM Widget").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Expected empty table after Recreate, got %d rows", count)
	}
}

func TestExecReadOnly(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.Exec("CREATE TABLE Widget (id integer, name text)"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO Widget VALUES (1, 'a'), (2, 'b')"); err != nil {
		t.Fatal(err)
	}

	result, err := ExecReadOnly(ctx, db, "SELECT id, name FROM Widget ORDER BY id")
	if err != nil {
		t.Fatalf("ExecReadOnly failed: %v", err)
	}
	if len(result.Columns) != 2 || result.Columns[0] != "id" {
		t.Errorf("Unexpected columns: %v", result.Columns)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(result.Rows))
	}
	if result.Rows[0][0] != "1" || result.Rows[0][1] != "a" {
		t.Errorf("Unexpected first row: %v", result.Rows[0])
	}
}

func TestExecReadOnlyAllowsCTE(t *testing.T) {
	db := openTestDB(t)

	result, err := ExecReadOnly(context.Background(), db,
		"WITH nums AS (SELECT 1 AS n UNION SELECT 2) SELECT n FROM nums;")
	if err != nil {
		t.Fatalf("ExecReadOnly failed for CTE: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(result.Rows))
	}
}

func TestExecReadOnlyRejections(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
	}{
		{"empty", "   "},
		{"insert", "INSERT INTO Widget VALUES (1, 'a')"},
		{"drop", "DROP TABLE Widget"},
		{"pragma", "PRAGMA foreign_keys = OFF"},
		{"multiple statements", "SELECT 1; DROP TABLE Widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExecReadOnly(ctx, db, tt.query)
			if !errors.Is(err, ErrQueryExecution) {
				t.Errorf("Expected ErrQueryExecution, got %v", err)
			}
		})
	}
}

func TestExecReadOnlyRefusesCTEWrite(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.Exec("CREATE TABLE Widget (id integer, name text)"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO Widget VALUES (1, 'a')"); err != nil {
		t.Fatal(err)
	}

	// Starts like a query, but the statement body is a write.
	_, err := ExecReadOnly(ctx, db,
		"WITH x AS (SELECT 42, 'z') INSERT INTO Widget SELECT * FROM x")
	if !errors.Is(err, ErrQueryExecution) {
		t.Errorf("Expected ErrQueryExecution for CTE-wrapped insert, got %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM Widget").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected Widget untouched with 1 row, got %d", count)
	}
}

func TestExecReadOnlySemicolonInLiteral(t *testing.T) {
	db := openTestDB(t)

	result, err := ExecReadOnly(context.Background(), db, "SELECT 'a;b'")
	if err != nil {
		t.Fatalf("ExecReadOnly failed for literal containing ';': %v", err)
	}
	if len(result.Rows) != 1 || result.Rows[0][0] != "a;b" {
		t.Errorf("Unexpected result: %v", result.Rows)
	}
}

func TestExecReadOnlyLeavesConnectionWritable(t *testing.T) {
	db := openTestDB(t)

	if _, err := ExecReadOnly(context.Background(), db, "SELECT 1"); err != nil {
		t.Fatalf("ExecReadOnly failed: %v", err)
	}

	// query_only must not leak into the pooled connection.
	if _, err := db.Exec("CREATE TABLE Widget (id integer PRIMARY KEY)"); err != nil {
		t.Errorf("Expected connection to be writable again, got %v", err)
	}
}

func TestExecReadOnlyFailureIsolated(t *testing.T) {
	db := openTestDB(t)

	_, err := ExecReadOnly(context.Background(), db, "SELECT * FROM NoSuchTable")
	if !errors.Is(err, ErrQueryExecution) {
		t.Errorf("Expected ErrQueryExecution for bad query, got %v", err)
	}

	// The handle stays usable after a failed query.
	if _, err := ExecReadOnly(context.Background(), db, "SELECT 1"); err != nil {
		t.Errorf("Expected handle to survive a failed query, got %v", err)
	}
}
