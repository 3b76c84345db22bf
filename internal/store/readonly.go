package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrQueryExecution reports a rejected or failed read-only query.
var ErrQueryExecution = errors.New("query execution failed")

// Result is a tabular query result with display-ready values.
type Result struct {
	Columns []string
	Rows    [][]string
}

// ExecReadOnly executes a single SELECT statement and returns its rows.
// It is the narrow surface behind ad-hoc and generated queries. The
// statement runs on a connection with query_only switched on, so the
// store itself refuses any write the statement smuggles in (a
// WITH ... INSERT still begins like a query); the prefix check on top
// keeps out statements query_only does not cover, such as PRAGMA. Any
// failure is reported to the caller rather than aborting the process.
func ExecReadOnly(ctx context.Context, db *sql.DB, query string) (*Result, error) {
	if err := checkReadOnly(query); err != nil {
		return nil, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	defer func() {
		// The connection goes back into the pool and must be writable
		// again for the builders.
		conn.ExecContext(context.Background(), "PRAGMA query_only = OFF")
		conn.Close()
	}()

	if _, err := conn.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	defer rows.Close()

	return Collect(rows)
}

func checkReadOnly(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("%w: empty query", ErrQueryExecution)
	}
	// Structural checks run on a copy with string literals blanked out,
	// so a ';' inside a literal is not mistaken for a second statement.
	// A trailing semicolon is fine; anything after it is not.
	stripped := stripLiterals(trimmed)
	if i := strings.IndexByte(stripped, ';'); i >= 0 && strings.TrimSpace(stripped[i+1:]) != "" {
		return fmt.Errorf("%w: multiple statements are not allowed", ErrQueryExecution)
	}
	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return fmt.Errorf("%w: only SELECT statements are allowed", ErrQueryExecution)
	}
	return nil
}

// stripLiterals blanks the contents of single-quoted SQL string
// literals. Doubled quotes inside a literal toggle twice and come out
// right.
func stripLiterals(query string) string {
	var sb strings.Builder
	inString := false
	for _, r := range query {
		if r == '\'' {
			inString = !inString
			sb.WriteRune(r)
			continue
		}
		if inString {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Collect drains rows into a Result with display-ready values.
func Collect(rows *sql.Rows) (*Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}

	result := &Result{Columns: columns}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryExecution, err)
	}
	return result, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
