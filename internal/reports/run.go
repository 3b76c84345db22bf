package reports

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blaze-oss/orderbase/internal/store"
)

// Run executes a non-parameterized report against db.
func Run(ctx context.Context, db *sql.DB, name string) (*store.Result, error) {
	def, err := Get(name)
	if err != nil {
		return nil, err
	}
	if def.PerCustomer {
		return nil, fmt.Errorf("report %s requires a customer name", name)
	}
	return execute(ctx, db, def.SQL)
}

// RunForCustomer executes a per-customer report, resolving the supplied
// full name to a CustomerID first.
func RunForCustomer(ctx context.Context, db *sql.DB, name, customerName string) (*store.Result, error) {
	def, err := Get(name)
	if err != nil {
		return nil, err
	}
	if !def.PerCustomer {
		return nil, fmt.Errorf("report %s does not take a customer name", name)
	}

	customerID, err := resolveCustomer(ctx, db, customerName)
	if err != nil {
		return nil, err
	}
	return execute(ctx, db, def.SQL, customerID)
}

func resolveCustomer(ctx context.Context, db *sql.DB, fullName string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, `
        SELECT CustomerID FROM Customer
        WHERE FirstName || ' ' || LastName = ?
    `, fullName).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("unknown customer: %s", fullName)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", store.ErrQueryExecution, err)
	}
	return id, nil
}

func execute(ctx context.Context, db *sql.DB, query string, args ...any) (*store.Result, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrQueryExecution, err)
	}
	defer rows.Close()
	return store.Collect(rows)
}
