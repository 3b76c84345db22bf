package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/blaze-oss/orderbase/internal/logging"
)

const createOrdersSQL = `
CREATE TABLE orders (
    id SERIAL PRIMARY KEY,
    customer_name TEXT NOT NULL,
    address TEXT NOT NULL,
    city TEXT NOT NULL,
    country TEXT NOT NULL,
    region TEXT NOT NULL,
    product_name TEXT NOT NULL,
    product_category TEXT NOT NULL,
    product_category_description TEXT NOT NULL,
    product_unit_price NUMERIC(10,2) NOT NULL,
    quantity_ordered INTEGER NOT NULL,
    order_date DATE NOT NULL
)`

var ordersColumns = []string{
	"customer_name", "address", "city", "country", "region",
	"product_name", "product_category", "product_category_description",
	"product_unit_price", "quantity_ordered", "order_date",
}

// Load replaces the warehouse orders table and bulk-loads rows into it
// with the COPY protocol.
func Load(ctx context.Context, connString string, rows []OrderRow) error {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, "DROP TABLE IF EXISTS orders"); err != nil {
		return fmt.Errorf("failed to drop orders table: %w", err)
	}
	if _, err := conn.Exec(ctx, createOrdersSQL); err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}

	copied, err := conn.CopyFrom(ctx,
		pgx.Identifier{"orders"},
		ordersColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{
				r.CustomerName, r.Address, r.City, r.Country, r.Region,
				r.ProductName, r.ProductCategory, r.CategoryDescription,
				r.UnitPrice, r.Quantity, r.OrderDate,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy orders: %w", err)
	}

	logging.Info().Int64("rows", copied).Msg("Loaded warehouse orders table")
	return nil
}
