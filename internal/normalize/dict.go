package normalize

import (
	"context"
	"database/sql"
	"fmt"
)

// The name→ID dictionaries are always derived from the persisted
// prerequisite table, never carried over in memory between builder
// invocations. A builder therefore resolves foreign keys against the
// table state that is actually on disk.

func readDict(ctx context.Context, db *sql.DB, query string) (map[string]int64, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	defer rows.Close()

	dict := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan dictionary row: %w", err)
		}
		dict[name] = id
	}
	return dict, rows.Err()
}

func (p *Pipeline) regionIDs(ctx context.Context) (map[string]int64, error) {
	return readDict(ctx, p.db, "SELECT RegionID, Region FROM Region")
}

func (p *Pipeline) countryIDs(ctx context.Context) (map[string]int64, error) {
	return readDict(ctx, p.db, "SELECT CountryID, Country FROM Country")
}

// customerIDs keys customers by their full display name, the only
// natural key the raw format provides.
func (p *Pipeline) customerIDs(ctx context.Context) (map[string]int64, error) {
	return readDict(ctx, p.db,
		"SELECT CustomerID, FirstName || ' ' || LastName FROM Customer")
}

func (p *Pipeline) categoryIDs(ctx context.Context) (map[string]int64, error) {
	return readDict(ctx, p.db,
		"SELECT ProductCategoryID, ProductCategory FROM ProductCategory")
}

func (p *Pipeline) productIDs(ctx context.Context) (map[string]int64, error) {
	return readDict(ctx, p.db, "SELECT ProductID, ProductName FROM Product")
}
