package normalize

import (
	"context"
	"sort"

	"github.com/blaze-oss/orderbase/internal/rawdata"
)

// buildProductCategory derives the distinct category codes, sorted, and
// assigns ProductCategoryIDs 1..N. The description is first-seen: when
// records disagree, the earliest one in file order wins.
func (p *Pipeline) buildProductCategory(ctx context.Context) error {
	if err := p.Ensure(ctx, TableCustomer); err != nil {
		return err
	}

	records, err := rawdata.ParseFile(p.source)
	if err != nil {
		return err
	}

	descOf := make(map[string]string)
	var categories []string
	for _, rec := range records {
		orders, err := rec.Orders()
		if err != nil {
			return err
		}
		for _, line := range orders {
			if _, ok := descOf[line.Category]; !ok {
				descOf[line.Category] = line.Description
				categories = append(categories, line.Category)
			}
		}
	}
	sort.Strings(categories)

	rows := make([][]any, 0, len(categories))
	for i, cat := range categories {
		rows = append(rows, []any{i + 1, cat, descOf[cat]})
	}

	return p.replaceTable(ctx, TableProductCategory, createProductCategorySQL, `
        INSERT INTO ProductCategory (ProductCategoryID, ProductCategory, ProductCategoryDescription)
        VALUES (?, ?, ?)`, rows)
}
