package normalize

import (
	"context"
	"fmt"
	"sort"

	"github.com/blaze-oss/orderbase/internal/rawdata"
)

type productInfo struct {
	unitPrice  float64
	categoryID int64
}

// buildProduct derives the distinct product names, sorted, and assigns
// ProductIDs 1..N. Unit price and category are first-seen per product.
func (p *Pipeline) buildProduct(ctx context.Context) error {
	if err := p.Ensure(ctx, TableProductCategory); err != nil {
		return err
	}

	records, err := rawdata.ParseFile(p.source)
	if err != nil {
		return err
	}
	categoryDict, err := p.categoryIDs(ctx)
	if err != nil {
		return err
	}

	infoOf := make(map[string]productInfo)
	var products []string
	for _, rec := range records {
		orders, err := rec.Orders()
		if err != nil {
			return err
		}
		for _, line := range orders {
			if _, ok := infoOf[line.Product]; ok {
				continue
			}
			categoryID, ok := categoryDict[line.Category]
			if !ok {
				return fmt.Errorf("%w: category %q not in ProductCategory table",
					ErrReferential, line.Category)
			}
			infoOf[line.Product] = productInfo{
				unitPrice:  line.UnitPrice,
				categoryID: categoryID,
			}
			products = append(products, line.Product)
		}
	}
	sort.Strings(products)

	rows := make([][]any, 0, len(products))
	for i, name := range products {
		info := infoOf[name]
		rows = append(rows, []any{i + 1, name, info.unitPrice, info.categoryID})
	}

	return p.replaceTable(ctx, TableProduct, createProductSQL, `
        INSERT INTO Product (ProductID, ProductName, ProductUnitPrice, ProductCategoryID)
        VALUES (?, ?, ?, ?)`, rows)
}
