package normalize

import (
	"context"
	"fmt"
	"sort"

	"github.com/blaze-oss/orderbase/internal/rawdata"
)

// buildOrderDetail expands every customer's multi-value order fields
// into one fact row per position. Rows are emitted grouped by ascending
// CustomerID, then by original field position within the customer, and
// OrderIDs are assigned sequentially from 1 in that emission order.
// Compact 8-digit dates become hyphenated calendar dates.
func (p *Pipeline) buildOrderDetail(ctx context.Context) error {
	if err := p.Ensure(ctx, TableCustomer); err != nil {
		return err
	}
	if err := p.Ensure(ctx, TableProduct); err != nil {
		return err
	}

	records, err := rawdata.ParseFile(p.source)
	if err != nil {
		return err
	}
	customerDict, err := p.customerIDs(ctx)
	if err != nil {
		return err
	}
	productDict, err := p.productIDs(ctx)
	if err != nil {
		return err
	}

	recordOf := make(map[string]rawdata.Record, len(records))
	for _, rec := range records {
		recordOf[rec[rawdata.FieldName]] = rec
	}

	type customerRef struct {
		name string
		id   int64
	}
	customers := make([]customerRef, 0, len(customerDict))
	for name, id := range customerDict {
		customers = append(customers, customerRef{name: name, id: id})
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].id < customers[j].id
	})

	var rows [][]any
	orderID := 1
	for _, cust := range customers {
		rec, ok := recordOf[cust.name]
		if !ok {
			return fmt.Errorf("%w: customer %q has no raw record; "+
				"Customer table was built from a different source",
				ErrReferential, cust.name)
		}
		orders, err := rec.Orders()
		if err != nil {
			return err
		}
		for _, line := range orders {
			productID, ok := productDict[line.Product]
			if !ok {
				return fmt.Errorf("%w: product %q not in Product table",
					ErrReferential, line.Product)
			}
			date, err := rawdata.FormatDate(line.OrderDate)
			if err != nil {
				return err
			}
			rows = append(rows, []any{orderID, cust.id, productID, date, line.Quantity})
			orderID++
		}
	}

	return p.replaceTable(ctx, TableOrderDetail, createOrderDetailSQL, `
        INSERT INTO OrderDetail (OrderID, CustomerID, ProductID, OrderDate, QuantityOrdered)
        VALUES (?, ?, ?, ?, ?)`, rows)
}
