// Package warehouse bulk-loads a fully denormalized one-row-per-order
// representation of the raw source into a PostgreSQL analytical store.
// It is a parallel representation of the same data and never touches
// the normalized SQLite schema.
package warehouse

import (
	"github.com/blaze-oss/orderbase/internal/rawdata"
)

// OrderRow is one flattened order: the customer's attributes repeated
// alongside a single order line.
type OrderRow struct {
	CustomerName        string
	Address             string
	City                string
	Country             string
	Region              string
	ProductName         string
	ProductCategory     string
	CategoryDescription string
	UnitPrice           float64
	Quantity            int
	OrderDate           string
}

// Flatten expands every record's multi-value order fields into one
// OrderRow per order line, with dates in hyphenated calendar form.
func Flatten(records []rawdata.Record) ([]OrderRow, error) {
	var rows []OrderRow
	for _, rec := range records {
		orders, err := rec.Orders()
		if err != nil {
			return nil, err
		}
		for _, line := range orders {
			date, err := rawdata.FormatDate(line.OrderDate)
			if err != nil {
				return nil, err
			}
			rows = append(rows, OrderRow{
				CustomerName:        rec[rawdata.FieldName],
				Address:             rec[rawdata.FieldAddress],
				City:                rec[rawdata.FieldCity],
				Country:             rec[rawdata.FieldCountry],
				Region:              rec[rawdata.FieldRegion],
				ProductName:         line.Product,
				ProductCategory:     line.Category,
				CategoryDescription: line.Description,
				UnitPrice:           line.UnitPrice,
				Quantity:            line.Quantity,
				OrderDate:           date,
			})
		}
	}
	return rows, nil
}
