package normalize

import (
	"context"
	"fmt"
	"sort"

	"github.com/blaze-oss/orderbase/internal/rawdata"
)

type customerRow struct {
	firstName string
	lastName  string
	address   string
	city      string
	countryID int64
}

// buildCustomer derives one row per raw record, splits the display name
// into first/last, and assigns CustomerIDs 1..N sorted by (first, last).
// The full name is the only natural key the raw format provides, so a
// duplicate name is rejected outright: it would make order resolution
// ambiguous later in the chain.
func (p *Pipeline) buildCustomer(ctx context.Context) error {
	if err := p.Ensure(ctx, TableCountry); err != nil {
		return err
	}

	records, err := rawdata.ParseFile(p.source)
	if err != nil {
		return err
	}
	countryDict, err := p.countryIDs(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(records))
	customers := make([]customerRow, 0, len(records))
	for _, rec := range records {
		full := rec[rawdata.FieldName]
		if seen[full] {
			return fmt.Errorf("%w: duplicate customer name %q",
				rawdata.ErrDataFormat, full)
		}
		seen[full] = true

		countryID, ok := countryDict[rec[rawdata.FieldCountry]]
		if !ok {
			return fmt.Errorf("%w: country %q not in Country table",
				ErrReferential, rec[rawdata.FieldCountry])
		}

		first, last := rawdata.SplitName(full)
		customers = append(customers, customerRow{
			firstName: first,
			lastName:  last,
			address:   rec[rawdata.FieldAddress],
			city:      rec[rawdata.FieldCity],
			countryID: countryID,
		})
	}

	sort.Slice(customers, func(i, j int) bool {
		if customers[i].firstName != customers[j].firstName {
			return customers[i].firstName < customers[j].firstName
		}
		return customers[i].lastName < customers[j].lastName
	})

	rows := make([][]any, 0, len(customers))
	for i, c := range customers {
		rows = append(rows, []any{i + 1, c.firstName, c.lastName, c.address, c.city, c.countryID})
	}

	return p.replaceTable(ctx, TableCustomer, createCustomerSQL, `
        INSERT INTO Customer (CustomerID, FirstName, LastName, Address, City, CountryID)
        VALUES (?, ?, ?, ?, ?, ?)`, rows)
}
