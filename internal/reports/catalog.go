// Package reports defines the fixed catalogue of analytical queries
// over the normalized order schema. Every report is a pure read; a
// failing report is returned to the caller and never aborts the
// process.
package reports

import (
	"fmt"
	"sort"
)

// Definition describes one report in the catalogue.
type Definition struct {
	// Name is the report identifier.
	Name string

	// Description describes what the report returns.
	Description string

	// PerCustomer is true for reports parameterized by a customer
	// full name.
	PerCustomer bool

	// SQL is the report query. Per-customer reports carry one ?
	// placeholder for the resolved CustomerID.
	SQL string
}

var catalog = map[string]Definition{
	"customer-orders": {
		Name:        "customer-orders",
		Description: "Order lines for one customer with 2-decimal line totals",
		PerCustomer: true,
		SQL:         customerOrdersSQL,
	},
	"customer-total": {
		Name:        "customer-total",
		Description: "Summed order total for one customer, rounded to 2 decimals",
		PerCustomer: true,
		SQL:         customerTotalSQL,
	},
	"customer-totals": {
		Name:        "customer-totals",
		Description: "Order totals per customer, 2 decimals, descending",
		SQL:         customerTotalsSQL,
	},
	"region-totals": {
		Name:        "region-totals",
		Description: "Order totals per region, 0 decimals, descending",
		SQL:         regionTotalsSQL,
	},
	"country-totals": {
		Name:        "country-totals",
		Description: "Order totals per country, 0 decimals, descending",
		SQL:         countryTotalsSQL,
	},
	"region-country-rank": {
		Name:        "region-country-rank",
		Description: "Countries ranked by total within each region (competition ranking)",
		SQL:         regionCountryRankSQL,
	},
	"region-top-country": {
		Name:        "region-top-country",
		Description: "The rank-1 country of each region",
		SQL:         regionTopCountrySQL,
	},
	"quarterly-customer-totals": {
		Name:        "quarterly-customer-totals",
		Description: "Customer totals per calendar quarter and year",
		SQL:         quarterlyCustomerTotalsSQL,
	},
	"quarterly-top-customers": {
		Name:        "quarterly-top-customers",
		Description: "Top five customers per quarter and year (competition ranking)",
		SQL:         quarterlyTopCustomersSQL,
	},
	"monthly-rank": {
		Name:        "monthly-rank",
		Description: "Calendar months ranked by total across all years",
		SQL:         monthlyRankSQL,
	},
	"order-gaps": {
		Name:        "order-gaps",
		Description: "Largest gap in days between consecutive orders per customer",
		SQL:         orderGapsSQL,
	},
}

// Get retrieves a report definition by name.
func Get(name string) (Definition, error) {
	def, ok := catalog[name]
	if !ok {
		return Definition{}, fmt.Errorf("unknown report: %s", name)
	}
	return def, nil
}

// List returns all report definitions sorted by name.
func List() []Definition {
	defs := make([]Definition, 0, len(catalog))
	for _, def := range catalog {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
