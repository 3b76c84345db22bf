package datagen

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// catalogItem is one product of the fixed synthetic catalogue.
type catalogItem struct {
	name        string
	category    string
	description string
	unitPrice   float64
}

// The synthetic catalogue deliberately reuses categories across
// products so the normalizer's first-seen and distinct-key paths get
// exercised.
var catalogItems = []catalogItem{
	{"Espresso Machine", "Kitchen", "Kitchen appliances and tools", 249.99},
	{"Chef Knife", "Kitchen", "Kitchen appliances and tools", 89.50},
	{"Cast Iron Skillet", "Kitchen", "Kitchen appliances and tools", 42.00},
	{"Trail Backpack", "Outdoor", "Outdoor and camping gear", 119.95},
	{"Camping Stove", "Outdoor", "Outdoor and camping gear", 64.25},
	{"Sleeping Bag", "Outdoor", "Outdoor and camping gear", 99.00},
	{"Mechanical Keyboard", "Electronics", "Consumer electronics", 139.00},
	{"Wireless Mouse", "Electronics", "Consumer electronics", 34.99},
	{"USB Microphone", "Electronics", "Consumer electronics", 79.90},
	{"Desk Lamp", "Office", "Office furniture and supplies", 27.50},
	{"Standing Desk", "Office", "Office furniture and supplies", 399.00},
	{"Notebook Set", "Office", "Office furniture and supplies", 12.75},
}

type marketArea struct {
	region    string
	countries []string
}

var marketAreas = []marketArea{
	{"Northern Europe", []string{"Sweden", "Norway", "Denmark", "Finland"}},
	{"Western Europe", []string{"France", "Germany", "Netherlands"}},
	{"North America", []string{"USA", "Canada"}},
	{"South America", []string{"Brazil", "Argentina"}},
	{"Asia Pacific", []string{"Japan", "Australia", "Singapore"}},
}

// Generator writes synthetic raw source files.
type Generator struct {
	faker *Faker
}

// NewGenerator returns a Generator seeded for reproducible output.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: NewFakerWithSeed(seed)}
}

// WriteTSV writes a synthetic raw source with the given number of
// customers to path. Each customer gets 1-12 orders packed into the
// semicolon-delimited multi-value fields.
func (g *Generator) WriteTSV(path string, customers int) error {
	var sb strings.Builder
	sb.WriteString("Name\tAddress\tCity\tCountry\tRegion\tProductName\t" +
		"ProductCategory\tProductCategoryDescription\tProductUnitPrice\t" +
		"QuantityOrdered\tOrderDate\n")

	start := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	seen := make(map[string]bool, customers)
	for i := 0; i < customers; i++ {
		// Full names double as natural keys downstream, so collisions
		// are retried away here.
		name := g.faker.FirstName() + " " + g.faker.LastName()
		for seen[name] {
			name = g.faker.FirstName() + " " + g.faker.LastName()
		}
		seen[name] = true

		area := Element(g.faker, marketAreas)
		country := Element(g.faker, area.countries)

		n := g.faker.Int(1, 12)
		products := make([]string, n)
		categories := make([]string, n)
		descriptions := make([]string, n)
		prices := make([]string, n)
		quantities := make([]string, n)
		dates := make([]string, n)
		for j := 0; j < n; j++ {
			item := Element(g.faker, catalogItems)
			products[j] = item.name
			categories[j] = item.category
			descriptions[j] = item.description
			prices[j] = fmt.Sprintf("%.2f", item.unitPrice)
			quantities[j] = fmt.Sprintf("%d", g.faker.Int(1, 10))
			dates[j] = g.faker.Date(start, end).Format("20060102")
		}

		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			name,
			g.faker.Street(),
			g.faker.City(),
			country,
			area.region,
			strings.Join(products, ";"),
			strings.Join(categories, ";"),
			strings.Join(descriptions, ";"),
			strings.Join(prices, ";"),
			strings.Join(quantities, ";"),
			strings.Join(dates, ";"),
		)
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
