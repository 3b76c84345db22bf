package normalize

import (
	"context"
	"fmt"
	"sort"

	"github.com/blaze-oss/orderbase/internal/rawdata"
)

// buildCountry derives the distinct country names, sorted, and assigns
// CountryIDs 1..N. Each country's region is taken from the first raw
// record that mentions the country.
func (p *Pipeline) buildCountry(ctx context.Context) error {
	if err := p.Ensure(ctx, TableRegion); err != nil {
		return err
	}

	records, err := rawdata.ParseFile(p.source)
	if err != nil {
		return err
	}
	regionDict, err := p.regionIDs(ctx)
	if err != nil {
		return err
	}

	regionOf := make(map[string]string)
	var countries []string
	for _, rec := range records {
		country := rec[rawdata.FieldCountry]
		if _, ok := regionOf[country]; !ok {
			regionOf[country] = rec[rawdata.FieldRegion]
			countries = append(countries, country)
		}
	}
	sort.Strings(countries)

	rows := make([][]any, 0, len(countries))
	for i, country := range countries {
		regionID, ok := regionDict[regionOf[country]]
		if !ok {
			return fmt.Errorf("%w: region %q not in Region table",
				ErrReferential, regionOf[country])
		}
		rows = append(rows, []any{i + 1, country, regionID})
	}

	return p.replaceTable(ctx, TableCountry, createCountrySQL,
		"INSERT INTO Country (CountryID, Country, RegionID) VALUES (?, ?, ?)", rows)
}
