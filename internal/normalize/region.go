package normalize

import (
	"context"
	"sort"

	"github.com/blaze-oss/orderbase/internal/rawdata"
)

// buildRegion derives the distinct region names, sorted, and assigns
// RegionIDs 1..N in that order.
func (p *Pipeline) buildRegion(ctx context.Context) error {
	records, err := rawdata.ParseFile(p.source)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var regions []string
	for _, rec := range records {
		name := rec[rawdata.FieldRegion]
		if !seen[name] {
			seen[name] = true
			regions = append(regions, name)
		}
	}
	sort.Strings(regions)

	rows := make([][]any, 0, len(regions))
	for i, name := range regions {
		rows = append(rows, []any{i + 1, name})
	}

	return p.replaceTable(ctx, TableRegion, createRegionSQL,
		"INSERT INTO Region (RegionID, Region) VALUES (?, ?)", rows)
}
