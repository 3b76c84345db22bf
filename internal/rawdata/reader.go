// Package rawdata parses the denormalized customer-order source file.
//
// The source is tab-delimited text: the first line is a header, every
// following line is one customer. Six of the fields (ProductName,
// ProductCategory, ProductCategoryDescription, ProductUnitPrice,
// QuantityOrdered, OrderDate) are semicolon-delimited parallel lists
// holding that customer's orders, one entry per order.
package rawdata

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Field names expected in the source header.
const (
	FieldName        = "Name"
	FieldAddress     = "Address"
	FieldCity        = "City"
	FieldCountry     = "Country"
	FieldRegion      = "Region"
	FieldProduct     = "ProductName"
	FieldCategory    = "ProductCategory"
	FieldDescription = "ProductCategoryDescription"
	FieldUnitPrice   = "ProductUnitPrice"
	FieldQuantity    = "QuantityOrdered"
	FieldOrderDate   = "OrderDate"
)

var (
	// ErrDataFormat reports a missing or structurally malformed source.
	ErrDataFormat = errors.New("malformed source data")

	// ErrArityMismatch reports a record whose parallel multi-value
	// fields have unequal lengths.
	ErrArityMismatch = errors.New("multi-value field length mismatch")
)

// Record is one customer line, keyed by header field name.
type Record map[string]string

// OrderLine is one position of a record's zipped multi-value fields.
type OrderLine struct {
	Product     string
	Category    string
	Description string
	UnitPrice   float64
	Quantity    int
	OrderDate   string
}

// ParseFile reads and parses the source at path.
func ParseFile(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	return Parse(string(raw))
}

// Parse parses source text into one Record per data line. Embedded
// quote characters are stripped; no CSV-style quoting is honored. An
// empty source yields an empty slice.
func Parse(src string) ([]Record, error) {
	lines := splitLines(src)
	if len(lines) == 0 {
		return []Record{}, nil
	}

	header := strings.Split(lines[0], "\t")
	records := make([]Record, 0, len(lines)-1)
	for n, line := range lines[1:] {
		parts := strings.Split(line, "\t")
		if len(parts) > len(header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d",
				ErrDataFormat, n+2, len(parts), len(header))
		}
		rec := make(Record, len(header))
		for i, name := range header {
			value := ""
			if i < len(parts) {
				value = strings.ReplaceAll(parts[i], `"`, "")
			}
			rec[name] = value
		}
		records = append(records, rec)
	}
	return records, nil
}

// Orders zips the record's six parallel multi-value fields into one
// OrderLine per position. All six lists must have the same length.
func (r Record) Orders() ([]OrderLine, error) {
	products := strings.Split(r[FieldProduct], ";")
	categories := strings.Split(r[FieldCategory], ";")
	descriptions := strings.Split(r[FieldDescription], ";")
	prices := strings.Split(r[FieldUnitPrice], ";")
	quantities := strings.Split(r[FieldQuantity], ";")
	dates := strings.Split(r[FieldOrderDate], ";")

	n := len(products)
	for _, list := range [][]string{categories, descriptions, prices, quantities, dates} {
		if len(list) != n {
			return nil, fmt.Errorf("%w: customer %q", ErrArityMismatch, r[FieldName])
		}
	}

	lines := make([]OrderLine, 0, n)
	for i := 0; i < n; i++ {
		price, err := strconv.ParseFloat(prices[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: customer %q unit price %q",
				ErrDataFormat, r[FieldName], prices[i])
		}
		qty, err := strconv.Atoi(quantities[i])
		if err != nil {
			return nil, fmt.Errorf("%w: customer %q quantity %q",
				ErrDataFormat, r[FieldName], quantities[i])
		}
		lines = append(lines, OrderLine{
			Product:     products[i],
			Category:    categories[i],
			Description: descriptions[i],
			UnitPrice:   price,
			Quantity:    qty,
			OrderDate:   dates[i],
		})
	}
	return lines, nil
}

// SplitName splits a customer's display name into first and last name
// at the first space. A name with no space has an empty last name.
func SplitName(full string) (first, last string) {
	first, last, found := strings.Cut(full, " ")
	if !found {
		return full, ""
	}
	return first, last
}

// FormatDate converts an 8-digit compact date (20120814) into its
// hyphenated calendar form (2012-08-14).
func FormatDate(compact string) (string, error) {
	if len(compact) != 8 {
		return "", fmt.Errorf("%w: order date %q", ErrDataFormat, compact)
	}
	return compact[0:4] + "-" + compact[4:6] + "-" + compact[6:8], nil
}

func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
