package warehouse

import (
	"errors"
	"testing"

	"github.com/blaze-oss/orderbase/internal/rawdata"
)

func testRecord(name, product, category, price, qty, date string) rawdata.Record {
	return rawdata.Record{
		rawdata.FieldName:        name,
		rawdata.FieldAddress:     "1 Elm St",
		rawdata.FieldCity:        "Stockholm",
		rawdata.FieldCountry:     "Sweden",
		rawdata.FieldRegion:      "Northern Europe",
		rawdata.FieldProduct:     product,
		rawdata.FieldCategory:    category,
		rawdata.FieldDescription: category,
		rawdata.FieldUnitPrice:   price,
		rawdata.FieldQuantity:    qty,
		rawdata.FieldOrderDate:   date,
	}
}

func TestFlatten(t *testing.T) {
	records := []rawdata.Record{
		testRecord("Alice Smith", "A;B", "X;X", "10.00;20.00", "1;2", "20120814;20120820"),
		testRecord("Bob Jones", "C", "Y", "5.50", "3", "20120305"),
	}

	rows, err := Flatten(records)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 flattened rows, got %d", len(rows))
	}

	first := rows[0]
	if first.CustomerName != "Alice Smith" {
		t.Errorf("Expected customer 'Alice Smith', got %q", first.CustomerName)
	}
	if first.ProductName != "A" || first.UnitPrice != 10.0 || first.Quantity != 1 {
		t.Errorf("Unexpected first row: %+v", first)
	}
	if first.OrderDate != "2012-08-14" {
		t.Errorf("Expected converted date '2012-08-14', got %q", first.OrderDate)
	}

	last := rows[2]
	if last.CustomerName != "Bob Jones" || last.ProductName != "C" {
		t.Errorf("Unexpected last row: %+v", last)
	}
}

func TestFlattenArityMismatch(t *testing.T) {
	records := []rawdata.Record{
		testRecord("Alice Smith", "A;B;C", "X;X;X", "1.00;1.00;1.00", "1;2", "20120101;20120102;20120103"),
	}

	_, err := Flatten(records)
	if !errors.Is(err, rawdata.ErrArityMismatch) {
		t.Errorf("Expected ErrArityMismatch, got %v", err)
	}
}

func TestFlattenBadDate(t *testing.T) {
	records := []rawdata.Record{
		testRecord("Alice Smith", "A", "X", "1.00", "1", "2012814"),
	}

	_, err := Flatten(records)
	if !errors.Is(err, rawdata.ErrDataFormat) {
		t.Errorf("Expected ErrDataFormat, got %v", err)
	}
}
