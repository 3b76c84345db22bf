package reports

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/blaze-oss/orderbase/internal/normalize"
	"github.com/blaze-oss/orderbase/internal/store"
	"github.com/blaze-oss/orderbase/internal/testutil"
)

var fixtureLines = []string{
	"Alice Smith\t1 Elm St\tStockholm\tSweden\tNorthern Europe\t" +
		"Espresso Machine;Chef Knife\tKitchen;Kitchen\t" +
		"Kitchen appliances;Kitchen appliances\t100.00;25.00\t1;2\t20120814;20120820",
	"Bob Jones\t2 Oak Ave\tParis\tFrance\tWestern Europe\t" +
		"Notebook Set\tOffice\tOffice supplies\t15.10\t5\t20120305",
	"Carol White\t3 Pine Rd\tBerlin\tGermany\tWestern Europe\t" +
		"Desk Lamp;Desk Lamp;Desk Lamp\tOffice;Office;Office\t" +
		"Office supplies;Office supplies;Office supplies\t" +
		"10.00;10.00;10.00\t1;1;1\t20120101;20120111;20120210",
}

func buildFixture(t *testing.T, lines ...string) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	source := testutil.WriteSource(t, dir, lines...)
	db := testutil.OpenTestDB(t, dir)
	if err := normalize.New(db, source).RebuildAll(context.Background()); err != nil {
		t.Fatalf("RebuildAll failed: %v", err)
	}
	return db
}

func TestCatalog(t *testing.T) {
	defs := List()
	if len(defs) != 11 {
		t.Errorf("Expected 11 reports in the catalogue, got %d", len(defs))
	}
	for _, def := range defs {
		if def.SQL == "" {
			t.Errorf("Report %s has empty SQL", def.Name)
		}
		if def.Description == "" {
			t.Errorf("Report %s has empty description", def.Name)
		}
	}

	if _, err := Get("no-such-report"); err == nil {
		t.Error("Expected error for unknown report")
	}
}

func TestCustomerTotals(t *testing.T) {
	db := buildFixture(t, fixtureLines...)

	result, err := Run(context.Background(), db, "customer-totals")
	if err != nil {
		t.Fatalf("customer-totals failed: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(result.Rows))
	}

	// Descending by total: Alice 150.00, Bob 75.50, Carol 30.00.
	expected := [][]string{
		{"Alice Smith", "150"},
		{"Bob Jones", "75.5"},
		{"Carol White", "30"},
	}
	for i, want := range expected {
		if result.Rows[i][0] != want[0] || result.Rows[i][1] != want[1] {
			t.Errorf("Row %d: expected %v, got %v", i, want, result.Rows[i])
		}
	}
}

func TestCustomerOrders(t *testing.T) {
	db := buildFixture(t, fixtureLines...)

	result, err := RunForCustomer(context.Background(), db, "customer-orders", "Alice Smith")
	if err != nil {
		t.Fatalf("customer-orders failed: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("Expected 2 rows for Alice, got %d", len(result.Rows))
	}

	first := result.Rows[0]
	if first[1] != "Espresso Machine" {
		t.Errorf("Expected first order 'Espresso Machine', got %q", first[1])
	}
	if first[2] != "2012-08-14" {
		t.Errorf("Expected converted date '2012-08-14', got %q", first[2])
	}
	if first[5] != "100" {
		t.Errorf("Expected line total 100, got %q", first[5])
	}
	if second := result.Rows[1]; second[5] != "50" {
		t.Errorf("Expected line total 50, got %q", second[5])
	}
}

func TestCustomerTotal(t *testing.T) {
	db := buildFixture(t, fixtureLines...)

	result, err := RunForCustomer(context.Background(), db, "customer-total", "Bob Jones")
	if err != nil {
		t.Fatalf("customer-total failed: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(result.Rows))
	}
	if result.Rows[0][1] != "75.5" {
		t.Errorf("Expected total 75.5, got %q", result.Rows[0][1])
	}
}

func TestRegionAndCountryTotals(t *testing.T) {
	db := buildFixture(t, fixtureLines...)
	ctx := context.Background()

	// Region and country totals are rounded to 0 decimals, unlike the
	// 2-decimal customer reports.
	result, err := Run(ctx, db, "region-totals")
	if err != nil {
		t.Fatalf("region-totals failed: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("Expected 2 region rows, got %d", len(result.Rows))
	}
	if result.Rows[0][0] != "Northern Europe" || result.Rows[0][1] != "150" {
		t.Errorf("Unexpected top region row: %v", result.Rows[0])
	}
	if result.Rows[1][0] != "Western Europe" || result.Rows[1][1] != "106" {
		t.Errorf("Unexpected second region row: %v", result.Rows[1])
	}

	result, err = Run(ctx, db, "country-totals")
	if err != nil {
		t.Fatalf("country-totals failed: %v", err)
	}
	expected := [][]string{
		{"Sweden", "150"},
		{"France", "76"},
		{"Germany", "30"},
	}
	for i, want := range expected {
		if result.Rows[i][0] != want[0] || result.Rows[i][1] != want[1] {
			t.Errorf("Country row %d: expected %v, got %v", i, want, result.Rows[i])
		}
	}
}

func TestRegionCountryRankCompetitionRanking(t *testing.T) {
	// One region, three countries: totals 300, 300, 100. Competition
	// ranking gives 1, 1, 3 with no rank 2.
	db := buildFixture(t,
		"Ann Alpha\t1 A St\tParis\tFrance\tEuro Zone\t"+
			"Widget\tMisc\tMiscellaneous\t100.00\t3\t20120101",
		"Ben Beta\t2 B St\tBerlin\tGermany\tEuro Zone\t"+
			"Widget\tMisc\tMiscellaneous\t100.00\t3\t20120201",
		"Cal Gamma\t3 C St\tRome\tItaly\tEuro Zone\t"+
			"Widget\tMisc\tMiscellaneous\t100.00\t1\t20120301",
	)

	result, err := Run(context.Background(), db, "region-country-rank")
	if err != nil {
		t.Fatalf("region-country-rank failed: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(result.Rows))
	}

	ranks := make(map[string]string)
	for _, row := range result.Rows {
		ranks[row[1]] = row[3]
	}
	if ranks["France"] != "1" || ranks["Germany"] != "1" {
		t.Errorf("Expected both 300-total countries at rank 1, got %v", ranks)
	}
	if ranks["Italy"] != "3" {
		t.Errorf("Expected Italy at rank 3 (no rank 2 emitted), got %v", ranks)
	}

	top, err := Run(context.Background(), db, "region-top-country")
	if err != nil {
		t.Fatalf("region-top-country failed: %v", err)
	}
	if len(top.Rows) != 2 {
		t.Errorf("Expected both tied countries at rank 1, got %d rows", len(top.Rows))
	}
}

func TestQuarterlyTopCustomers(t *testing.T) {
	db := buildFixture(t, fixtureLines...)

	result, err := Run(context.Background(), db, "quarterly-top-customers")
	if err != nil {
		t.Fatalf("quarterly-top-customers failed: %v", err)
	}

	// Q1 2012: Bob 75.5 (rank 1), Carol 30 (rank 2); Q3 2012: Alice 150.
	expected := [][]string{
		{"Q1", "2012", "2", "76", "1"},
		{"Q1", "2012", "3", "30", "2"},
		{"Q3", "2012", "1", "150", "1"},
	}
	if len(result.Rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d: %v", len(expected), len(result.Rows), result.Rows)
	}
	for i, want := range expected {
		for j := range want {
			if result.Rows[i][j] != want[j] {
				t.Errorf("Row %d: expected %v, got %v", i, want, result.Rows[i])
				break
			}
		}
	}
}

func TestQuarterlyCustomerTotals(t *testing.T) {
	db := buildFixture(t, fixtureLines...)

	result, err := Run(context.Background(), db, "quarterly-customer-totals")
	if err != nil {
		t.Fatalf("quarterly-customer-totals failed: %v", err)
	}
	if len(result.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(result.Rows))
	}
	// Customer-level totals keep 2-decimal rounding.
	if result.Rows[0][3] != "75.5" {
		t.Errorf("Expected Bob's Q1 total 75.5, got %q", result.Rows[0][3])
	}
}

func TestMonthlyRank(t *testing.T) {
	db := buildFixture(t, fixtureLines...)

	result, err := Run(context.Background(), db, "monthly-rank")
	if err != nil {
		t.Fatalf("monthly-rank failed: %v", err)
	}

	expected := [][]string{
		{"August", "150", "1"},
		{"March", "76", "2"},
		{"January", "20", "3"},
		{"February", "10", "4"},
	}
	if len(result.Rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d: %v", len(expected), len(result.Rows), result.Rows)
	}
	for i, want := range expected {
		for j := range want {
			if result.Rows[i][j] != want[j] {
				t.Errorf("Row %d: expected %v, got %v", i, want, result.Rows[i])
				break
			}
		}
	}
}

func TestOrderGaps(t *testing.T) {
	db := buildFixture(t, fixtureLines...)

	result, err := Run(context.Background(), db, "order-gaps")
	if err != nil {
		t.Fatalf("order-gaps failed: %v", err)
	}

	// Bob has a single order and no gap; Carol's gaps are 10 and 30
	// days (only the max is kept); Alice's single gap is 6 days.
	if len(result.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d: %v", len(result.Rows), result.Rows)
	}
	carol := result.Rows[0]
	if carol[0] != "3" || carol[6] != "30" {
		t.Errorf("Expected Carol (id 3) with max gap 30, got %v", carol)
	}
	alice := result.Rows[1]
	if alice[0] != "1" || alice[6] != "6" {
		t.Errorf("Expected Alice (id 1) with max gap 6, got %v", alice)
	}
}

func TestRunParameterChecks(t *testing.T) {
	db := buildFixture(t, fixtureLines...)
	ctx := context.Background()

	if _, err := Run(ctx, db, "customer-orders"); err == nil {
		t.Error("Expected error running a per-customer report without a name")
	}
	if _, err := RunForCustomer(ctx, db, "customer-totals", "Alice Smith"); err == nil {
		t.Error("Expected error passing a customer to a catalogue-wide report")
	}
	if _, err := RunForCustomer(ctx, db, "customer-orders", "No Body"); err == nil {
		t.Error("Expected error for unknown customer")
	}
}

func TestReportFailureIsolated(t *testing.T) {
	dir := t.TempDir()
	db := testutil.OpenTestDB(t, dir)

	// No schema built: the report fails but the handle survives.
	_, err := Run(context.Background(), db, "customer-totals")
	if !errors.Is(err, store.ErrQueryExecution) {
		t.Errorf("Expected ErrQueryExecution, got %v", err)
	}

	if _, err := store.ExecReadOnly(context.Background(), db, "SELECT 1"); err != nil {
		t.Errorf("Expected handle to survive a failed report, got %v", err)
	}
}
