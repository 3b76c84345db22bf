package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/blaze-oss/orderbase/internal/normalize"
	"github.com/blaze-oss/orderbase/internal/reports"
	"github.com/blaze-oss/orderbase/internal/store"
)

var reportCustomer string

var reportCmd = &cobra.Command{
	Use:   "report <name>",
	Short: "Run an analytical report from the catalogue",
	Long: `Run one of the fixed analytical reports against the normalized
database. The OrderDetail chain is built first if any table is missing.
Per-customer reports take the customer's full name via --customer.

Example:
  orderbase report customer-totals
  orderbase report customer-orders --customer "Alice Smith"
  orderbase report list`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportCustomer, "customer", "",
		"customer full name for per-customer reports")
}

func runReport(cmd *cobra.Command, args []string) error {
	if args[0] == "list" {
		printCatalog(cmd)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := normalize.New(db, cfg.Source).Ensure(ctx, normalize.TableOrderDetail); err != nil {
		return err
	}

	var result *store.Result
	if reportCustomer != "" {
		result, err = reports.RunForCustomer(ctx, db, args[0], reportCustomer)
	} else {
		result, err = reports.Run(ctx, db, args[0])
	}
	if err != nil {
		return err
	}

	printResult(cmd, result)
	return nil
}

func printCatalog(cmd *cobra.Command) {
	cmd.Println("Available reports:")
	cmd.Println()
	for _, def := range reports.List() {
		suffix := ""
		if def.PerCustomer {
			suffix = " (requires --customer)"
		}
		cmd.Printf("  %-26s %s%s\n", def.Name, def.Description, suffix)
	}
}

func printResult(cmd *cobra.Command, result *store.Result) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(result.Columns, "\t"))
	for _, row := range result.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	cmd.Printf("(%d rows)\n", len(result.Rows))
}
