package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/blaze-oss/orderbase/internal/store"
)

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a read-only SQL query against the normalized database",
	Long: `Execute a single SELECT statement against the normalized database
and print the result. This is the execution surface behind externally
generated queries: anything other than one plain SELECT is rejected,
and a failing query is reported without touching the schema.

Example:
  orderbase query "SELECT Country, COUNT(*) FROM Customer JOIN Country USING (CountryID) GROUP BY Country"`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := store.ExecReadOnly(context.Background(), db, args[0])
	if err != nil {
		return err
	}

	printResult(cmd, result)
	return nil
}
