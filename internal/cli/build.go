package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/blaze-oss/orderbase/internal/logging"
	"github.com/blaze-oss/orderbase/internal/normalize"
	"github.com/blaze-oss/orderbase/internal/store"
)

var buildRebuild bool

var buildCmd = &cobra.Command{
	Use:   "build [table]",
	Short: "Build the normalized schema up to a target table",
	Long: `Build the normalized schema up to and including the target table
(default: OrderDetail, i.e. the whole chain). Prerequisite tables are
built first. An existing table is left untouched unless --rebuild is
given, in which case every table up to the target is rebuilt from the
raw source.

Example:
  orderbase build --source data.tsv --database normalized.db
  orderbase build Product --rebuild`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildRebuild, "rebuild", false,
		"force a fresh build of the chain up to the target table")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	table := normalize.TableOrderDetail
	if len(args) == 1 {
		table = args[0]
	}

	db, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	pipeline := normalize.New(db, cfg.Source)

	logging.Info().
		Str("source", cfg.Source).
		Str("database", cfg.Database).
		Str("table", table).
		Bool("rebuild", buildRebuild).
		Msg("Building normalized schema")

	if buildRebuild {
		return pipeline.Rebuild(ctx, table)
	}
	return pipeline.Ensure(ctx, table)
}
