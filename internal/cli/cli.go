// Package cli implements the command-line interface for orderbase.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/blaze-oss/orderbase/internal/config"
	"github.com/blaze-oss/orderbase/internal/logging"
	"github.com/blaze-oss/orderbase/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	source   string
	database string
	logLevel string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "orderbase",
		Short: "Normalize denormalized order data and run analytical reports",
		Long: `orderbase ingests a tab-delimited order file (one row per customer,
with semicolon-packed multi-value order fields) into a normalized SQLite
schema, and exposes a catalogue of analytical reports over it.

Tables are built along a fixed dependency chain (Region, Country,
Customer, ProductCategory, Product, OrderDetail); each builder derives
its rows from the raw source, assigns deterministic surrogate keys, and
replaces its table wholesale. A flattened copy of the same source can
also be bulk-loaded into a PostgreSQL warehouse.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./orderbase.yaml)")
	rootCmd.PersistentFlags().StringVar(&source, "source", "",
		"raw tab-delimited order data file")
	rootCmd.PersistentFlags().StringVar(&database, "database", "",
		"normalized SQLite database file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(genCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if source != "" {
		cfg.Source = source
	}
	if database != "" {
		cfg.Database = database
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
