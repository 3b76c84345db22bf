// Package config handles configuration management for orderbase.
// Configuration is loaded from config files and CLI flags; CLI flags
// take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for orderbase.
type Config struct {
	// Source is the path to the raw tab-delimited order data.
	Source string `mapstructure:"source"`

	// Database is the path to the normalized SQLite database file.
	Database string `mapstructure:"database"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Warehouse holds configuration for the upload subcommand.
	Warehouse WarehouseConfig `mapstructure:"warehouse"`

	// Gen holds configuration for the gen subcommand.
	Gen GenConfig `mapstructure:"gen"`
}

// WarehouseConfig holds configuration for the warehouse upload.
type WarehouseConfig struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`
}

// GenConfig holds configuration for synthetic data generation.
type GenConfig struct {
	// Customers is the number of customers to generate.
	Customers int `mapstructure:"customers"`

	// Seed makes the generated data reproducible.
	Seed uint64 `mapstructure:"seed"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Source:   "data.tsv",
		Database: "normalized.db",
		LogLevel: "info",
		Gen: GenConfig{
			Customers: 50,
			Seed:      1,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./orderbase.yaml
// 3. ~/.config/orderbase/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("orderbase")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "orderbase"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source file is required")
	}
	if c.Database == "" {
		return fmt.Errorf("database path is required")
	}
	return nil
}

// ValidateUpload checks configuration required for the upload command.
func (c *Config) ValidateUpload() error {
	if c.Source == "" {
		return fmt.Errorf("source file is required")
	}
	if c.Warehouse.Connection == "" {
		return fmt.Errorf("warehouse connection string is required")
	}
	return nil
}

// ValidateGen checks configuration required for the gen command.
func (c *Config) ValidateGen() error {
	if c.Source == "" {
		return fmt.Errorf("source file is required")
	}
	if c.Gen.Customers < 1 {
		return fmt.Errorf("customers must be at least 1")
	}
	return nil
}
