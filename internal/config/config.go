//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-fooddata.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pgEdge/pgedge-fooddata/internal/logging"
)

// DefaultReferenceTime anchors every generated date. It is fixed rather than
// taken from the wall clock so two runs with the same seed match.
const DefaultReferenceTime = "2026-01-01T00:00:00Z"

var validate = validator.New()

// Config holds all configuration for pgedge-fooddata.
type Config struct {
	// Seed drives the random source; equal seeds give equal datasets.
	// Zero is rejected since the faker treats it as "pick a random seed".
	Seed uint64 `mapstructure:"seed" validate:"required"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is "console" or "json".
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`

	// OutputDir receives one CSV file per table plus manifest.json.
	OutputDir string `mapstructure:"output_dir" validate:"required"`

	// ReferenceTime is the RFC 3339 "now" all dates are generated against.
	ReferenceTime string `mapstructure:"reference_time" validate:"required"`

	// Size optionally derives entity counts from a target output size (e.g. "50MB").
	Size string `mapstructure:"size"`

	// Entities holds the id range of every table.
	Entities EntitiesConfig `mapstructure:"entities"`

	// Limits bounds the per-parent fan-out of child tables.
	Limits LimitsConfig `mapstructure:"limits"`

	// Load holds configuration for the optional PostgreSQL sink.
	Load LoadConfig `mapstructure:"load"`
}

// IDRange is a half-open id range [StartID, EndID).
type IDRange struct {
	StartID int64 `mapstructure:"start_id" validate:"gte=1"`
	EndID   int64 `mapstructure:"end_id" validate:"gte=1"`
}

// Count returns the number of ids in the range.
func (r IDRange) Count() int64 {
	if r.EndID < r.StartID {
		return 0
	}
	return r.EndID - r.StartID
}

// WithCount returns the range resized to hold n ids.
func (r IDRange) WithCount(n int64) IDRange {
	return IDRange{StartID: r.StartID, EndID: r.StartID + n}
}

// EntitiesConfig holds id ranges for tables with a configured size and the
// first id for tables whose size is derived from their parents.
type EntitiesConfig struct {
	Locations      IDRange `mapstructure:"locations"`
	Restaurants    IDRange `mapstructure:"restaurants"`
	MenuItems      IDRange `mapstructure:"menu_items"`
	Customers      IDRange `mapstructure:"customers"`
	LoginAudits    IDRange `mapstructure:"login_audits"`
	Orders         IDRange `mapstructure:"orders"`
	DeliveryAgents IDRange `mapstructure:"delivery_agents"`

	AddressStartID   int64 `mapstructure:"address_start_id" validate:"gte=1"`
	OrderItemStartID int64 `mapstructure:"order_item_start_id" validate:"gte=1"`
	DeliveryStartID  int64 `mapstructure:"delivery_start_id" validate:"gte=1"`
}

// LimitsConfig bounds child record generation.
type LimitsConfig struct {
	MaxAddressesPerCustomer int  `mapstructure:"max_addresses_per_customer" validate:"gte=1"`
	MaxItemsPerOrder        int  `mapstructure:"max_items_per_order" validate:"gte=1"`
	MaxQuantity             int  `mapstructure:"max_quantity" validate:"gte=1"`
	OrderWindowDays         int  `mapstructure:"order_window_days" validate:"gte=1"`
	CityMatchedOrders       bool `mapstructure:"city_matched_orders"`
}

// LoadConfig holds configuration for loading the dataset into PostgreSQL.
type LoadConfig struct {
	// Connection is the PostgreSQL connection string; empty disables loading.
	Connection string `mapstructure:"connection"`

	// DropExisting drops existing tables before loading.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Seed:          42,
		LogLevel:      "info",
		LogFormat:     "console",
		OutputDir:     "data",
		ReferenceTime: DefaultReferenceTime,
		Entities: EntitiesConfig{
			Locations:        IDRange{StartID: 1, EndID: 31},
			Restaurants:      IDRange{StartID: 1, EndID: 101},
			MenuItems:        IDRange{StartID: 1, EndID: 1001},
			Customers:        IDRange{StartID: 1, EndID: 201},
			LoginAudits:      IDRange{StartID: 1, EndID: 501},
			Orders:           IDRange{StartID: 1, EndID: 1001},
			DeliveryAgents:   IDRange{StartID: 1, EndID: 151},
			AddressStartID:   1,
			OrderItemStartID: 1,
			DeliveryStartID:  1,
		},
		Limits: LimitsConfig{
			MaxAddressesPerCustomer: 4,
			MaxItemsPerOrder:        5,
			MaxQuantity:             3,
			OrderWindowDays:         90,
			CityMatchedOrders:       true,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-fooddata.yaml
// 3. ~/.config/pgedge-fooddata/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-fooddata")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-fooddata"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Reference parses ReferenceTime, truncated to whole seconds.
func (c *Config) Reference() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, c.ReferenceTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("reference_time must be RFC 3339: %w", err)
	}
	return t.UTC().Truncate(time.Second), nil
}

// Validate rejects contradictory configuration before any data is generated.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if _, err := c.Reference(); err != nil {
		return err
	}

	ranges := []struct {
		name string
		r    IDRange
	}{
		{"locations", c.Entities.Locations},
		{"restaurants", c.Entities.Restaurants},
		{"menu_items", c.Entities.MenuItems},
		{"customers", c.Entities.Customers},
		{"login_audits", c.Entities.LoginAudits},
		{"orders", c.Entities.Orders},
		{"delivery_agents", c.Entities.DeliveryAgents},
	}
	for _, e := range ranges {
		if e.r.EndID < e.r.StartID {
			return fmt.Errorf("entities.%s: end_id %d is before start_id %d",
				e.name, e.r.EndID, e.r.StartID)
		}
	}
	return nil
}
