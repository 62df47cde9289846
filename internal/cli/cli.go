//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pgedge-fooddata.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-fooddata/internal/config"
	"github.com/pgEdge/pgedge-fooddata/internal/fooddata"
	"github.com/pgEdge/pgedge-fooddata/internal/logging"
	"github.com/pgEdge/pgedge-fooddata/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
	seed     uint64

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pgedge-fooddata",
		Short: "Synthetic food delivery dataset generator",
		Long: `pgedge-fooddata generates a synthetic, referentially consistent
food delivery dataset: locations, restaurants, menus, customers and their
addresses, login history, orders with line items, delivery agents and
deliveries.

Every table is written as a CSV file. The same seed and reference time
always produce the same dataset, and the dataset can optionally be
bulk-loaded into PostgreSQL.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
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
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pgedge-fooddata.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"random seed; equal seeds produce equal datasets")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(syncPricesCmd)
}

func initConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
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

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List generated tables and their columns",
	Long: `List every table the generator writes, in load order, with the
CSV header of each file and the matching PostgreSQL column names.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Generated tables (load order):")
		cmd.Println()
		for _, t := range fooddata.TableColumns() {
			cmd.Printf("  %s.csv\n", t.Name)
			cmd.Printf("    header:  %s\n", strings.Join(t.Columns, ", "))
			cmd.Printf("    columns: %s\n", strings.Join(t.SQLColumns(), ", "))
		}
		cmd.Println()
		cmd.Printf("Default size estimate: %s\n",
			fooddata.EstimateSize(config.DefaultConfig().Entities))
	},
}
