package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-fooddata/internal/config"
	"github.com/pgEdge/pgedge-fooddata/internal/datagen"
	"github.com/pgEdge/pgedge-fooddata/internal/db"
	"github.com/pgEdge/pgedge-fooddata/internal/fooddata"
	"github.com/pgEdge/pgedge-fooddata/internal/logging"
	"github.com/pgEdge/pgedge-fooddata/internal/tables"
)

var (
	genOutput         string
	genSize           string
	genReferenceTime  string
	genNoCityMatch    bool
	genConnection     string
	genDropExisting   bool
	genLocations      int64
	genRestaurants    int64
	genMenuItems      int64
	genCustomers      int64
	genLoginAudits    int64
	genOrders         int64
	genDeliveryAgents int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and write it as CSV files",
	Long: `Generate every table, check the dataset's referential integrity and
write one CSV file per table plus a manifest.json to the output directory.

Entity counts come from the config file, per-entity flags, or a target
output size. With --connection the dataset is also loaded into PostgreSQL.

Example:
  pgedge-fooddata generate --seed 7 --size 50MB --output ./data
  pgedge-fooddata generate --orders 5000 --connection "postgres://..."`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genOutput, "output", "",
		"output directory (default: ./data)")
	generateCmd.Flags().StringVar(&genSize, "size", "",
		"target output size (e.g., 50MB, 1GB); overrides entity counts")
	generateCmd.Flags().StringVar(&genReferenceTime, "reference-time", "",
		"RFC 3339 time all dates are generated against")
	generateCmd.Flags().BoolVar(&genNoCityMatch, "no-city-match", false,
		"allow orders from restaurants outside the customer's cities")
	generateCmd.Flags().StringVar(&genConnection, "connection", "",
		"PostgreSQL connection string; when set the dataset is loaded")
	generateCmd.Flags().BoolVar(&genDropExisting, "drop-existing", false,
		"drop existing tables before loading")

	generateCmd.Flags().Int64Var(&genLocations, "locations", 0, "number of locations")
	generateCmd.Flags().Int64Var(&genRestaurants, "restaurants", 0, "number of restaurants")
	generateCmd.Flags().Int64Var(&genMenuItems, "menu-items", 0, "number of menu items")
	generateCmd.Flags().Int64Var(&genCustomers, "customers", 0, "number of customers")
	generateCmd.Flags().Int64Var(&genLoginAudits, "login-audits", 0, "number of login events")
	generateCmd.Flags().Int64Var(&genOrders, "orders", 0, "number of order attempts")
	generateCmd.Flags().Int64Var(&genDeliveryAgents, "delivery-agents", 0, "number of delivery agents")
}

// applyGenerateFlags overrides cfg with every generate flag that was set.
func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	if genOutput != "" {
		cfg.OutputDir = genOutput
	}
	if genSize != "" {
		cfg.Size = genSize
	}
	if genReferenceTime != "" {
		cfg.ReferenceTime = genReferenceTime
	}
	if genNoCityMatch {
		cfg.Limits.CityMatchedOrders = false
	}
	if genConnection != "" {
		cfg.Load.Connection = genConnection
	}
	if genDropExisting {
		cfg.Load.DropExisting = true
	}

	counts := []struct {
		flag  string
		value int64
		r     *config.IDRange
	}{
		{"locations", genLocations, &cfg.Entities.Locations},
		{"restaurants", genRestaurants, &cfg.Entities.Restaurants},
		{"menu-items", genMenuItems, &cfg.Entities.MenuItems},
		{"customers", genCustomers, &cfg.Entities.Customers},
		{"login-audits", genLoginAudits, &cfg.Entities.LoginAudits},
		{"orders", genOrders, &cfg.Entities.Orders},
		{"delivery-agents", genDeliveryAgents, &cfg.Entities.DeliveryAgents},
	}
	for _, c := range counts {
		if cmd.Flags().Changed(c.flag) {
			*c.r = c.r.WithCount(c.value)
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	applyGenerateFlags(cmd, cfg)

	if cfg.Size != "" {
		targetBytes, err := datagen.ParseSize(cfg.Size)
		if err != nil {
			return fmt.Errorf("invalid size: %w", err)
		}
		cfg.Entities = fooddata.ScaleToSize(cfg.Entities, targetBytes)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return err
	}

	params, err := fooddata.ParamsFromConfig(cfg)
	if err != nil {
		return err
	}

	logging.Info().
		Uint64("seed", cfg.Seed).
		Str("reference_time", cfg.ReferenceTime).
		Str("estimated_size", fooddata.EstimateSize(cfg.Entities)).
		Msg("Generating dataset")

	start := time.Now()
	dataset, err := fooddata.NewGenerator(datagen.NewFaker(cfg.Seed), params).Generate()
	if err != nil {
		return fmt.Errorf("failed to generate data: %w", err)
	}
	if err := dataset.Verify(); err != nil {
		return fmt.Errorf("generated dataset failed integrity checks: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tbls := dataset.Tables()
	files, err := tables.WriteAll(ctx, cfg.OutputDir, tbls)
	if err != nil {
		return fmt.Errorf("failed to write tables: %w", err)
	}

	manifest := fooddata.NewManifest(cfg.Seed, params, files)
	manifestPath, err := manifest.Write(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	var totalBytes int64
	for _, f := range files {
		totalBytes += f.Bytes
	}
	logging.Info().
		Str("dataset_id", manifest.DatasetID).
		Str("manifest", manifestPath).
		Str("size", datagen.FormatSize(totalBytes)).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset written")

	if cfg.Load.Connection == "" {
		return nil
	}
	return loadDataset(ctx, tbls, manifest)
}

// loadDataset creates the schema and copies every table into PostgreSQL.
func loadDataset(ctx context.Context, tbls []tables.Table, manifest fooddata.Manifest) error {
	pool, err := db.Connect(ctx, cfg.Load.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := prepareSchema(ctx, pool, manifest.DatasetID); err != nil {
		return err
	}

	rows, err := db.CopyTables(ctx, pool, tbls)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	md := db.Metadata{
		DatasetID:     manifest.DatasetID,
		Seed:          manifest.Seed,
		ReferenceTime: manifest.ReferenceTime,
	}
	if err := db.SaveMetadata(ctx, pool, md); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	logging.Info().
		Str("dataset_id", manifest.DatasetID).
		Int64("rows", rows).
		Msg("Database load complete")
	return nil
}

func prepareSchema(ctx context.Context, pool *pgxpool.Pool, datasetID string) error {
	// Refuse to mix two datasets in one database
	existing, err := db.GetMetadataValue(ctx, pool, "dataset_id")
	if err == nil && existing != "" && !cfg.Load.DropExisting {
		return fmt.Errorf(
			"database already holds dataset %s (loading %s); "+
				"use --drop-existing to replace it",
			existing, datasetID)
	}

	if cfg.Load.DropExisting {
		if existing != "" && existing != datasetID {
			logging.Warn().
				Str("existing_dataset", existing).
				Str("new_dataset", datasetID).
				Msg("Replacing existing dataset")
		}
		logging.Info().Msg("Dropping existing tables")
		if err := fooddata.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	logging.Info().Msg("Creating schema")
	if err := fooddata.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
