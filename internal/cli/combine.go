package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-fooddata/internal/logging"
	"github.com/pgEdge/pgedge-fooddata/internal/tables"
)

var combineOutput string

var combineCmd = &cobra.Command{
	Use:   "combine FILE...",
	Short: "Concatenate CSV files that share a header",
	Long: `Concatenate CSV files with identical headers into one file. Rows
that appear more than once are kept only the first time they are seen.

Example:
  pgedge-fooddata combine run1/orders.csv run2/orders.csv --output orders.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCombine,
}

var syncPricesCmd = &cobra.Command{
	Use:   "sync-prices MAIN UPDATED",
	Short: "Copy menu prices from an updated menu file",
	Long: `Copy the Price column of UPDATED into MAIN for every row with the
same MenuID, and rewrite MAIN in place. Rows present in only one of the
files are left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: runSyncPrices,
}

func init() {
	combineCmd.Flags().StringVarP(&combineOutput, "output", "o", "combined.csv",
		"output file")
}

func runCombine(cmd *cobra.Command, args []string) error {
	header, records, err := tables.Combine(args)
	if err != nil {
		return fmt.Errorf("failed to combine files: %w", err)
	}
	if err := tables.WriteRecords(combineOutput, header, records); err != nil {
		return fmt.Errorf("failed to write %s: %w", combineOutput, err)
	}

	logging.Info().
		Int("inputs", len(args)).
		Int("rows", len(records)).
		Str("output", combineOutput).
		Msg("Combined files")
	return nil
}

func runSyncPrices(cmd *cobra.Command, args []string) error {
	changed, err := tables.SyncColumn(args[0], args[1], "MenuID", "Price")
	if err != nil {
		return fmt.Errorf("failed to sync prices: %w", err)
	}

	logging.Info().
		Str("file", args[0]).
		Int("changed", changed).
		Msg("Synced prices")
	return nil
}
