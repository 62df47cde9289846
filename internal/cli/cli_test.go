package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pgEdge/pgedge-fooddata/internal/fooddata"
	"github.com/pgEdge/pgedge-fooddata/internal/tables"
)

// execute runs the root command with args and returns its output. Flag
// values are reset first since cobra keeps them between executions.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range []*cobra.Command{generateCmd, combineCmd, syncPricesCmd, tablesCmd} {
		c.Flags().VisitAll(reset)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func smallDataset(dir string, seed string) []string {
	return []string{
		"generate", "--seed", seed, "--output", dir,
		"--locations", "5", "--restaurants", "10", "--menu-items", "50",
		"--customers", "20", "--login-audits", "30", "--orders", "30",
		"--delivery-agents", "10",
	}
}

func TestGenerateWritesTables(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, smallDataset(dir, "7")...); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	m, err := fooddata.ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest failed: %v", err)
	}
	if m.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", m.Seed)
	}
	if len(m.Tables) != len(fooddata.TableColumns()) {
		t.Fatalf("Expected %d tables, got %d", len(fooddata.TableColumns()), len(m.Tables))
	}

	for _, mt := range m.Tables {
		header, records, err := tables.ReadFile(filepath.Join(dir, mt.File))
		if err != nil {
			t.Fatalf("ReadFile(%s) failed: %v", mt.File, err)
		}
		if len(records) != mt.Rows {
			t.Errorf("%s: manifest says %d rows, file has %d", mt.File, mt.Rows, len(records))
		}
		if len(header) == 0 {
			t.Errorf("%s: empty header", mt.File)
		}
	}

	// Same seed, same bytes
	again := t.TempDir()
	if _, err := execute(t, smallDataset(again, "7")...); err != nil {
		t.Fatalf("second generate failed: %v", err)
	}
	for _, mt := range m.Tables {
		a, _ := os.ReadFile(filepath.Join(dir, mt.File))
		b, _ := os.ReadFile(filepath.Join(again, mt.File))
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs with the same seed", mt.File)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad reference time", []string{"--reference-time", "yesterday"}},
		{"bad size", []string{"--size", "lots"}},
		{"zero seed", []string{"--seed", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(smallDataset(t.TempDir(), "3"), tt.args...)
			if _, err := execute(t, args...); err == nil {
				t.Error("Expected generate to fail")
			}
		})
	}
}

func TestTablesCommand(t *testing.T) {
	out, err := execute(t, "tables")
	if err != nil {
		t.Fatalf("tables failed: %v", err)
	}
	for _, want := range []string{"orders.csv", "customer_address.csv", "pricing_for_2", "Default size estimate"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "pgedge-fooddata") {
		t.Errorf("Unexpected version output %q", out)
	}
}

func TestCombineAndSyncPrices(t *testing.T) {
	dir := t.TempDir()
	header := []string{"MenuID", "ItemName", "Price"}
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	if err := tables.WriteRecords(a, header, [][]string{{"1", "Dal", "120"}, {"2", "Naan", "40"}}); err != nil {
		t.Fatal(err)
	}
	if err := tables.WriteRecords(b, header, [][]string{{"2", "Naan", "40"}, {"3", "Kheer", "90"}}); err != nil {
		t.Fatal(err)
	}

	combined := filepath.Join(dir, "menu.csv")
	if _, err := execute(t, "combine", a, b, "--output", combined); err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	_, records, err := tables.ReadFile(combined)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 combined rows, got %d", len(records))
	}

	updated := filepath.Join(dir, "updated.csv")
	if err := tables.WriteRecords(updated, header, [][]string{{"3", "Kheer", "110"}, {"9", "Lassi", "60"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "sync-prices", combined, updated); err != nil {
		t.Fatalf("sync-prices failed: %v", err)
	}
	_, records, err = tables.ReadFile(combined)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got := records[2][2]; got != "110" {
		t.Errorf("Expected Kheer price 110, got %s", got)
	}
	if got := records[0][2]; got != "120" {
		t.Errorf("Expected Dal price unchanged, got %s", got)
	}
}
