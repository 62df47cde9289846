package datagen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pgEdge/pgedge-fooddata/internal/logging"
)

func TestProgressReporter(t *testing.T) {
	p := NewProgressReporter("orders", 10, 0)
	if p.progressInterval != DefaultProgressInterval {
		t.Errorf("Expected default interval, got %d", p.progressInterval)
	}

	p.Update(3)
	p.Update(4)
	p.Skip("no parent")
	p.Skip("no parent")

	if p.Rows() != 7 {
		t.Errorf("Expected 7 rows, got %d", p.Rows())
	}
	if p.Skipped() != 2 {
		t.Errorf("Expected 2 skipped, got %d", p.Skipped())
	}
	p.Done()
}

func TestProgressReporterLogsTable(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "debug", Format: "json", Out: &buf})
	defer logging.Init(logging.DefaultConfig())

	p := NewProgressReporter("delivery", 2, 1)
	p.Update(1)
	p.Skip("no active agent")
	p.Done()

	out := buf.String()
	for _, want := range []string{`"table":"delivery"`, `"reason":"no active agent"`, `"skipped":1`, "Table complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %s:\n%s", want, out)
		}
	}
}

func TestSizeCalculator(t *testing.T) {
	calc := NewSizeCalculator([]TableSizeInfo{
		{Name: "location", BaseRowSize: 100, ScaleRatio: 30, Fixed: true},
		{Name: "customer", BaseRowSize: 200, ScaleRatio: 10},
		{Name: "orders", BaseRowSize: 100, ScaleRatio: 50},
	})

	// fixed = 3000 bytes, per unit = 2000 + 5000 = 7000 bytes
	counts := calc.CalculateRowCounts(3000 + 7000*4)
	if counts["location"] != 30 {
		t.Errorf("Fixed table should keep its rows, got %d", counts["location"])
	}
	if counts["customer"] != 40 {
		t.Errorf("Expected 40 customers, got %d", counts["customer"])
	}
	if counts["orders"] != 200 {
		t.Errorf("Expected 200 orders, got %d", counts["orders"])
	}
	if got := calc.EstimatedSize(counts); got != 31000 {
		t.Errorf("Expected estimated size 31000, got %d", got)
	}

	tiny := calc.CalculateRowCounts(10)
	if tiny["customer"] != 1 || tiny["orders"] != 1 {
		t.Errorf("Scaled tables should keep at least one row: %v", tiny)
	}
}

func TestSizeCalculatorEmpty(t *testing.T) {
	calc := NewSizeCalculator(nil)
	if counts := calc.CalculateRowCounts(1 << 20); len(counts) != 0 {
		t.Errorf("Expected no counts, got %v", counts)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"100B", 100, false},
		{"2KB", 2048, false},
		{"50MB", 50 * 1024 * 1024, false},
		{"1.5GB", 1536 * 1024 * 1024, false},
		{"10", 0, true},
		{"abc", 0, true},
		{"5XB", 0, true},
		{"0MB", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
