// Package datagen provides data generation utilities for pgedge-fooddata.
package datagen

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pgEdge/pgedge-fooddata/internal/logging"
)

// DefaultProgressInterval is how many rows pass between progress lines.
const DefaultProgressInterval = 100000

// ProgressReporter tracks and reports data generation progress.
type ProgressReporter struct {
	log              *zerolog.Logger
	totalRows        int64
	currentRow       int64
	skippedRows      int64
	progressInterval int64
}

// NewProgressReporter creates a new progress reporter.
func NewProgressReporter(tableName string, totalRows int64, interval int64) *ProgressReporter {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &ProgressReporter{
		log:              logging.Table(tableName),
		totalRows:        totalRows,
		progressInterval: interval,
	}
}

// Update updates the progress and logs if necessary.
func (p *ProgressReporter) Update(rows int64) {
	oldRow := p.currentRow
	p.currentRow += rows

	// Check if we crossed a progress interval
	if p.currentRow/p.progressInterval > oldRow/p.progressInterval {
		pct := 0.0
		if p.totalRows > 0 {
			pct = float64(p.currentRow) / float64(p.totalRows) * 100
		}
		p.log.Info().
			Int64("rows", p.currentRow).
			Int64("total", p.totalRows).
			Float64("percent", pct).
			Msg("Generating data")
	}
}

// Skip records a row that was not produced, usually because its parent
// set was empty.
func (p *ProgressReporter) Skip(reason string) {
	p.skippedRows++
	p.log.Debug().Str("reason", reason).Msg("Skipped row")
}

// Rows returns the number of rows produced so far.
func (p *ProgressReporter) Rows() int64 {
	return p.currentRow
}

// Skipped returns the number of rows skipped so far.
func (p *ProgressReporter) Skipped() int64 {
	return p.skippedRows
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	ev := p.log.Info().
		Int64("rows", p.currentRow)
	if p.skippedRows > 0 {
		ev = ev.Int64("skipped", p.skippedRows)
	}
	ev.Msg("Table complete")
}

// SizeCalculator helps calculate row counts based on target size.
type SizeCalculator struct {
	tables []TableSizeInfo
}

// TableSizeInfo holds size information for a table.
type TableSizeInfo struct {
	Name        string
	BaseRowSize int64   // Average encoded row size in bytes
	ScaleRatio  float64 // Rows per scale unit
	Fixed       bool    // Row count does not scale (reference data)
}

// NewSizeCalculator creates a new size calculator.
func NewSizeCalculator(tables []TableSizeInfo) *SizeCalculator {
	return &SizeCalculator{tables: tables}
}

// CalculateRowCounts calculates row counts for each table given a target size.
func (c *SizeCalculator) CalculateRowCounts(targetSize int64) map[string]int64 {
	var sizePerUnit, fixedSize float64
	for _, t := range c.tables {
		size := float64(t.BaseRowSize) * t.ScaleRatio
		if t.Fixed {
			fixedSize += size
		} else {
			sizePerUnit += size
		}
	}

	rowCounts := make(map[string]int64)
	if sizePerUnit == 0 {
		return rowCounts
	}

	scaleFactor := (float64(targetSize) - fixedSize) / sizePerUnit
	if scaleFactor < 0 {
		scaleFactor = 0
	}

	for _, t := range c.tables {
		rows := int64(t.ScaleRatio)
		if !t.Fixed {
			rows = int64(scaleFactor * t.ScaleRatio)
		}
		if rows < 1 {
			rows = 1
		}
		rowCounts[t.Name] = rows
	}

	return rowCounts
}

// EstimatedSize returns the estimated size for given row counts.
func (c *SizeCalculator) EstimatedSize(rowCounts map[string]int64) int64 {
	var total int64
	for _, t := range c.tables {
		total += rowCounts[t.Name] * t.BaseRowSize
	}
	return total
}

// FormatSize formats a byte count as a human-readable string.
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// ParseSize converts a size string (e.g., "5GB", "500MB") to bytes.
func ParseSize(s string) (int64, error) {
	var value float64
	var unit string

	_, err := fmt.Sscanf(s, "%f%s", &value, &unit)
	if err != nil {
		return 0, fmt.Errorf("invalid size format: %s", s)
	}
	if value <= 0 {
		return 0, fmt.Errorf("size must be positive: %s", s)
	}

	var multiplier int64
	switch unit {
	case "B", "b":
		multiplier = 1
	case "KB", "kb", "K", "k":
		multiplier = 1024
	case "MB", "mb", "M", "m":
		multiplier = 1024 * 1024
	case "GB", "gb", "G", "g":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown size unit: %s", unit)
	}

	return int64(value * float64(multiplier)), nil
}
