//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package tables

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/pgEdge/pgedge-fooddata/internal/logging"
)

// FileInfo describes one written table file.
type FileInfo struct {
	Table string
	Path  string
	Rows  int
	Bytes int64
}

// WriteCSV writes the header row followed by every record.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write %s header: %w", t.Name, err)
	}
	if err := cw.WriteAll(t.Records()); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", t.Name, err)
	}
	return nil
}

// WriteFile writes t to <dir>/<name>.csv, replacing any existing file.
func WriteFile(dir string, t Table) (FileInfo, error) {
	path := filepath.Join(dir, t.Name+".csv")

	err := replaceFile(path, func(w io.Writer) error {
		return WriteCSV(w, t)
	})
	if err != nil {
		return FileInfo{}, err
	}

	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{Table: t.Name, Path: path, Rows: len(t.Rows), Bytes: st.Size()}, nil
}

// WriteAll writes every table to its own file in dir, one goroutine per
// file. The returned infos are in the same order as tbls.
func WriteAll(ctx context.Context, dir string, tbls []Table) ([]FileInfo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	infos := make([]FileInfo, len(tbls))
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range tbls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := WriteFile(dir, t)
			if err != nil {
				return err
			}
			infos[i] = info
			logging.Debug().
				Str("table", t.Name).
				Str("path", info.Path).
				Int("rows", info.Rows).
				Msg("Wrote table")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// ReadFile reads a CSV file and splits off its header row.
func ReadFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s has no header row", path)
	}
	return records[0], records[1:], nil
}

// WriteRecords writes a header and text records to path.
// An existing file at path is only replaced once the new one is complete.
func WriteRecords(path string, header []string, records [][]string) error {
	return replaceFile(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		return cw.WriteAll(records)
	})
}

// replaceFile writes a temporary file next to path and renames it over
// path once write and close succeed. On failure path is left untouched.
func replaceFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
