package tables

import (
	"fmt"
	"slices"
	"strings"
)

// Combine concatenates CSV files that share a header, keeping the first
// occurrence of each distinct row.
func Combine(paths []string) ([]string, [][]string, error) {
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no input files")
	}

	var header []string
	var out [][]string
	seen := make(map[string]struct{})

	for _, p := range paths {
		h, records, err := ReadFile(p)
		if err != nil {
			return nil, nil, err
		}
		if header == nil {
			header = h
		} else if !slices.Equal(header, h) {
			return nil, nil, fmt.Errorf("%s: header %v does not match %v", p, h, header)
		}

		for _, rec := range records {
			// Unit separator cannot appear in generated text.
			key := strings.Join(rec, "\x1f")
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, rec)
		}
	}
	return header, out, nil
}

// SyncColumn copies column from the rows of updatedPath into the rows of
// mainPath that share the same key value, and rewrites mainPath. Rows only
// present in one file are left alone. It returns the number of main rows
// whose value changed.
func SyncColumn(mainPath, updatedPath, key, column string) (int, error) {
	mainHeader, mainRows, err := ReadFile(mainPath)
	if err != nil {
		return 0, err
	}
	updHeader, updRows, err := ReadFile(updatedPath)
	if err != nil {
		return 0, err
	}

	mainKey, mainCol := slices.Index(mainHeader, key), slices.Index(mainHeader, column)
	updKey, updCol := slices.Index(updHeader, key), slices.Index(updHeader, column)
	if mainKey < 0 || mainCol < 0 {
		return 0, fmt.Errorf("%s: missing %s or %s column", mainPath, key, column)
	}
	if updKey < 0 || updCol < 0 {
		return 0, fmt.Errorf("%s: missing %s or %s column", updatedPath, key, column)
	}

	updates := make(map[string]string, len(updRows))
	for _, rec := range updRows {
		updates[rec[updKey]] = rec[updCol]
	}

	changed := 0
	for _, rec := range mainRows {
		v, ok := updates[rec[mainKey]]
		if ok && rec[mainCol] != v {
			rec[mainCol] = v
			changed++
		}
	}

	if err := WriteRecords(mainPath, mainHeader, mainRows); err != nil {
		return 0, fmt.Errorf("failed to rewrite %s: %w", mainPath, err)
	}
	return changed, nil
}
