package fooddata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pgEdge/pgedge-fooddata/internal/tables"
	"github.com/pgEdge/pgedge-fooddata/pkg/version"
)

// ManifestFile is written next to the table files.
const ManifestFile = "manifest.json"

// datasetNamespace scopes dataset ids so they never collide with other
// name-based UUIDs.
var datasetNamespace = uuid.MustParse("8d1e5f3a-6c0b-4f7e-9a52-2b7d4c1e9f60")

// DatasetID derives a stable id from everything that determines the data,
// including the generator version.
func DatasetID(seed uint64, params Params) uuid.UUID {
	return uuid.NewSHA1(datasetNamespace,
		fmt.Appendf(nil, "version=%s seed=%d %s", version.Version, seed, params))
}

// ManifestTable describes one written table.
type ManifestTable struct {
	Name  string `json:"name"`
	File  string `json:"file"`
	Rows  int    `json:"rows"`
	Bytes int64  `json:"bytes"`
}

// Manifest describes a written dataset.
type Manifest struct {
	DatasetID     string          `json:"dataset_id"`
	Tool          string          `json:"tool"`
	Version       string          `json:"version"`
	Seed          uint64          `json:"seed"`
	ReferenceTime string          `json:"reference_time"`
	Tables        []ManifestTable `json:"tables"`
}

// NewManifest builds the manifest of the files written for one run.
func NewManifest(seed uint64, params Params, files []tables.FileInfo) Manifest {
	m := Manifest{
		DatasetID:     DatasetID(seed, params).String(),
		Tool:          version.Name,
		Version:       version.Version,
		Seed:          seed,
		ReferenceTime: params.Reference.Format(time.RFC3339),
		Tables:        make([]ManifestTable, len(files)),
	}
	for i, f := range files {
		m.Tables[i] = ManifestTable{
			Name:  f.Table,
			File:  filepath.Base(f.Path),
			Rows:  f.Rows,
			Bytes: f.Bytes,
		}
	}
	return m
}

// Write stores the manifest as indented JSON in dir.
func (m Manifest) Write(dir string) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

// ReadManifest loads a manifest written by Write.
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}
