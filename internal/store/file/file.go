// Package file implements the catalog store as a single JSON file. Every
// save rewrites the whole blob; a missing or corrupt blob is replaced by the
// seed catalog on load.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"chapterhub/internal/domain"
	"chapterhub/internal/store"
)

type fileStore struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a CatalogStore backed by the JSON file at path.
func NewStore(path string, logger *slog.Logger) domain.CatalogStore {
	return &fileStore{path: path, logger: logger}
}

// Load reads and decodes the catalog file. Read and decode failures are not
// errors: the caller gets the seed catalog and the failure is logged at warn.
func (s *fileStore) Load(_ context.Context) (*domain.Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("catalog file unreadable, using seed data", "path", s.path, "err", err)
		}
		return store.Seed(), nil
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		s.logger.Warn("catalog file corrupt, using seed data", "path", s.path, "err", err)
		return store.Seed(), nil
	}
	return &catalog, nil
}

// Save writes the whole catalog, replacing the previous blob. The write goes
// through a temp file and rename so a crash mid-write cannot corrupt the blob.
func (s *fileStore) Save(_ context.Context, catalog *domain.Catalog) error {
	raw, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace catalog file: %w", err)
	}
	return nil
}
