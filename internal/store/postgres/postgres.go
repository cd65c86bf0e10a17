// Package postgres implements the catalog store on a single-row jsonb table,
// keeping the same load/save contract as the file driver so either can sit
// behind the catalog service.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"chapterhub/internal/domain"
	"chapterhub/internal/store"
)

type pgStore struct {
	DB     *sql.DB
	logger *slog.Logger
}

// NewStore returns a CatalogStore backed by the catalog table.
func NewStore(db *sql.DB, logger *slog.Logger) domain.CatalogStore {
	return &pgStore{DB: db, logger: logger}
}

// EnsureSchema creates the catalog table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS catalog (
			id   int PRIMARY KEY CHECK (id = 1),
			data jsonb NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}
	return nil
}

// Load reads the blob row. A missing row or an undecodable blob yields the
// seed catalog; only query failures are returned as errors.
func (s *pgStore) Load(ctx context.Context) (*domain.Catalog, error) {
	query := `
		SELECT data FROM catalog WHERE id = 1
	`
	var raw []byte
	err := s.DB.QueryRowContext(ctx, query).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Seed(), nil
		}
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		s.logger.Warn("catalog row corrupt, using seed data", "err", err)
		return store.Seed(), nil
	}
	return &catalog, nil
}

// Save upserts the whole catalog into the single blob row.
func (s *pgStore) Save(ctx context.Context, catalog *domain.Catalog) error {
	raw, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	query := `
		INSERT INTO catalog (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data
	`
	if _, err := s.DB.ExecContext(ctx, query, raw); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
