// Package setting implements the key/value Setting repository using PostgreSQL.
package setting

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sthacker-ai/NexusLog/internal/adapter/postgres"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Repo provides setting persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new setting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listSQL = `SELECT key, value, updated_at FROM settings ORDER BY key`

const upsertSQL = `
INSERT INTO settings (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
RETURNING key, value, updated_at`

// List returns all settings ordered by key.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Setting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	settings := []domain.Setting{}
	for rows.Next() {
		var (
			s         domain.Setting
			value     []byte
			updatedAt time.Time
		)
		if err := rows.Scan(&s.Key, &value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		s.Value = value
		s.UpdatedAt = updatedAt.UTC()
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	return settings, nil
}

// Upsert stores value under key, replacing any previous value.
// Returns domain.ErrValidation if value is not valid JSON.
func (r *Repo) Upsert(ctx context.Context, key string, value []byte) (*domain.Setting, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		s         domain.Setting
		stored    []byte
		updatedAt time.Time
	)
	if err := querier.QueryRow(ctx, upsertSQL, key, value).Scan(&s.Key, &stored, &updatedAt); err != nil {
		return nil, postgres.MapError(err, "setting", key)
	}

	s.Value = stored
	s.UpdatedAt = updatedAt.UTC()

	return &s, nil
}
