// Package usage implements the AI usage log using PostgreSQL.
package usage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sthacker-ai/NexusLog/internal/adapter/postgres"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Repo provides usage log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const recordSQL = `
INSERT INTO usage_logs (provider, model, feature, input_tokens, output_tokens, cost_usd, details)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Record appends one usage row.
func (r *Repo) Record(ctx context.Context, rec domain.UsageRecord) error {
	details := rec.Details
	if details == nil {
		details = map[string]any{}
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode usage details: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err = querier.Exec(ctx, recordSQL,
		rec.Provider, rec.Model, rec.Feature, rec.InputTokens, rec.OutputTokens, rec.CostUSD, detailsJSON)
	if err != nil {
		return postgres.MapError(err, "usage record", rec.Feature)
	}

	return nil
}
