// Package idea implements the ContentIdea repository using PostgreSQL.
// output_types is stored as a JSON array so list filters can use jsonb
// containment.
package idea

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sthacker-ai/NexusLog/internal/adapter/postgres"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides content idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const ideaColumns = `id, entry_id, title, idea_description, ai_prompt, output_types, status, created_at, updated_at`

const getByIDSQL = `
SELECT ` + ideaColumns + `
FROM content_ideas
WHERE id = $1`

const listByEntryIDsSQL = `
SELECT ` + ideaColumns + `
FROM content_ideas
WHERE entry_id = ANY($1::uuid[])
ORDER BY entry_id, created_at`

const createSQL = `
INSERT INTO content_ideas (entry_id, title, idea_description, ai_prompt, output_types, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + ideaColumns

const updateSQL = `
UPDATE content_ideas
SET status = COALESCE($2, status),
    output_types = COALESCE($3, output_types),
    updated_at = now()
WHERE id = $1
RETURNING ` + ideaColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a content idea by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentIdea, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	idea, err := scanIdea(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "content idea", id)
	}

	return &idea, nil
}

// List returns content ideas newest first. An output type filter matches
// ideas whose output_types array contains it.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.IdeaFilter) ([]domain.ContentIdea, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := max(filter.Offset, 0)

	b := psql.Select(ideaColumns).From("content_ideas")
	if filter.OutputType != nil {
		contains, err := json.Marshal([]string{string(*filter.OutputType)})
		if err != nil {
			return nil, fmt.Errorf("encode output type filter: %w", err)
		}
		b = b.Where("output_types @> ?::jsonb", contains)
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := b.OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ideas query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	result, err := scanIdeas(rows)
	if err != nil {
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	return result, nil
}

// ListByEntryIDs returns the ideas of several entries at once.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]domain.ContentIdea, error) {
	if len(entryIDs) == 0 {
		return []domain.ContentIdea{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByEntryIDsSQL, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("list ideas by entry_ids: %w", err)
	}

	result, err := scanIdeas(rows)
	if err != nil {
		return nil, fmt.Errorf("list ideas by entry_ids: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a content idea. An empty status becomes "idea".
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Create(ctx context.Context, idea *domain.ContentIdea) (*domain.ContentIdea, error) {
	types, err := encodeOutputTypes(idea.OutputTypes)
	if err != nil {
		return nil, err
	}

	status := idea.Status
	if status == "" {
		status = domain.IdeaStatusIdea
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanIdea(querier.QueryRow(ctx, createSQL,
		idea.EntryID, idea.Title, idea.IdeaDescription, idea.AIPrompt, types, status,
	))
	if err != nil {
		return nil, postgres.MapError(err, "content idea for entry", idea.EntryID)
	}

	return &created, nil
}

// Update changes the status and/or output types of an idea.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.IdeaUpdateParams) (*domain.ContentIdea, error) {
	var types []byte
	if params.OutputTypes != nil {
		var err error
		types, err = encodeOutputTypes(params.OutputTypes)
		if err != nil {
			return nil, err
		}
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanIdea(querier.QueryRow(ctx, updateSQL, id, params.Status, types))
	if err != nil {
		return nil, postgres.MapError(err, "content idea", id)
	}

	return &updated, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func encodeOutputTypes(types []domain.OutputType) ([]byte, error) {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode output types: %w", err)
	}
	return b, nil
}

func scanIdea(row pgx.Row) (domain.ContentIdea, error) {
	var (
		idea      domain.ContentIdea
		typesJSON []byte
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(&idea.ID, &idea.EntryID, &idea.Title, &idea.IdeaDescription, &idea.AIPrompt,
		&typesJSON, &idea.Status, &createdAt, &updatedAt)
	if err != nil {
		return domain.ContentIdea{}, err
	}

	var types []string
	if len(typesJSON) > 0 {
		if err := json.Unmarshal(typesJSON, &types); err != nil {
			return domain.ContentIdea{}, fmt.Errorf("decode output types: %w", err)
		}
	}

	idea.OutputTypes = make([]domain.OutputType, 0, len(types))
	for _, t := range types {
		idea.OutputTypes = append(idea.OutputTypes, domain.OutputType(t))
	}
	idea.CreatedAt = createdAt.UTC()
	idea.UpdatedAt = updatedAt.UTC()

	return idea, nil
}

func scanIdeas(rows pgx.Rows) ([]domain.ContentIdea, error) {
	defer rows.Close()

	result := []domain.ContentIdea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
