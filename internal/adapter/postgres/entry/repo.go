// Package entry implements the Entry repository using PostgreSQL.
// Reads join the entry's category and subcategory so callers get names
// without a second round trip.
package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sthacker-ai/NexusLog/internal/adapter/postgres"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var selectColumns = []string{
	"e.id", "e.raw_content", "e.processed_content", "e.content_type", "e.file_path",
	"e.category_id", "e.subcategory_id", "e.source", "e.metadata", "e.created_at", "e.updated_at",
	"c.name", "s.name", "s.parent_id",
}

const fromJoined = `entries e
LEFT JOIN categories c ON c.id = e.category_id
LEFT JOIN categories s ON s.id = e.subcategory_id`

const createSQL = `
INSERT INTO entries (raw_content, processed_content, content_type, file_path, category_id, subcategory_id, source, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`

const deleteSQL = `DELETE FROM entries WHERE id = $1`

const countByTypeSQL = `SELECT content_type, count(*) FROM entries GROUP BY content_type`

const statsSQL = `
SELECT
    (SELECT count(*) FROM entries),
    (SELECT count(*) FROM content_ideas),
    (SELECT count(*) FROM projects),
    (SELECT count(*) FROM categories WHERE parent_id IS NULL)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry with its category and subcategory names.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	query, args, err := psql.Select(selectColumns...).
		From(fromJoined).
		Where("e.id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get entry query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return &e, nil
}

// FindByFileUniqueID returns the newest entry whose metadata carries the
// given Telegram file_unique_id. Returns domain.ErrNotFound when there is none.
func (r *Repo) FindByFileUniqueID(ctx context.Context, fileUniqueID string) (*domain.Entry, error) {
	query, args, err := psql.Select(selectColumns...).
		From(fromJoined).
		Where("e.metadata ->> 'file_unique_id' = ?", fileUniqueID).
		OrderBy("e.created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find entry query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry with file", fileUniqueID)
	}

	return &e, nil
}

// List returns entries matching the filter, newest first, together with the
// total number of matches ignoring pagination.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, int, error) {
	filter = normalizeFilter(filter)

	countQuery, countArgs, err := applyFilter(psql.Select("count(*)").From("entries e"), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count entries query: %w", err)
	}

	listQuery, listArgs, err := applyFilter(psql.Select(selectColumns...).From(fromJoined), filter).
		OrderBy("e.created_at DESC", "e.id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list entries query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	rows, err := querier.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}

	return entries, total, nil
}

// CountByType returns the number of entries per content type. Every known
// type is present in the result, with zero when unused.
func (r *Repo) CountByType(ctx context.Context) (map[domain.ContentType]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByTypeSQL)
	if err != nil {
		return nil, fmt.Errorf("count entries by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ContentType]int, len(domain.AllContentTypes))
	for _, ct := range domain.AllContentTypes {
		counts[ct] = 0
	}

	for rows.Next() {
		var (
			ct    string
			count int
		)
		if err := rows.Scan(&ct, &count); err != nil {
			return nil, fmt.Errorf("scan entry count: %w", err)
		}
		counts[domain.ContentType(ct)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count entries by type: %w", err)
	}

	return counts, nil
}

// Stats returns the dashboard totals, including entries by type.
func (r *Repo) Stats(ctx context.Context) (domain.Stats, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Stats
	err := querier.QueryRow(ctx, statsSQL).Scan(&s.TotalEntries, &s.TotalIdeas, &s.TotalProjects, &s.TotalCategories)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("stats totals: %w", err)
	}

	s.EntriesByType, err = r.CountByType(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	return s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry and returns it with the generated id and timestamps.
// Returns domain.ErrNotFound if a referenced category does not exist.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	meta := e.Metadata
	if meta == nil {
		meta = domain.Metadata{}
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode entry metadata: %w", err)
	}

	source := e.Source
	if source == "" {
		source = domain.SourceTelegram
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created := *e
	created.Source = source
	created.Metadata = meta

	err = querier.QueryRow(ctx, createSQL,
		e.RawContent, e.ProcessedContent, string(e.ContentType), e.FilePath,
		e.CategoryID, e.SubcategoryID, string(source), metaJSON,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "entry", "new")
	}

	created.CreatedAt = created.CreatedAt.UTC()
	created.UpdatedAt = created.UpdatedAt.UTC()

	return &created, nil
}

// Delete removes an entry. Its content ideas cascade.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "entry", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (domain.Entry, error) {
	var (
		e               domain.Entry
		contentType     string
		source          string
		metaJSON        []byte
		createdAt       time.Time
		updatedAt       time.Time
		categoryName    *string
		subcategoryName *string
		subParentID     *uuid.UUID
	)

	err := row.Scan(
		&e.ID, &e.RawContent, &e.ProcessedContent, &contentType, &e.FilePath,
		&e.CategoryID, &e.SubcategoryID, &source, &metaJSON, &createdAt, &updatedAt,
		&categoryName, &subcategoryName, &subParentID,
	)
	if err != nil {
		return domain.Entry{}, err
	}

	e.ContentType = domain.ContentType(contentType)
	e.Source = domain.Source(source)
	e.CreatedAt = createdAt.UTC()
	e.UpdatedAt = updatedAt.UTC()

	e.Metadata = domain.Metadata{}
	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &e.Metadata); err != nil {
			return domain.Entry{}, fmt.Errorf("decode entry metadata: %w", err)
		}
	}

	if e.CategoryID != nil && categoryName != nil {
		e.Category = &domain.Category{ID: *e.CategoryID, Name: *categoryName}
	}
	if e.SubcategoryID != nil && subcategoryName != nil {
		e.Subcategory = &domain.Category{ID: *e.SubcategoryID, Name: *subcategoryName, ParentID: subParentID}
	}

	return e, nil
}
