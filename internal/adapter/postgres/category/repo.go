// Package category implements the Category repository using PostgreSQL.
// Categories form a one-level tree: top-level rows have a NULL parent_id.
// Name uniqueness is case-insensitive and enforced by partial unique indexes.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sthacker-ai/NexusLog/internal/adapter/postgres"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const categoryColumns = `id, name, description, parent_id, created_at, updated_at`

const getByIDSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1`

const findTopLevelByNameSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE parent_id IS NULL AND lower(name) = lower($1)`

// Subcategory matches under any parent; the oldest wins when names repeat
// across parents.
const findSubcategoryByNameSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE parent_id IS NOT NULL AND lower(name) = lower($1)
ORDER BY created_at, id
LIMIT 1`

const findSubcategorySQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE parent_id = $1 AND lower(name) = lower($2)`

const countTopLevelSQL = `SELECT count(*) FROM categories WHERE parent_id IS NULL`

const listTopLevelSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE parent_id IS NULL
ORDER BY name`

const listAllSubcategoriesSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE parent_id IS NOT NULL
ORDER BY parent_id, name`

const listSubcategoriesSQL = `
SELECT ` + categoryColumns + `
FROM categories
WHERE parent_id = $1
ORDER BY name`

const createSQL = `
INSERT INTO categories (name, description, parent_id)
VALUES ($1, $2, $3)
RETURNING ` + categoryColumns

const updateSQL = `
UPDATE categories
SET name = $2, description = $3, updated_at = now()
WHERE id = $1
RETURNING ` + categoryColumns

const deleteSQL = `DELETE FROM categories WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &c, nil
}

// FindTopLevelByName returns the top-level category whose name equals name,
// ignoring case. Returns domain.ErrNotFound when there is none.
func (r *Repo) FindTopLevelByName(ctx context.Context, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(querier.QueryRow(ctx, findTopLevelByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "category", name)
	}

	return &c, nil
}

// FindSubcategoryByName returns a subcategory with the given name under any
// parent, ignoring case. Returns domain.ErrNotFound when there is none.
func (r *Repo) FindSubcategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(querier.QueryRow(ctx, findSubcategoryByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "subcategory", name)
	}

	return &c, nil
}

// FindSubcategory returns the child of parentID named name, ignoring case.
// Returns domain.ErrNotFound when there is none.
func (r *Repo) FindSubcategory(ctx context.Context, parentID uuid.UUID, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(querier.QueryRow(ctx, findSubcategorySQL, parentID, name))
	if err != nil {
		return nil, postgres.MapError(err, "subcategory", name)
	}

	return &c, nil
}

// CountTopLevel returns the number of categories without a parent.
func (r *Repo) CountTopLevel(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countTopLevelSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count top-level categories: %w", err)
	}

	return count, nil
}

// ListTopLevel returns all top-level categories ordered by name, each with
// its subcategories attached. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListTopLevel(ctx context.Context) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTopLevelSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	parents, err := scanCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	rows, err = querier.Query(ctx, listAllSubcategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	children, err := scanCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	byParent := make(map[uuid.UUID][]domain.Category, len(parents))
	for _, c := range children {
		byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
	}

	for i := range parents {
		subs := byParent[parents[i].ID]
		if subs == nil {
			subs = []domain.Category{}
		}
		parents[i].Subcategories = subs
	}

	return parents, nil
}

// ListSubcategories returns the children of parentID ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListSubcategories(ctx context.Context, parentID uuid.UUID) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSubcategoriesSQL, parentID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	result, err := scanCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new category and returns the persisted row.
// Returns domain.ErrAlreadyExists if a sibling with the same name (ignoring
// case) exists, and domain.ErrNotFound if the parent does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCategory(querier.QueryRow(ctx, createSQL, c.Name, c.Description, c.ParentID))
	if err != nil {
		return nil, postgres.MapError(err, "category", c.Name)
	}

	return &created, nil
}

// Update applies a partial update. A pointer to an empty description clears it.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	current, err := scanCategory(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	name := current.Name
	if params.Name != nil {
		name = *params.Name
	}

	description := current.Description
	if params.Description != nil {
		if *params.Description == "" {
			description = nil
		} else {
			description = params.Description
		}
	}

	updated, err := scanCategory(querier.QueryRow(ctx, updateSQL, id, name, description))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &updated, nil
}

// Delete removes a category. Subcategories cascade; entries keep their row
// with the reference cleared.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCategory(row pgx.Row) (domain.Category, error) {
	var (
		c         domain.Category
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &createdAt, &updatedAt); err != nil {
		return domain.Category{}, err
	}

	c.CreatedAt = createdAt.UTC()
	c.UpdatedAt = updatedAt.UTC()

	return c, nil
}

func scanCategories(rows pgx.Rows) ([]domain.Category, error) {
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

