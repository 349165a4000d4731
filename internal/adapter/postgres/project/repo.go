// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/sthacker-ai/NexusLog/internal/adapter/postgres"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listSQL = `
SELECT p.id, p.name, p.description, p.category_id, p.tasks, p.status, p.created_at, p.updated_at, c.name
FROM projects p
LEFT JOIN categories c ON c.id = p.category_id
ORDER BY p.created_at DESC, p.id DESC`

const createSQL = `
INSERT INTO projects (name, description, category_id, tasks, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`

// List returns all projects, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// Create inserts a project. Nil tasks are stored as an empty list and an
// empty status becomes "idea".
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	created := *p
	if created.Tasks == nil {
		created.Tasks = []string{}
	}
	if created.Status == "" {
		created.Status = domain.ProjectStatusIdea
	}

	tasks, err := json.Marshal(created.Tasks)
	if err != nil {
		return nil, fmt.Errorf("encode project tasks: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	err = querier.QueryRow(ctx, createSQL, created.Name, created.Description, created.CategoryID, tasks, created.Status).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "project", created.Name)
	}

	created.CreatedAt = created.CreatedAt.UTC()
	created.UpdatedAt = created.UpdatedAt.UTC()

	return &created, nil
}

func scanProject(row pgx.Row) (domain.Project, error) {
	var (
		p            domain.Project
		tasksJSON    []byte
		createdAt    time.Time
		updatedAt    time.Time
		categoryName *string
	)

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &tasksJSON, &p.Status,
		&createdAt, &updatedAt, &categoryName)
	if err != nil {
		return domain.Project{}, err
	}

	p.Tasks = []string{}
	if len(tasksJSON) > 0 {
		if err := json.Unmarshal(tasksJSON, &p.Tasks); err != nil {
			return domain.Project{}, fmt.Errorf("decode project tasks: %w", err)
		}
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()

	if p.CategoryID != nil && categoryName != nil {
		p.Category = &domain.Category{ID: *p.CategoryID, Name: *categoryName}
	}

	return p, nil
}
