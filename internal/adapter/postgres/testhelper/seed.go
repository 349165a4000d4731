package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// UniqueName returns prefix with a short random suffix, for data that must
// not collide across parallel tests sharing one database.
func UniqueName(prefix string) string {
	return prefix + " " + uuid.New().String()[:8]
}

// SeedCategory inserts a category. A nil parentID creates a top-level one.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, name string, parentID *uuid.UUID) domain.Category {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cat := domain.Category{
		ID:        uuid.New(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, parent_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cat.ID, cat.Name, cat.ParentID, cat.CreatedAt, cat.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory %q: %v", name, err)
	}

	return cat
}

// DefaultCategory returns the default category, creating it the way the
// server does on startup when it is missing.
func DefaultCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (name, description) VALUES ($1, 'Default category') ON CONFLICT DO NOTHING`,
		domain.DefaultCategoryName,
	)
	if err != nil {
		t.Fatalf("testhelper: DefaultCategory insert: %v", err)
	}

	var cat domain.Category
	err = pool.QueryRow(context.Background(),
		`SELECT id, name, created_at, updated_at FROM categories
		 WHERE parent_id IS NULL AND lower(name) = lower($1)`,
		domain.DefaultCategoryName,
	).Scan(&cat.ID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: DefaultCategory: %v", err)
	}

	return cat
}

// SeedEntry inserts a text entry filed under categoryID (which may be nil).
func SeedEntry(t *testing.T, pool *pgxpool.Pool, content string, categoryID *uuid.UUID) domain.Entry {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.Entry{
		ID:               uuid.New(),
		RawContent:       content,
		ProcessedContent: content,
		ContentType:      domain.ContentTypeText,
		CategoryID:       categoryID,
		Source:           domain.SourceTelegram,
		Metadata:         domain.Metadata{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	meta, err := json.Marshal(entry.Metadata)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry marshal metadata: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO entries (id, raw_content, processed_content, content_type, category_id, source, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		entry.ID, entry.RawContent, entry.ProcessedContent, string(entry.ContentType),
		entry.CategoryID, string(entry.Source), meta, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return entry
}
