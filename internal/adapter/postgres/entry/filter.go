package entry

import (
	"github.com/Masterminds/squirrel"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// normalizeFilter applies defaults and clamps pagination values.
func normalizeFilter(f domain.EntryFilter) domain.EntryFilter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// applyFilter adds the WHERE clauses shared by the list and count queries.
// Columns are qualified with the "e" alias.
func applyFilter(b squirrel.SelectBuilder, f domain.EntryFilter) squirrel.SelectBuilder {
	if f.CategoryID != nil {
		// The id may name either the top-level category or the subcategory.
		b = b.Where(squirrel.Or{
			squirrel.Eq{"e.category_id": *f.CategoryID},
			squirrel.Eq{"e.subcategory_id": *f.CategoryID},
		})
	}
	if f.ContentType != nil {
		b = b.Where(squirrel.Eq{"e.content_type": string(*f.ContentType)})
	}
	if f.Source != nil {
		b = b.Where(squirrel.Eq{"e.source": string(*f.Source)})
	}
	if f.CreatedFrom != nil {
		b = b.Where(squirrel.GtOrEq{"e.created_at": *f.CreatedFrom})
	}
	if f.CreatedTo != nil {
		b = b.Where(squirrel.LtOrEq{"e.created_at": *f.CreatedTo})
	}
	return b
}
