package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxCategoryNameLength matches the categories.name column, in runes.
const MaxCategoryNameLength = 100

// DefaultCategoryName is the category entries land in when nothing better fits.
const DefaultCategoryName = "General Notes"

// DefaultCategoryNames are offered to the classifier when the store has no
// categories of its own yet.
var DefaultCategoryNames = []string{
	"Content Ideas",
	"VibeCoding Projects",
	"Stock Trading",
	"To-Do",
	"To Learn",
	DefaultCategoryName,
}

// Category is a user-facing label for grouping entries. Categories nest at
// most one level deep: a subcategory's parent is always top-level.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
	ParentID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Subcategories []Category // populated by list reads only
}

// IsTopLevel reports whether the category has no parent.
func (c Category) IsTopLevel() bool {
	return c.ParentID == nil
}

// CategoryUpdateParams holds a partial update. A nil field is left unchanged;
// a pointer to "" clears the description.
type CategoryUpdateParams struct {
	Name        *string
	Description *string
}
