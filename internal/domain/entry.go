package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one captured unit of content.
type Entry struct {
	ID               uuid.UUID
	RawContent       string
	ProcessedContent string
	ContentType      ContentType
	FilePath         *string
	CategoryID       *uuid.UUID
	SubcategoryID    *uuid.UUID
	Source           Source
	Metadata         Metadata
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Populated by detail and list reads.
	Category    *Category
	Subcategory *Category
	Ideas       []ContentIdea
}

// ContentIdea is an entry flagged as raw material for future content.
type ContentIdea struct {
	ID              uuid.UUID
	EntryID         uuid.UUID
	Title           string
	IdeaDescription string
	AIPrompt        *string
	OutputTypes     []OutputType
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IdeaUpdateParams holds a partial update of a content idea. Nil fields are
// left unchanged.
type IdeaUpdateParams struct {
	Status      *string
	OutputTypes []OutputType
}
