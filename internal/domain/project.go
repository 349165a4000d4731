package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Project groups planned work under an optional category.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CategoryID  *uuid.UUID
	Tasks       []string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category
}

// Setting is one key/value pair of user-editable configuration.
type Setting struct {
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
}

// UsageRecord logs one call to an external AI provider for cost tracking.
type UsageRecord struct {
	ID           uuid.UUID
	Provider     string
	Model        string
	Feature      string
	InputTokens  int64
	OutputTokens int64
	CostUSD      float64
	Details      map[string]any
	CreatedAt    time.Time
}

// Stats is the dashboard summary.
type Stats struct {
	TotalEntries    int
	TotalIdeas      int
	TotalProjects   int
	TotalCategories int
	EntriesByType   map[ContentType]int
}
