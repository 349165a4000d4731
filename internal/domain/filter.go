package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryFilter contains filtering/pagination parameters for entry lists.
type EntryFilter struct {
	CategoryID  *uuid.UUID
	ContentType *ContentType
	Source      *Source
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// IdeaFilter contains filtering/pagination parameters for content idea lists.
type IdeaFilter struct {
	OutputType *OutputType
	Status     *string
	Limit      int
	Offset     int
}
