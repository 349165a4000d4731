package entry

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// ManualInput is an entry typed into the dashboard.
type ManualInput struct {
	Content       string
	ContentType   domain.ContentType // defaults to text
	UseAI         bool
	IsContentIdea bool
	OutputTypes   []domain.OutputType
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ManualInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.ContentType != "" && !i.ContentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "invalid value"})
	}
	for _, t := range i.OutputTypes {
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{Field: "output_types", Message: "unknown output type: " + string(t)})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ManualInput) contentType() domain.ContentType {
	if i.ContentType == "" {
		return domain.ContentTypeText
	}
	return i.ContentType
}
