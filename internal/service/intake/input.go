package intake

import (
	"strings"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// IngestInput is one inbound message ready for the pipeline.
type IngestInput struct {
	RawContent   string
	ContentType  domain.ContentType
	Source       domain.Source // defaults to telegram
	FilePath     *string
	SourceURL    string
	FileUniqueID string

	// Fetched page metadata for SourceURL. LinkContext is shown to the
	// classifier but never stored as the entry's raw content.
	LinkTitle   string
	LinkContext string

	// Hints from the message text or the manual-entry form.
	IsContentIdea bool
	OutputTypes   []domain.OutputType

	// SkipClassification stores the message as-is under the default category.
	SkipClassification bool
}

// Validate checks all fields and collects all errors.
func (i IngestInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.RawContent) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if !i.ContentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "invalid value"})
	}
	if i.Source != "" && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid value"})
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
