package idea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

const maxStatusLength = 50

type ideaRepo interface {
	List(ctx context.Context, filter domain.IdeaFilter) ([]domain.ContentIdea, error)
	Update(ctx context.Context, id uuid.UUID, params domain.IdeaUpdateParams) (*domain.ContentIdea, error)
}

// Service lists and updates content ideas.
type Service struct {
	ideas ideaRepo
	log   *slog.Logger
}

// NewService creates a new ContentIdea service.
func NewService(log *slog.Logger, ideas ideaRepo) *Service {
	return &Service{
		ideas: ideas,
		log:   log.With("service", "idea"),
	}
}

// UpdateInput holds the parameters for updating a content idea.
type UpdateInput struct {
	ID          uuid.UUID
	Status      *string
	OutputTypes []domain.OutputType // nil = don't change
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Status == nil && i.OutputTypes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Status != nil {
		status := strings.TrimSpace(*i.Status)
		if status == "" {
			errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
		}
		if utf8.RuneCountInString(status) > maxStatusLength {
			errs = append(errs, domain.FieldError{Field: "status", Message: "max 50 characters"})
		}
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

// List returns content ideas, newest first.
func (s *Service) List(ctx context.Context, filter domain.IdeaFilter) ([]domain.ContentIdea, error) {
	if filter.OutputType != nil && !filter.OutputType.IsValid() {
		return nil, domain.NewValidationError("output_type", "invalid value")
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, domain.NewValidationError("pagination", "limit and offset must be non-negative")
	}

	ideas, err := s.ideas.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list content ideas: %w", err)
	}
	return ideas, nil
}

// Update changes an idea's status and/or output types.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.ContentIdea, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var params domain.IdeaUpdateParams
	if input.Status != nil {
		status := strings.TrimSpace(*input.Status)
		params.Status = &status
	}
	if input.OutputTypes != nil {
		params.OutputTypes = dedupe(input.OutputTypes)
	}

	updated, err := s.ideas.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update content idea: %w", err)
	}

	s.log.InfoContext(ctx, "content idea updated",
		slog.String("idea_id", input.ID.String()),
		slog.String("status", updated.Status),
	)
	return updated, nil
}

func dedupe(types []domain.OutputType) []domain.OutputType {
	seen := make(map[domain.OutputType]bool, len(types))
	out := make([]domain.OutputType, 0, len(types))
	for _, t := range types {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
