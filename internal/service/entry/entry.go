package entry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/adapter/llm"
	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/intake"
)

// List returns one page of entries, newest first, and the total match count.
func (s *Service) List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, int, error) {
	if filter.ContentType != nil && !filter.ContentType.IsValid() {
		return nil, 0, domain.NewValidationError("content_type", "invalid value")
	}
	if filter.Source != nil && !filter.Source.IsValid() {
		return nil, 0, domain.NewValidationError("source", "invalid value")
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, 0, domain.NewValidationError("pagination", "limit and offset must be non-negative")
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedFrom.After(*filter.CreatedTo) {
		return nil, 0, domain.NewValidationError("from", "must not be after to")
	}

	entries, total, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}
	return entries, total, nil
}

// Get returns one entry with its categories and content ideas.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	ideas, err := s.ideas.ListByEntryIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("list content ideas: %w", err)
	}
	e.Ideas = ideas
	return e, nil
}

// Delete removes an entry and its content ideas.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	s.log.InfoContext(ctx, "entry deleted", slog.String("entry_id", id.String()))
	return nil
}

// Stats returns the dashboard totals.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	st, err := s.entries.Stats(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("entry stats: %w", err)
	}
	return st, nil
}

// CreateManual stores an entry typed into the dashboard. With UseAI and no
// explicit category it runs the full intake pipeline; otherwise the content
// is stored verbatim under the given categories.
func (s *Service) CreateManual(ctx context.Context, input ManualInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.UseAI && input.CategoryID == nil && input.SubcategoryID == nil {
		res, err := s.intake.Ingest(ctx, intake.IngestInput{
			RawContent:    input.Content,
			ContentType:   input.contentType(),
			Source:        domain.SourceManual,
			IsContentIdea: input.IsContentIdea,
			OutputTypes:   input.OutputTypes,
		})
		if err != nil {
			return nil, err
		}
		return res.Entry, nil
	}

	categoryID, subcategoryID, err := s.checkCategories(ctx, input.CategoryID, input.SubcategoryID)
	if err != nil {
		return nil, err
	}

	outputTypes := input.OutputTypes
	if input.IsContentIdea && len(outputTypes) == 0 {
		outputTypes = domain.AllOutputTypes()
	}

	meta := domain.Metadata{domain.MetaIsContentIdea: input.IsContentIdea}
	meta.SetString(domain.MetaTitle, domain.TruncateRunes(domain.FirstLine(input.Content), domain.MaxTitleLength))
	if len(outputTypes) > 0 {
		meta.SetOutputTypes(outputTypes)
	}

	entry := &domain.Entry{
		RawContent:       input.Content,
		ProcessedContent: input.Content,
		ContentType:      input.contentType(),
		CategoryID:       categoryID,
		SubcategoryID:    subcategoryID,
		Source:           domain.SourceManual,
		Metadata:         meta,
	}

	var idea *domain.ContentIdea
	if input.IsContentIdea {
		prompt := s.ideaPrompt(ctx, input.Content)
		idea = &domain.ContentIdea{
			Title:           ideaTitle(input.Content),
			IdeaDescription: input.Content,
			AIPrompt:        &prompt,
			OutputTypes:     outputTypes,
			Status:          domain.IdeaStatusIdea,
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, createErr := s.entries.Create(txCtx, entry)
		if createErr != nil {
			return fmt.Errorf("create entry: %w", createErr)
		}
		entry = created

		if idea != nil {
			idea.EntryID = created.ID
			createdIdea, ideaErr := s.ideas.Create(txCtx, idea)
			if ideaErr != nil {
				return fmt.Errorf("create content idea: %w", ideaErr)
			}
			entry.Ideas = []domain.ContentIdea{*createdIdea}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manual entry created",
		slog.String("entry_id", entry.ID.String()),
		slog.Bool("content_idea", idea != nil),
	)
	return entry, nil
}

// checkCategories verifies explicit category references. A subcategory
// without a category implies its parent.
func (s *Service) checkCategories(ctx context.Context, categoryID, subcategoryID *uuid.UUID) (*uuid.UUID, *uuid.UUID, error) {
	if categoryID != nil {
		c, err := s.categories.GetByID(ctx, *categoryID)
		if err != nil {
			return nil, nil, fmt.Errorf("get category: %w", err)
		}
		if !c.IsTopLevel() {
			// A subcategory passed as the category: file it under its parent.
			subcategoryID, categoryID = &c.ID, c.ParentID
		}
	}

	if subcategoryID != nil && (categoryID == nil || *subcategoryID != *categoryID) {
		sub, err := s.categories.GetByID(ctx, *subcategoryID)
		if err != nil {
			return nil, nil, fmt.Errorf("get subcategory: %w", err)
		}
		if sub.IsTopLevel() {
			return nil, nil, domain.NewValidationError("subcategory_id", "not a subcategory")
		}
		if categoryID == nil {
			categoryID = sub.ParentID
		} else if *sub.ParentID != *categoryID {
			return nil, nil, domain.NewValidationError("subcategory_id", "does not belong to category")
		}
	}

	return categoryID, subcategoryID, nil
}

func (s *Service) ideaPrompt(ctx context.Context, idea string) string {
	if s.prompter == nil {
		return llm.FallbackIdeaPrompt(idea)
	}
	prompt, err := s.prompter.GenerateIdeaPrompt(ctx, idea)
	if err != nil || prompt == "" {
		if err != nil {
			s.log.WarnContext(ctx, "idea prompt generation failed", slog.String("error", err.Error()))
		}
		return llm.FallbackIdeaPrompt(idea)
	}
	return prompt
}

func ideaTitle(content string) string {
	line := domain.FirstLine(content)
	title := domain.TruncateRunes(line, domain.MaxTitleLength)
	if title != line {
		title += "..."
	}
	return title
}
