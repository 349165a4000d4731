package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sthacker-ai/NexusLog/internal/adapter/llm"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Ingest classifies, categorizes and stores one message. Classification
// failures never surface: the message is stored as-is under the default
// category instead. Store failures are returned wrapped.
func (s *Service) Ingest(ctx context.Context, input IngestInput) (*domain.IngestResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	source := input.Source
	if source == "" {
		source = domain.SourceTelegram
	}

	cls, usedFallback := s.classify(ctx, input)

	res, err := s.categories.Resolve(ctx, cls.Category, cls.Subcategory)
	if err != nil {
		return nil, fmt.Errorf("intake: resolve category: %w", err)
	}
	if res.Created {
		s.metrics.CategoryCreated()
	}
	if res.LimitReached {
		s.metrics.CategoryLimitReached()
	}

	isIdea := cls.IsContentIdea || input.IsContentIdea
	outputTypes := input.OutputTypes
	if isIdea && len(outputTypes) == 0 {
		outputTypes = domain.AllOutputTypes()
	}

	entry := &domain.Entry{
		RawContent:       input.RawContent,
		ProcessedContent: cls.ProcessedContent,
		ContentType:      input.ContentType,
		FilePath:         input.FilePath,
		CategoryID:       &res.Category.ID,
		Source:           source,
		Metadata:         buildMetadata(cls, isIdea, outputTypes, input),
	}
	if res.Subcategory != nil {
		entry.SubcategoryID = &res.Subcategory.ID
	}

	var idea *domain.ContentIdea
	if isIdea {
		idea = &domain.ContentIdea{
			Title:           ideaTitle(cls),
			IdeaDescription: cls.ProcessedContent,
			OutputTypes:     outputTypes,
			Status:          domain.IdeaStatusIdea,
		}
		if prompt := s.ideaPrompt(ctx, cls.ProcessedContent, usedFallback); prompt != "" {
			idea.AIPrompt = &prompt
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
			idea = createdIdea
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("intake: %w", err)
	}

	entry.Category = res.Category
	entry.Subcategory = res.Subcategory
	if idea != nil {
		entry.Ideas = []domain.ContentIdea{*idea}
	}

	s.metrics.EntryIngested(string(source), string(input.ContentType), time.Since(start))
	s.log.InfoContext(ctx, "entry ingested",
		slog.String("entry_id", entry.ID.String()),
		slog.String("content_type", string(input.ContentType)),
		slog.String("category", res.Category.Name),
		slog.Bool("content_idea", idea != nil),
		slog.Bool("fallback", usedFallback),
	)

	return &domain.IngestResult{
		Entry:          entry,
		Category:       res.Category,
		Subcategory:    res.Subcategory,
		Idea:           idea,
		Classification: cls,
		UsedFallback:   usedFallback,
	}, nil
}

// classify returns the classifier's judgement, or the deterministic
// fallback and true when the classifier fails.
func (s *Service) classify(ctx context.Context, input IngestInput) (domain.Classification, bool) {
	if input.SkipClassification {
		return s.fallback(input.RawContent), false
	}

	names, err := s.categories.TopLevelNames(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "list category names failed, using defaults", slog.String("error", err.Error()))
		names = nil
	}

	callCtx := ctx
	if s.opts.ClassifyTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.opts.ClassifyTimeout)
		defer cancel()
	}

	text := input.RawContent
	if input.LinkContext != "" {
		text += "\n\n" + input.LinkContext
	}

	cls, err := s.classifier.Classify(callCtx, text, names)
	if err != nil {
		s.metrics.ClassificationFailed()
		s.log.WarnContext(ctx, "classification failed, using fallback", slog.String("error", err.Error()))
		return s.fallback(input.RawContent), true
	}
	return cls, false
}

func (s *Service) fallback(raw string) domain.Classification {
	return domain.Classification{
		Intent:           domain.IntentNote,
		Title:            domain.TruncateRunes(domain.FirstLine(raw), domain.MaxTitleLength),
		ProcessedContent: raw,
		Category:         s.opts.DefaultCategory,
	}
}

// ideaPrompt asks for a content brief. It returns the plain fallback prompt
// when generation is disabled, the classifier is down, or the call fails.
func (s *Service) ideaPrompt(ctx context.Context, idea string, classifierDown bool) string {
	if !s.opts.IdeaPrompts || classifierDown {
		return llm.FallbackIdeaPrompt(idea)
	}
	prompt, err := s.classifier.GenerateIdeaPrompt(ctx, idea)
	if err != nil || prompt == "" {
		if err != nil {
			s.log.WarnContext(ctx, "idea prompt generation failed", slog.String("error", err.Error()))
		}
		return llm.FallbackIdeaPrompt(idea)
	}
	return prompt
}

func buildMetadata(cls domain.Classification, isIdea bool, outputTypes []domain.OutputType, input IngestInput) domain.Metadata {
	meta := domain.Metadata{
		domain.MetaIsContentIdea: isIdea,
		domain.MetaIntent:        string(cls.Intent),
	}
	meta.SetString(domain.MetaTitle, cls.Title)
	meta.SetString(domain.MetaSourceURL, input.SourceURL)
	meta.SetString(domain.MetaFileUniqueID, input.FileUniqueID)
	meta.SetString(domain.MetaLinkTitle, input.LinkTitle)
	meta.SetString(domain.MetaProcessingNote, cls.ProcessingNote)
	if len(outputTypes) > 0 {
		meta.SetOutputTypes(outputTypes)
	}
	return meta
}

func ideaTitle(cls domain.Classification) string {
	if cls.Title != "" {
		return cls.Title
	}
	content := domain.FirstLine(cls.ProcessedContent)
	title := domain.TruncateRunes(content, domain.MaxTitleLength)
	if title != content {
		title += "..."
	}
	return title
}
