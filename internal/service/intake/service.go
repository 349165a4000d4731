// Package intake turns one inbound message into a persisted entry, plus a
// content idea when the message is flagged as one.
package intake

import (
	"context"
	"log/slog"
	"time"

	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/category"
	"github.com/sthacker-ai/NexusLog/internal/telemetry"
)

type classifier interface {
	Classify(ctx context.Context, text string, categories []string) (domain.Classification, error)
	GenerateIdeaPrompt(ctx context.Context, idea string) (string, error)
}

type categoryResolver interface {
	TopLevelNames(ctx context.Context) ([]string, error)
	Resolve(ctx context.Context, suggested, subcategory string) (*category.Resolution, error)
}

type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
}

type ideaRepo interface {
	Create(ctx context.Context, idea *domain.ContentIdea) (*domain.ContentIdea, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes the pipeline.
type Options struct {
	// DefaultCategory is the category used when classification fails.
	DefaultCategory string
	// ClassifyTimeout bounds one classifier call. Zero means no extra bound.
	ClassifyTimeout time.Duration
	// IdeaPrompts enables generating an AI brief for new content ideas.
	IdeaPrompts bool
}

// Service runs the intake pipeline.
type Service struct {
	classifier classifier
	categories categoryResolver
	entries    entryRepo
	ideas      ideaRepo
	tx         txManager
	metrics    *telemetry.Metrics
	opts       Options
	log        *slog.Logger
}

// NewService creates a new Intake service. metrics may be nil.
func NewService(
	log *slog.Logger,
	classifier classifier,
	categories categoryResolver,
	entries entryRepo,
	ideas ideaRepo,
	tx txManager,
	metrics *telemetry.Metrics,
	opts Options,
) *Service {
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = domain.DefaultCategoryName
	}
	return &Service{
		classifier: classifier,
		categories: categories,
		entries:    entries,
		ideas:      ideas,
		tx:         tx,
		metrics:    metrics,
		opts:       opts,
		log:        log.With("service", "intake"),
	}
}
