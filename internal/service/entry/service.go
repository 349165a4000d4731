package entry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/intake"
)

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, int, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ideaRepo interface {
	ListByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) ([]domain.ContentIdea, error)
	Create(ctx context.Context, idea *domain.ContentIdea) (*domain.ContentIdea, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

type ingester interface {
	Ingest(ctx context.Context, input intake.IngestInput) (*domain.IngestResult, error)
}

type ideaPrompter interface {
	GenerateIdeaPrompt(ctx context.Context, idea string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service reads entries and creates manual ones.
type Service struct {
	entries    entryRepo
	ideas      ideaRepo
	categories categoryRepo
	intake     ingester
	prompter   ideaPrompter
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Entry service. prompter may be nil, in which
// case manual ideas get the plain fallback prompt.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	ideas ideaRepo,
	categories categoryRepo,
	intake ingester,
	prompter ideaPrompter,
	tx txManager,
) *Service {
	return &Service{
		entries:    entries,
		ideas:      ideas,
		categories: categories,
		intake:     intake,
		prompter:   prompter,
		tx:         tx,
		log:        log.With("service", "entry"),
	}
}
