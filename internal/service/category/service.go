package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/config"
	"github.com/sthacker-ai/NexusLog/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindTopLevelByName(ctx context.Context, name string) (*domain.Category, error)
	FindSubcategoryByName(ctx context.Context, name string) (*domain.Category, error)
	FindSubcategory(ctx context.Context, parentID uuid.UUID, name string) (*domain.Category, error)
	CountTopLevel(ctx context.Context) (int, error)
	ListTopLevel(ctx context.Context) ([]domain.Category, error)
	ListSubcategories(ctx context.Context, parentID uuid.UUID) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service manages the category hierarchy and the top-level limit.
type Service struct {
	categories  categoryRepo
	maxTopLevel int
	defaultName string
	log         *slog.Logger
}

// NewService creates a new Category service.
func NewService(log *slog.Logger, categories categoryRepo, cfg config.CategoryConfig) *Service {
	defaultName := domain.NormalizeName(cfg.DefaultName)
	if defaultName == "" {
		defaultName = domain.DefaultCategoryName
	}
	maxTopLevel := cfg.MaxTopLevel
	if maxTopLevel < 1 {
		maxTopLevel = 10
	}

	return &Service{
		categories:  categories,
		maxTopLevel: maxTopLevel,
		defaultName: defaultName,
		log:         log.With("service", "category"),
	}
}

// MaxTopLevel returns the configured top-level limit.
func (s *Service) MaxTopLevel() int {
	return s.maxTopLevel
}

// DefaultName returns the name of the fallback category.
func (s *Service) DefaultName() string {
	return s.defaultName
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := domain.NormalizeName(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ptr(s string) *string {
	return &s
}
