package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

// Resolution is the outcome of mapping a suggested name onto the store.
type Resolution struct {
	Category    *domain.Category
	Subcategory *domain.Category

	// Created is set when a new top-level category was created.
	Created bool
	// LimitReached is set when the suggestion had no match and the store
	// was full, so the default category was used instead.
	LimitReached bool
}

// Resolve maps a suggested category (and optional subcategory) name onto
// existing categories, creating a new top-level category while the limit
// allows. It never fails because of the limit.
func (s *Service) Resolve(ctx context.Context, suggested, subcategory string) (*Resolution, error) {
	name := suggestedName(suggested)
	if name == "" || domain.NameKey(name) == domain.NameKey(s.defaultName) {
		def, err := s.EnsureDefault(ctx)
		if err != nil {
			return nil, err
		}
		return s.withSubcategory(ctx, &Resolution{Category: def}, subcategory)
	}

	c, err := s.categories.FindTopLevelByName(ctx, name)
	switch {
	case err == nil:
		return s.withSubcategory(ctx, &Resolution{Category: c}, subcategory)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find top-level category: %w", err)
	}

	sub, err := s.categories.FindSubcategoryByName(ctx, name)
	switch {
	case err == nil:
		parent, getErr := s.categories.GetByID(ctx, *sub.ParentID)
		if getErr != nil {
			return nil, fmt.Errorf("get parent category: %w", getErr)
		}
		return &Resolution{Category: parent, Subcategory: sub}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find subcategory: %w", err)
	}

	count, err := s.categories.CountTopLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	if count >= s.maxTopLevel {
		s.log.InfoContext(ctx, "category limit reached, using default",
			slog.String("suggested", name),
			slog.Int("max", s.maxTopLevel),
		)
		def, err := s.EnsureDefault(ctx)
		if err != nil {
			return nil, err
		}
		return &Resolution{Category: def, LimitReached: true}, nil
	}

	created, isNew, err := s.createTopLevel(ctx, name)
	switch {
	case errors.Is(err, domain.ErrValidation):
		s.log.WarnContext(ctx, "suggested category rejected by store, using default",
			slog.String("suggested", name),
			slog.String("error", err.Error()),
		)
		def, defErr := s.EnsureDefault(ctx)
		if defErr != nil {
			return nil, defErr
		}
		return &Resolution{Category: def}, nil
	case err != nil:
		return nil, err
	}
	return s.withSubcategory(ctx, &Resolution{Category: created, Created: isNew}, subcategory)
}

// suggestedName normalizes a classifier suggestion and clamps it to the
// column width.
func suggestedName(s string) string {
	return strings.TrimSpace(domain.TruncateRunes(domain.NormalizeName(s), domain.MaxCategoryNameLength))
}

// EnsureDefault returns the default category, creating it when missing.
// The default category does not count against the limit.
func (s *Service) EnsureDefault(ctx context.Context) (*domain.Category, error) {
	c, err := s.categories.FindTopLevelByName(ctx, s.defaultName)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find default category: %w", err)
	}

	c, _, err = s.createTopLevel(ctx, s.defaultName)
	return c, err
}

// createTopLevel inserts a top-level category. Losing a race against a
// concurrent insert of the same name yields the existing row.
func (s *Service) createTopLevel(ctx context.Context, name string) (*domain.Category, bool, error) {
	created, err := s.categories.Create(ctx, &domain.Category{Name: name})
	if err == nil {
		s.log.InfoContext(ctx, "category created",
			slog.String("category_id", created.ID.String()),
			slog.String("name", created.Name),
		)
		return created, true, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, false, fmt.Errorf("create category: %w", err)
	}

	existing, err := s.categories.FindTopLevelByName(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("find category after conflict: %w", err)
	}
	return existing, false, nil
}

// withSubcategory finds or creates the hinted subcategory under r.Category.
func (s *Service) withSubcategory(ctx context.Context, r *Resolution, hint string) (*Resolution, error) {
	name := suggestedName(hint)
	if name == "" || domain.NameKey(name) == domain.NameKey(r.Category.Name) {
		return r, nil
	}

	sub, err := s.findOrCreateSubcategory(ctx, r.Category.ID, name)
	switch {
	case errors.Is(err, domain.ErrValidation):
		s.log.WarnContext(ctx, "suggested subcategory rejected by store, skipping",
			slog.String("suggested", name),
			slog.String("error", err.Error()),
		)
		return r, nil
	case err != nil:
		return nil, err
	}
	r.Subcategory = sub
	return r, nil
}

func (s *Service) findOrCreateSubcategory(ctx context.Context, parentID uuid.UUID, name string) (*domain.Category, error) {
	sub, err := s.categories.FindSubcategory(ctx, parentID, name)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find subcategory: %w", err)
	}

	sub, err = s.categories.Create(ctx, &domain.Category{Name: name, ParentID: &parentID})
	if err == nil {
		s.log.InfoContext(ctx, "subcategory created",
			slog.String("category_id", sub.ID.String()),
			slog.String("parent_id", parentID.String()),
			slog.String("name", sub.Name),
		)
		return sub, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("create subcategory: %w", err)
	}

	sub, err = s.categories.FindSubcategory(ctx, parentID, name)
	if err != nil {
		return nil, fmt.Errorf("find subcategory after conflict: %w", err)
	}
	return sub, nil
}
