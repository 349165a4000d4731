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

// FindByName looks a category up by name, case-insensitively. Top-level
// categories win over subcategories of the same name.
func (s *Service) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	c, err := s.categories.FindTopLevelByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find top-level category: %w", err)
	}

	c, err = s.categories.FindSubcategoryByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find subcategory: %w", err)
	}
	return c, nil
}

// CountTopLevel returns the number of top-level categories.
func (s *Service) CountTopLevel(ctx context.Context) (int, error) {
	n, err := s.categories.CountTopLevel(ctx)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// Create adds a category. A top-level create fails with a validation error
// once the limit is reached; subcategories are not limited.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := &domain.Category{
		Name:        domain.NormalizeName(input.Name),
		Description: trimOrNil(input.Description),
	}

	if input.ParentID != nil {
		parent, err := s.categories.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("get parent category: %w", err)
		}
		if !parent.IsTopLevel() {
			return nil, domain.NewValidationError("parent_id", "must be a top-level category")
		}
		c.ParentID = &parent.ID
	} else {
		count, err := s.categories.CountTopLevel(ctx)
		if err != nil {
			return nil, fmt.Errorf("count categories: %w", err)
		}
		if count >= s.maxTopLevel {
			return nil, s.limitError()
		}
	}

	created, err := s.categories.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.Bool("top_level", created.IsTopLevel()),
	)

	return created, nil
}

// List returns top-level categories with their subcategories attached.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	list, err := s.categories.ListTopLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// TopLevelNames returns the names of all top-level categories.
func (s *Service) TopLevelNames(ctx context.Context) ([]string, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, c := range list {
		names = append(names, c.Name)
	}
	return names, nil
}

// ListSubcategories returns the children of parentID.
func (s *Service) ListSubcategories(ctx context.Context, parentID uuid.UUID) ([]domain.Category, error) {
	if _, err := s.categories.GetByID(ctx, parentID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	list, err := s.categories.ListSubcategories(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return list, nil
}

// Update renames a category or changes its description.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var params domain.CategoryUpdateParams
	if input.Name != nil {
		name := domain.NormalizeName(*input.Name)
		params.Name = &name
	}
	if input.Description != nil {
		if desc := strings.TrimSpace(*input.Description); desc == "" {
			params.Description = ptr("")
		} else {
			params.Description = &desc
		}
	}

	updated, err := s.categories.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.log.InfoContext(ctx, "category updated", slog.String("category_id", input.ID.String()))
	return updated, nil
}

// Delete removes a category and its subcategories. Entries keep existing
// with their category references cleared.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	return nil
}

func (s *Service) limitError() error {
	return domain.NewValidationError("categories", fmt.Sprintf("limit reached (max %d)", s.maxTopLevel))
}
