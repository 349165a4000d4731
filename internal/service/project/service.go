package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

const maxNameLength = 200

type projectRepo interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
}

// Service manages projects.
type Service struct {
	projects projectRepo
	log      *slog.Logger
}

// NewService creates a new Project service.
func NewService(log *slog.Logger, projects projectRepo) *Service {
	return &Service{
		projects: projects,
		log:      log.With("service", "project"),
	}
}

// CreateInput holds the parameters for creating a project.
type CreateInput struct {
	Name        string
	Description *string
	CategoryID  *uuid.UUID
	Tasks       []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns all projects, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	list, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return list, nil
}

// Create adds a project. An unknown category yields domain.ErrNotFound.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := &domain.Project{
		Name:       strings.TrimSpace(input.Name),
		CategoryID: input.CategoryID,
		Tasks:      cleanTasks(input.Tasks),
		Status:     domain.ProjectStatusIdea,
	}
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			p.Description = &d
		}
	}

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID.String()),
		slog.String("name", created.Name),
	)
	return created, nil
}

func cleanTasks(tasks []string) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
