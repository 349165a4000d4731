package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/project"
)

type projectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
}

// ProjectHandler serves project endpoints.
type ProjectHandler struct {
	svc projectService
	log *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: logger.With("handler", "project")}
}

type createProjectRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"category_id"`
	Tasks       []string `json:"tasks"`
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]projectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": out, "count": len(out)})
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	categoryID, err := optionalUUID("category_id", req.CategoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		Tasks:       req.Tasks,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "project": toProjectResponse(*p)})
}
