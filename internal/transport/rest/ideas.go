package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/idea"
)

type ideaService interface {
	List(ctx context.Context, filter domain.IdeaFilter) ([]domain.ContentIdea, error)
	Update(ctx context.Context, input idea.UpdateInput) (*domain.ContentIdea, error)
}

// IdeaHandler serves content idea endpoints.
type IdeaHandler struct {
	svc ideaService
	log *slog.Logger
}

// NewIdeaHandler creates an IdeaHandler.
func NewIdeaHandler(svc ideaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, log: logger.With("handler", "idea")}
}

type updateIdeaRequest struct {
	Status      *string  `json:"status"`
	OutputTypes []string `json:"output_types"`
}

// List handles GET /api/content-ideas.
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseIdeaFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := toIdeaList(list)
	writeJSON(w, http.StatusOK, map[string]any{"ideas": out, "count": len(out)})
}

// Update handles PUT /api/content-ideas/{id}.
func (h *IdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateIdeaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), idea.UpdateInput{
		ID:          id,
		Status:      req.Status,
		OutputTypes: outputTypes(req.OutputTypes),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "idea": toIdeaResponse(*updated)})
}
