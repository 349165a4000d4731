package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/entry"
)

type entryService interface {
	List(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (domain.Stats, error)
	CreateManual(ctx context.Context, input entry.ManualInput) (*domain.Entry, error)
}

// EntryHandler serves entry and dashboard statistics endpoints.
type EntryHandler struct {
	svc entryService
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler.
func NewEntryHandler(svc entryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, log: logger.With("handler", "entry")}
}

type createEntryRequest struct {
	Content       string   `json:"content"`
	ContentType   string   `json:"content_type"`
	UseAI         bool     `json:"use_ai"`
	IsContentIdea bool     `json:"is_content_idea"`
	OutputTypes   []string `json:"output_types"`
	CategoryID    *string  `json:"category_id"`
	SubcategoryID *string  `json:"subcategory_id"`
}

// List handles GET /api/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEntryFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": out,
		"count":   len(out),
		"total":   total,
	})
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(*e))
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	categoryID, err := optionalUUID("category_id", req.CategoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	subcategoryID, err := optionalUUID("subcategory_id", req.SubcategoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	e, err := h.svc.CreateManual(r.Context(), entry.ManualInput{
		Content:       req.Content,
		ContentType:   domain.ContentType(req.ContentType),
		UseAI:         req.UseAI,
		IsContentIdea: req.IsContentIdea,
		OutputTypes:   outputTypes(req.OutputTypes),
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Entry created successfully",
		"entry_id": e.ID.String(),
	})
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Stats handles GET /api/stats.
func (h *EntryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	byType := make(map[string]int, len(domain.AllContentTypes))
	for _, ct := range domain.AllContentTypes {
		byType[ct.String()] = st.EntriesByType[ct]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_entries":    st.TotalEntries,
		"total_ideas":      st.TotalIdeas,
		"total_projects":   st.TotalProjects,
		"total_categories": st.TotalCategories,
		"entries_by_type":  byType,
	})
}
