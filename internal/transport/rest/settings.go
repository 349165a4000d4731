package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sthacker-ai/NexusLog/internal/domain"
)

type settingService interface {
	List(ctx context.Context) (map[string]json.RawMessage, error)
	Put(ctx context.Context, key string, value json.RawMessage) (*domain.Setting, error)
}

// SettingHandler serves the key/value configuration endpoints.
type SettingHandler struct {
	svc settingService
	log *slog.Logger
}

// NewSettingHandler creates a SettingHandler.
func NewSettingHandler(svc settingService, logger *slog.Logger) *SettingHandler {
	return &SettingHandler{svc: svc, log: logger.With("handler", "setting")}
}

type putSettingRequest struct {
	Value json.RawMessage `json:"value"`
}

type settingResponse struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// List handles GET /api/config.
func (h *SettingHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if settings == nil {
		settings = map[string]json.RawMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"config": settings})
}

// Put handles PUT /api/config/{key}.
func (h *SettingHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req putSettingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	s, err := h.svc.Put(r.Context(), r.PathValue("key"), req.Value)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"config":  settingResponse{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt},
	})
}
