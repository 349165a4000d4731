package rest

import (
	"log/slog"
	"net/http"
)

type fileOpener interface {
	Open(rel string) (string, error)
}

// MediaHandler serves files saved from Telegram attachments.
type MediaHandler struct {
	files fileOpener
	log   *slog.Logger
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(files fileOpener, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{files: files, log: logger.With("handler", "media")}
}

// Get handles GET /api/uploads/{path...}. The path is the entry's file_path.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	abs, err := h.files.Open(r.PathValue("path"))
	if err != nil {
		h.log.DebugContext(r.Context(), "media not served", slog.String("error", err.Error()))
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeFile(w, r, abs)
}
