package rest

import (
	"net/http"
)

// Handlers bundles everything the router mounts. Media, Telegram and Metrics
// are optional; nil leaves their routes unregistered.
type Handlers struct {
	Health     *HealthHandler
	Entries    *EntryHandler
	Categories *CategoryHandler
	Ideas      *IdeaHandler
	Projects   *ProjectHandler
	Settings   *SettingHandler
	Media      *MediaHandler
	Telegram   http.Handler
	Metrics    http.Handler
}

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /api/health", h.Health.API)

	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("GET /api/entries", h.Entries.List)
	mux.HandleFunc("POST /api/entries", h.Entries.Create)
	mux.HandleFunc("GET /api/entries/{id}", h.Entries.Get)
	mux.HandleFunc("DELETE /api/entries/{id}", h.Entries.Delete)
	mux.HandleFunc("GET /api/stats", h.Entries.Stats)

	mux.HandleFunc("GET /api/categories", h.Categories.List)
	mux.HandleFunc("POST /api/categories", h.Categories.Create)
	mux.HandleFunc("PUT /api/categories/{id}", h.Categories.Update)
	mux.HandleFunc("DELETE /api/categories/{id}", h.Categories.Delete)
	mux.HandleFunc("GET /api/categories/{id}/subcategories", h.Categories.Subcategories)

	mux.HandleFunc("GET /api/content-ideas", h.Ideas.List)
	mux.HandleFunc("PUT /api/content-ideas/{id}", h.Ideas.Update)

	mux.HandleFunc("GET /api/projects", h.Projects.List)
	mux.HandleFunc("POST /api/projects", h.Projects.Create)

	mux.HandleFunc("GET /api/config", h.Settings.List)
	mux.HandleFunc("PUT /api/config/{key}", h.Settings.Put)

	if h.Media != nil {
		mux.HandleFunc("GET /api/uploads/{path...}", h.Media.Get)
	}

	if h.Telegram != nil {
		mux.Handle("POST /api/telegram/webhook", h.Telegram)
	}

	return mux
}
