package rest

import (
	"context"
	"net/http"
	"time"
)

const serviceName = "NexusLog API"

const pingTimeout = 3 * time.Second

// Overall and per-component health states.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name     string
	pinger   pinger
	required bool
}

// HealthHandler serves liveness, readiness and health endpoints. The
// database is required; components added with WithOptional only degrade
// the report.
type HealthHandler struct {
	components []component
	version    string
}

// NewHealthHandler creates a HealthHandler that checks db.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		components: []component{{name: "database", pinger: db, required: true}},
		version:    version,
	}
}

// WithOptional adds a component whose failure marks the service degraded
// without failing readiness.
func (h *HealthHandler) WithOptional(name string, p pinger) *HealthHandler {
	h.components = append(h.components, component{name: name, pinger: p})
	return h
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// API handles GET /api/health, the lightweight check the dashboard polls.
func (h *HealthHandler) API(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready is the readiness probe: 503 when a required component is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.check(r.Context(), true)
	writeJSON(w, httpStatus(overall), HealthResponse{Status: overall, Timestamp: time.Now()})
}

// Health reports every component with its ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, comps := h.check(r.Context(), false)
	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: comps,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context, requiredOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	overall := statusOK
	comps := make(map[string]CompStatus, len(h.components))

	for _, c := range h.components {
		if requiredOnly && !c.required {
			continue
		}

		start := time.Now()
		err := c.pinger.Ping(ctx)
		if err == nil {
			comps[c.name] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
			continue
		}

		comps[c.name] = CompStatus{Status: statusDown, Error: err.Error()}
		switch {
		case c.required:
			overall = statusDown
		case overall == statusOK:
			overall = statusDegraded
		}
	}

	return overall, comps
}

func httpStatus(overall string) int {
	if overall == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
