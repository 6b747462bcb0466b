// Package http provides meta endpoints
package http

import (
	stdctx "context"
	stdhttp "net/http"
	"time"

	"lettings/internal/core/version"
	phttp "lettings/internal/platform/net/http"
)

// Pinger is satisfied by store adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies; nil stores are reported as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Rows        Pinger
	Images      Pinger
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r phttp.Router, d Deps) {
	h := &handlers{deps: d}

	r.Get("/health", phttp.Handle(h.health))
	r.Get("/ready", phttp.Handle(h.ready))
	r.Get("/version", phttp.Handle(h.version))
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"lettings-site"`
	Started string `json:"started" example:"2026-08-29T09:00:00Z"`
	Now     string `json:"now"     example:"2026-08-29T09:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"rows"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-29T09:05:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *stdhttp.Request) phttp.Response {
	return phttp.OK(HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	})
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *stdhttp.Request) phttp.Response {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := func(name string, p Pinger) ReadyCheck {
		if p == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if err := p.Ping(ctx); err != nil {
			return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
		}
		return ReadyCheck{Name: name, Status: "ok"}
	}

	rows := check("rows", h.deps.Rows)
	images := check("images", h.deps.Images)

	overall := "ok"
	if rows.Status == "fail" || images.Status == "fail" {
		overall = "fail"
	}

	return phttp.OK(ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{rows, images},
		Now:    time.Now().UTC().Format(time.RFC3339),
	})
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *stdhttp.Request) phttp.Response {
	return phttp.OK(version.Info(h.deps.ServiceName))
}
