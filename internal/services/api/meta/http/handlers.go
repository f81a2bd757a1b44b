// Package http provides meta endpoints
package http

import (
	"context"
	"net/http"
	"time"

	"listingseo/internal/core/version"
	"listingseo/internal/modkit/httpkit"
	"listingseo/internal/modkit/repokit"
	"listingseo/internal/services/api/seo/domain"
)

// Deps are the handler dependencies. A nil PG or CH is reported as skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          repokit.Pinger
	CH          repokit.Pinger
	Scorer      func() domain.ScorerInfo
	Now         func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	if d.Scorer != nil {
		httpkit.Get(r, "/scorer", h.scorer)
	}
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"listingseo-api"`
	Started string `json:"started"  example:"2025-12-01T09:00:00Z"`
	Now     string `json:"now"      example:"2025-12-01T09:05:00Z"`
	Uptime  int64  `json:"uptime"   example:"300"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"pg: dial tcp 127.0.0.1:5432: connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-12-01T09:05:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	now := h.deps.Now()
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     now.UTC().Format(time.RFC3339),
		Uptime:  int64(now.Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := func(name string, p repokit.Pinger) ReadyCheck {
		if p == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if err := repokit.Check(ctx, name, p); err != nil {
			return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
		}
		return ReadyCheck{Name: name, Status: "ok"}
	}

	checks := []ReadyCheck{check("pg", h.deps.PG), check("ch", h.deps.CH)}
	return ReadyResponse{
		Status: overall(checks),
		Checks: checks,
		Now:    h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

// overall is fail when any check failed, degraded when a backend is skipped
func overall(checks []ReadyCheck) string {
	out := "ok"
	for _, c := range checks {
		switch c.Status {
		case "fail":
			return "fail"
		case "skipped":
			out = "degraded"
		}
	}
	return out
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.For(h.deps.ServiceName), nil
}

// swagger:route GET /meta/scorer Meta metaScorer
// @Summary Scoring rules in force
// @Tags Meta
// @Produce json
// @Success 200 {object} domain.ScorerInfo "ok"
// @Router /meta/scorer [get]
func (h *handlers) scorer(_ *http.Request) (any, error) {
	return h.deps.Scorer(), nil
}
