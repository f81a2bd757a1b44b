// Package http provides http transport for seo
package http

import (
	"math"
	stdhttp "net/http"
	"strings"

	"listingseo/internal/modkit/httpkit"
	perr "listingseo/internal/platform/errors"
	"listingseo/internal/services/api/seo/domain"
	svc "listingseo/internal/services/api/seo/service"
)

// Register mounts seo endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// stateless scoring
	httpkit.PostJSON[domain.Listing](r, "/score", h.score)
	httpkit.Get(r, "/seasonal", h.seasonal)
	httpkit.Get(r, "/grade", h.grade)

	// report history
	httpkit.CreateJSON[domain.SaveInput](r, "/reports", h.save)
	httpkit.Get(r, "/reports", h.list)
	httpkit.Get(r, "/reports/{id}", h.get)

	// analytics
	httpkit.Get(r, "/stats", h.stats)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /seo/score SEO seoScore
// @Summary Score a listing
// @Tags SEO
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Tip locale when the body has none"
// @Param payload body domain.Listing true "Listing"
// @Success 200 {object} scorer.Report "ok"
// @Router /seo/score [post]
func (h *handlers) score(r *stdhttp.Request, in domain.Listing) (any, error) {
	return h.svc.Score(r.Context(), in)
}

// swagger:route GET /seo/seasonal SEO seoSeasonal
// @Summary Seasonal keywords for a month
// @Tags SEO
// @Produce json
// @Param month query int false "Month 1..12, current month when absent"
// @Success 200 {object} domain.SeasonalOut "ok"
// @Router /seo/seasonal [get]
func (h *handlers) seasonal(r *stdhttp.Request) (any, error) {
	if strings.TrimSpace(r.URL.Query().Get("month")) == "" {
		return h.svc.SeasonalNow(r.Context()), nil
	}
	month, err := httpkit.QueryInt(r, "month", 0, math.MinInt32, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	return h.svc.Seasonal(r.Context(), month), nil
}

// swagger:route GET /seo/grade SEO seoGrade
// @Summary Letter grade for a score
// @Tags SEO
// @Produce json
// @Param score query int true "Score 0..100"
// @Success 200 {object} domain.GradeOut "ok"
// @Router /seo/grade [get]
func (h *handlers) grade(r *stdhttp.Request) (any, error) {
	if strings.TrimSpace(r.URL.Query().Get("score")) == "" {
		return nil, perr.WithField(perr.InvalidArgf("score is required"), "score")
	}
	score, err := httpkit.QueryInt(r, "score", 0, 0, 100)
	if err != nil {
		return nil, err
	}
	return h.svc.Grade(score), nil
}

// swagger:route POST /seo/reports SEO seoSaveReport
// @Summary Score a listing and keep the report
// @Tags SEO
// @Accept json
// @Produce json
// @Param payload body domain.SaveInput true "Listing"
// @Success 201 {object} domain.StoredReport "created"
// @Failure 503 {object} ErrorResponse "history not configured"
// @Router /seo/reports [post]
func (h *handlers) save(r *stdhttp.Request, in domain.SaveInput) (any, error) {
	return h.svc.Save(r.Context(), in)
}

// swagger:route GET /seo/reports SEO seoListReports
// @Summary Newest stored reports
// @Tags SEO
// @Produce json
// @Param listing_ref query string false "Only reports for this listing"
// @Param limit query int false "1..200, default 50"
// @Success 200 {array} domain.ReportSummary "ok"
// @Router /seo/reports [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	ref, err := httpkit.QueryString(r, "listing_ref", 200)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", domain.DefaultLimit, 1, domain.MaxLimit)
	if err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), domain.ListQuery{ListingRef: ref, Limit: limit})
}

// swagger:route GET /seo/reports/{id} SEO seoGetReport
// @Summary A stored report
// @Tags SEO
// @Produce json
// @Param id path string true "Report id"
// @Success 200 {object} domain.StoredReport "ok"
// @Failure 404 {object} ErrorResponse "unknown id"
// @Router /seo/reports/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.URLParam(r, "id"))
}

// swagger:route GET /seo/stats SEO seoStats
// @Summary Score aggregates over recent days
// @Tags SEO
// @Produce json
// @Param days query int false "1..365, default 30"
// @Success 200 {object} domain.Stats "ok"
// @Router /seo/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	days, err := httpkit.QueryInt(r, "days", domain.DefaultDays, 1, domain.MaxDays)
	if err != nil {
		return nil, err
	}
	return h.svc.Stats(r.Context(), days)
}
