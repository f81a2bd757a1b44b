package module

import (
	"context"

	"listingseo/internal/core/scorer"
	"listingseo/internal/services/api/seo/domain"
	seosvc "listingseo/internal/services/api/seo/service"
)

// Ports is what the seo module exports to other modules
type Ports interface {
	domain.ServicePort
	domain.InfoPort
}

type adaptSEOPort struct{ svc seosvc.Service }

// Score scores a listing
func (a adaptSEOPort) Score(ctx context.Context, in domain.Listing) (scorer.Report, error) {
	return a.svc.Score(ctx, in)
}

// Seasonal returns the keywords for a month
func (a adaptSEOPort) Seasonal(ctx context.Context, month int) domain.SeasonalOut {
	return a.svc.Seasonal(ctx, month)
}

// SeasonalNow returns the keywords for the current month
func (a adaptSEOPort) SeasonalNow(ctx context.Context) domain.SeasonalOut {
	return a.svc.SeasonalNow(ctx)
}

// Grade maps a score to a letter grade
func (a adaptSEOPort) Grade(score int) domain.GradeOut { return a.svc.Grade(score) }

// Save scores and stores a listing
func (a adaptSEOPort) Save(ctx context.Context, in domain.SaveInput) (domain.StoredReport, error) {
	return a.svc.Save(ctx, in)
}

// Get loads a stored report
func (a adaptSEOPort) Get(ctx context.Context, id string) (domain.StoredReport, error) {
	return a.svc.Get(ctx, id)
}

// List returns stored report summaries
func (a adaptSEOPort) List(ctx context.Context, q domain.ListQuery) ([]domain.ReportSummary, error) {
	return a.svc.List(ctx, q)
}

// Stats aggregates score events
func (a adaptSEOPort) Stats(ctx context.Context, days int) (domain.Stats, error) {
	return a.svc.Stats(ctx, days)
}

// ScorerInfo describes the scoring rules in force
func (a adaptSEOPort) ScorerInfo() domain.ScorerInfo { return a.svc.ScorerInfo() }
