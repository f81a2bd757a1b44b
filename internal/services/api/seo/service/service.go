// Package service contains seo scoring and report history workflows
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"listingseo/internal/core/scorer"
	"listingseo/internal/modkit/repokit"
	perr "listingseo/internal/platform/errors"
	"listingseo/internal/platform/logger"
	pnet "listingseo/internal/platform/net"
	"listingseo/internal/services/api/seo/domain"
	"listingseo/internal/services/api/seo/repo"
)

// Service defines the seo service contract
type Service interface {
	domain.ServicePort
	domain.InfoPort
}

// Svc implements the seo service. History needs db, stats need events;
// either may be nil and the matching operations then report unavailable
type Svc struct {
	engine *scorer.Engine
	binder repokit.Binder[repo.Reports]
	db     repokit.TxRunner
	events repo.Events
	log    *logger.Logger

	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// Option tunes a Svc
type Option func(*Svc)

// WithClock sets the clock report timestamps are taken from
func WithClock(now func() time.Time) Option { return func(s *Svc) { s.now = now } }

// WithIDs sets the report id generator
func WithIDs(gen func() (uuid.UUID, error)) Option { return func(s *Svc) { s.newID = gen } }

// WithLogger sets the service logger
func WithLogger(l *logger.Logger) Option { return func(s *Svc) { s.log = l } }

// New constructs an seo service
func New(engine *scorer.Engine, db repokit.TxRunner, binder repokit.Binder[repo.Reports], events repo.Events, opts ...Option) *Svc {
	if engine == nil {
		panic("seo.Service requires a non nil Engine")
	}
	if binder == nil {
		panic("seo.Service requires a non nil Repo binder")
	}
	s := &Svc{
		engine: engine,
		binder: binder,
		db:     db,
		events: events,
		log:    logger.Nop(),
		now:    time.Now,
		newID:  uuid.NewV7,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// engineFor picks the tip locale: explicit, then negotiated on ctx, then the engine default
func (s *Svc) engineFor(ctx context.Context, locale string) *scorer.Engine {
	if locale == "" {
		locale = pnet.Locale(ctx)
	}
	if locale == "" {
		return s.engine
	}
	return s.engine.In(locale)
}

// Score scores a listing
func (s *Svc) Score(ctx context.Context, in domain.Listing) (scorer.Report, error) {
	return s.engineFor(ctx, in.Locale).Score(in.Title, in.Description, in.Tags), nil
}

// SeasonalNow returns the keywords for the current month
func (s *Svc) SeasonalNow(ctx context.Context) domain.SeasonalOut {
	return s.Seasonal(ctx, s.engine.Month())
}

// Seasonal returns the keywords for month, the fallback list outside 1..12
func (s *Svc) Seasonal(_ context.Context, month int) domain.SeasonalOut {
	kw := s.engine.SeasonalFor(month)
	if kw == nil {
		kw = []string{}
	}
	return domain.SeasonalOut{Month: month, Keywords: kw}
}

// Grade maps a score to its letter grade
func (s *Svc) Grade(score int) domain.GradeOut {
	return domain.GradeOut{Score: score, Grade: scorer.Grade(score)}
}

// Save scores a listing, stores the report and emits its analytics event
func (s *Svc) Save(ctx context.Context, in domain.SaveInput) (domain.StoredReport, error) {
	if s.db == nil {
		return domain.StoredReport{}, perr.Unavailablef("report history is not configured")
	}
	id, err := s.newID()
	if err != nil {
		return domain.StoredReport{}, perr.Wrap(err, perr.ErrorCodeUnknown, "report id")
	}
	eng := s.engineFor(ctx, in.Locale)
	out := domain.StoredReport{
		ID:          id.String(),
		ListingRef:  strings.TrimSpace(in.ListingRef),
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		Locale:      eng.Locale(),
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
		Report:      eng.Score(in.Title, in.Description, in.Tags),
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}

	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, out)
	})
	if err != nil {
		return domain.StoredReport{}, err
	}

	if s.events != nil {
		if err := s.events.Emit(ctx, domain.EventFor(out)); err != nil {
			l := logger.Attach(ctx, *s.log)
			l.Warn().Err(err).Str("report_id", out.ID).Msg("score event not recorded")
		}
	}
	return out, nil
}

// Get loads a stored report by id
func (s *Svc) Get(ctx context.Context, id string) (domain.StoredReport, error) {
	uid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return domain.StoredReport{}, perr.WithField(perr.InvalidArgf("id must be a uuid"), "id")
	}
	if s.db == nil {
		return domain.StoredReport{}, perr.Unavailablef("report history is not configured")
	}
	out, err := s.binder.Bind(s.db).Get(ctx, uid.String())
	if errors.Is(err, repokit.ErrNoRows) {
		return domain.StoredReport{}, perr.NotFoundf("report %s not found", uid)
	}
	return out, err
}

// List returns the newest stored reports, optionally for one listing
func (s *Svc) List(ctx context.Context, q domain.ListQuery) ([]domain.ReportSummary, error) {
	if s.db == nil {
		return nil, perr.Unavailablef("report history is not configured")
	}
	if q.Limit <= 0 {
		q.Limit = domain.DefaultLimit
	}
	if q.Limit > domain.MaxLimit {
		q.Limit = domain.MaxLimit
	}
	return s.binder.Bind(s.db).List(ctx, q)
}

// Stats aggregates score events over the last days
func (s *Svc) Stats(ctx context.Context, days int) (domain.Stats, error) {
	if s.events == nil {
		return domain.Stats{}, perr.Unavailablef("score analytics is not configured")
	}
	if days <= 0 {
		days = domain.DefaultDays
	}
	if days > domain.MaxDays {
		days = domain.MaxDays
	}
	out, err := s.events.Stats(ctx, s.now().UTC().AddDate(0, 0, -days))
	if err != nil {
		return domain.Stats{}, err
	}
	out.Days = days
	return out, nil
}

// ScorerInfo describes the scoring rules in force
func (s *Svc) ScorerInfo() domain.ScorerInfo {
	return domain.ScorerInfo{
		Version:       scorer.Version,
		DefaultLocale: s.engine.Locale(),
		Locales:       s.engine.Catalog().Supported(),
		Weights: map[string]int{
			"title":       scorer.WeightTitle,
			"tags":        scorer.WeightTags,
			"description": scorer.WeightDescription,
			"keywords":    scorer.WeightKeywords,
		},
		Grades:      scorer.Grades(),
		MaxTips:     scorer.MaxTips,
		MaxTags:     scorer.MaxTags,
		TaxonomyRev: s.engine.Taxonomy().Version(),
	}
}
