package domain

import (
	"context"

	"listingseo/internal/core/scorer"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Score(ctx context.Context, in Listing) (scorer.Report, error)
	Seasonal(ctx context.Context, month int) SeasonalOut
	SeasonalNow(ctx context.Context) SeasonalOut
	Grade(score int) GradeOut
	Save(ctx context.Context, in SaveInput) (StoredReport, error)
	Get(ctx context.Context, id string) (StoredReport, error)
	List(ctx context.Context, q ListQuery) ([]ReportSummary, error)
	Stats(ctx context.Context, days int) (Stats, error)
}

// ScorerInfo describes the scoring rules in force, for the meta module
type ScorerInfo struct {
	Version       int            `json:"version" example:"1"`
	DefaultLocale string         `json:"default_locale" example:"sv"`
	Locales       []string       `json:"locales" example:"en,sv"`
	Weights       map[string]int `json:"weights"`
	Grades        []string       `json:"grades" example:"A+,A,A-,B+,B,B-,C+,C,D,F"`
	MaxTips       int            `json:"max_tips" example:"6"`
	MaxTags       int            `json:"max_tags" example:"13"`
	TaxonomyRev   int            `json:"taxonomy_version" example:"1"`
}

// InfoPort is what the seo module exports to the registry
type InfoPort interface {
	ScorerInfo() ScorerInfo
}
