// Package domain holds DTOs for seo http and service contracts
package domain

import (
	"time"

	"listingseo/internal/core/scorer"
)

// Listing is the copy being scored
type Listing struct {
	Title       string   `json:"title" validate:"max=1000" example:"Personalized Ceramic Mug | Custom Name Coffee Cup | Gift for Her"`
	Description string   `json:"description" validate:"max=20000" example:"Start your morning with a handmade mug personalized with any name"`
	Tags        []string `json:"tags" validate:"max=13,dive,max=100" example:"personalized mug,custom name cup,gift for her"`
	// locale of the tips, negotiated from Accept-Language when empty
	Locale string `json:"locale,omitempty" validate:"omitempty,oneof=en sv" example:"en"`
}

// SaveInput scores a listing and keeps the report
type SaveInput struct {
	Listing
	ListingRef string `json:"listing_ref,omitempty" validate:"omitempty,max=200" example:"etsy:1234567890"`
}

// SeasonalOut lists the keywords that sell in a month
type SeasonalOut struct {
	Month    int      `json:"month" example:"12"`
	Keywords []string `json:"keywords" example:"christmas,holiday,gift"`
}

// GradeOut is a score and its letter grade
type GradeOut struct {
	Score int    `json:"score" example:"82"`
	Grade string `json:"grade" example:"B+"`
}

// StoredReport is a persisted scoring result
type StoredReport struct {
	ID          string        `json:"id" example:"0192f3a4-7c1e-7b2a-9c4d-5e6f7a8b9c0d"`
	ListingRef  string        `json:"listing_ref" example:"etsy:1234567890"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	Locale      string        `json:"locale" example:"en"`
	CreatedAt   time.Time     `json:"created_at"`
	Report      scorer.Report `json:"report"`
}

// ReportSummary is one row of the history listing
type ReportSummary struct {
	ID           string    `json:"id"`
	ListingRef   string    `json:"listing_ref"`
	OverallScore int       `json:"overall_score" example:"74"`
	Grade        string    `json:"grade" example:"B-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListQuery filters the history listing
type ListQuery struct {
	ListingRef string
	Limit      int
}

// Report list bounds
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Stats aggregates score events over a window
type Stats struct {
	Days           int               `json:"days" example:"30"`
	Reports        uint64            `json:"reports" example:"1280"`
	AvgOverall     float64           `json:"avg_overall" example:"71.4"`
	AvgTitle       float64           `json:"avg_title" example:"76.2"`
	AvgDescription float64           `json:"avg_description" example:"63.9"`
	AvgTags        float64           `json:"avg_tags" example:"70.1"`
	AvgKeywords    float64           `json:"avg_keywords" example:"74.8"`
	Grades         map[string]uint64 `json:"grades"`
}

// Stats window bounds in days
const (
	DefaultDays = 30
	MaxDays     = 365
)

// ScoreEvent is the analytics row emitted for every stored report
type ScoreEvent struct {
	At               time.Time
	ReportID         string
	ListingRef       string
	Locale           string
	OverallScore     int
	Grade            string
	TitleScore       int
	DescriptionScore int
	TagScore         int
	KeywordScore     int
}

// EventFor derives the analytics row of a stored report
func EventFor(r StoredReport) ScoreEvent {
	b := r.Report.Breakdown
	return ScoreEvent{
		At:               r.CreatedAt,
		ReportID:         r.ID,
		ListingRef:       r.ListingRef,
		Locale:           r.Locale,
		OverallScore:     r.Report.OverallScore,
		Grade:            r.Report.Grade,
		TitleScore:       b.TitleScore,
		DescriptionScore: b.DescriptionScore,
		TagScore:         b.TagScore,
		KeywordScore:     b.KeywordScore,
	}
}
