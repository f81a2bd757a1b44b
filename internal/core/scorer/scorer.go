// Package scorer is the deterministic Etsy listing SEO scoring engine.
//
// A listing (title, description, tags) is scored per field, the field scores are
// combined with fixed weights into an overall 0..100 score and a letter grade, and a
// ranked list of at most six tips plus a descriptive analysis are attached.
// The only clock read is the month used for seasonal tips and it is injectable.
package scorer

import (
	"time"

	"listingseo/internal/core/taxonomy"
	"listingseo/internal/core/tipcopy"
)

// Version identifies the scoring rules; bump it when any factor changes
const Version = 1

// Breakdown holds the four field scores
type Breakdown struct {
	TitleScore       int `json:"title_score"`
	DescriptionScore int `json:"description_score"`
	TagScore         int `json:"tag_score"`
	KeywordScore     int `json:"keyword_score"`
}

// Report is the full scoring result
type Report struct {
	OverallScore int       `json:"overall_score"`
	Breakdown    Breakdown `json:"breakdown"`
	Tips         []Tip     `json:"tips"`
	Grade        string    `json:"grade"`
	Analysis     Analysis  `json:"analysis"`
}

// Factors is the per-factor detail behind a Breakdown
type Factors struct {
	Title       TitleFactors       `json:"title"`
	Description DescriptionFactors `json:"description"`
	Tags        TagFactors         `json:"tags"`
	Keywords    KeywordFactors     `json:"keywords"`
}

// Breakdown derives the field scores from the factors
func (f Factors) Breakdown() Breakdown {
	return Breakdown{
		TitleScore:       f.Title.Total(),
		DescriptionScore: f.Description.Total(),
		TagScore:         f.Tags.Total(),
		KeywordScore:     f.Keywords.Total(),
	}
}

// Engine scores listings. Engines are immutable and safe for concurrent use
type Engine struct {
	lx      *lexicon
	catalog *tipcopy.Catalog
	locale  string
	month   func() int
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock the seasonal month is read from
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.month = func() int { return int(now().Month()) }
		}
	}
}

// WithMonth pins the seasonal month. Values outside 1..12 yield the fallback keywords
func WithMonth(month int) Option {
	return func(e *Engine) { e.month = func() int { return month } }
}

// WithLocale sets the tip locale; unsupported values resolve to the catalog fallback
func WithLocale(locale string) Option {
	return func(e *Engine) { e.locale = locale }
}

// WithCatalog replaces the tip catalog
func WithCatalog(c *tipcopy.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithTaxonomy scores against a different keyword table
func WithTaxonomy(t *taxonomy.Table) Option {
	return func(e *Engine) {
		if t != nil {
			e.lx = newLexicon(t)
		}
	}
}

// New builds an Engine
func New(opts ...Option) *Engine {
	e := &Engine{
		lx:      defaultLexicon,
		catalog: tipcopy.Default(),
		month:   func() int { return int(time.Now().Month()) },
	}
	for _, o := range opts {
		o(e)
	}
	e.locale = e.catalog.Normalize(e.locale)
	return e
}

// In returns a copy of the engine that writes tips in locale
func (e *Engine) In(locale string) *Engine {
	c := *e
	c.locale = e.catalog.Normalize(locale)
	return &c
}

// Locale is the resolved tip locale
func (e *Engine) Locale() string { return e.locale }

// Catalog is the tip catalog in use
func (e *Engine) Catalog() *tipcopy.Catalog { return e.catalog }

// Month is the month seasonal tips are drawn from
func (e *Engine) Month() int { return e.month() }

// Seasonal returns the seasonal keywords for the engine's current month
func (e *Engine) Seasonal() []string { return e.SeasonalFor(e.month()) }

// SeasonalFor returns the engine's seasonal keywords for month, the fallback outside 1..12
func (e *Engine) SeasonalFor(month int) []string { return e.lx.table.Seasonal(month) }

// Taxonomy is the keyword table the engine scores against
func (e *Engine) Taxonomy() *taxonomy.Table { return e.lx.table }

// Explain returns the factor detail for a listing
func (e *Engine) Explain(title, description string, tags []string) Factors {
	return Factors{
		Title:       e.lx.title(title),
		Description: e.lx.description(description),
		Tags:        e.lx.tags(tags),
		Keywords:    e.lx.keywords(title, description, tags),
	}
}

// Score scores a listing. It accepts any input, including empty fields, and never fails
func (e *Engine) Score(title, description string, tags []string) Report {
	b := e.Explain(title, description, tags).Breakdown()
	overall := Overall(b.TitleScore, b.TagScore, b.DescriptionScore, b.KeywordScore)
	seasonal := e.Seasonal()

	return Report{
		OverallScore: overall,
		Breakdown:    b,
		Tips:         e.tips(title, description, tags, b, seasonal),
		Grade:        Grade(overall),
		Analysis:     e.lx.analyze(title, tags, seasonal),
	}
}

var std = New()

// Score scores a listing with the default engine
func Score(title, description string, tags []string) Report {
	return std.Score(title, description, tags)
}
