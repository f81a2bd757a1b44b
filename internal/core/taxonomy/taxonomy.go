// Package taxonomy loads the Etsy keyword vocabulary from the embedded keywords.json.
// Tables are built once at init and never mutated; accessors hand out copies
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

//go:embed keywords.json
var embedded []byte

// Category names a keyword table
type Category string

// Known categories, in declaration order
const (
	Product   Category = "product"
	Format    Category = "format"
	Style     Category = "style"
	Occasion  Category = "occasion"
	Recipient Category = "recipient"
	Business  Category = "business"
	Filler    Category = "filler"
	Spam      Category = "spam"
)

var known = []Category{Product, Format, Style, Occasion, Recipient, Business, Filler, Spam}

type rawCategory struct {
	Name      string   `json:"name"`
	HighValue bool     `json:"high_value"`
	Terms     []string `json:"terms"`
}

type rawTable struct {
	Version          int                 `json:"version"`
	Categories       []rawCategory       `json:"categories"`
	Seasonal         map[string][]string `json:"seasonal"`
	SeasonalFallback []string            `json:"seasonal_fallback"`
}

// Table is a compiled keyword vocabulary
type Table struct {
	version int

	order []Category
	terms map[Category][]string
	sets  map[Category]map[string]struct{}

	// union of the high value categories, first occurrence wins
	highValue []string
	hvSet     map[string]struct{}
	hvCats    map[Category]bool

	seasonal [13][]string
	fallback []string
}

// Parse compiles a keywords document
func Parse(b []byte) (*Table, error) {
	var raw rawTable
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("taxonomy: parse keywords.json: %w", err)
	}

	t := &Table{
		version: raw.Version,
		terms:   make(map[Category][]string, len(raw.Categories)),
		sets:    make(map[Category]map[string]struct{}, len(raw.Categories)),
		hvSet:   map[string]struct{}{},
		hvCats:  map[Category]bool{},
	}

	for _, c := range raw.Categories {
		cat := Category(c.Name)
		if !isKnown(cat) {
			return nil, fmt.Errorf("taxonomy: unknown category %q", c.Name)
		}
		if _, dup := t.terms[cat]; dup {
			return nil, fmt.Errorf("taxonomy: category %q declared twice", c.Name)
		}
		if len(c.Terms) == 0 {
			return nil, fmt.Errorf("taxonomy: category %q has no terms", c.Name)
		}
		set := make(map[string]struct{}, len(c.Terms))
		list := make([]string, 0, len(c.Terms))
		for _, term := range c.Terms {
			if err := checkTerm(term); err != nil {
				return nil, fmt.Errorf("taxonomy: %s: %w", c.Name, err)
			}
			if _, ok := set[term]; ok {
				continue
			}
			set[term] = struct{}{}
			list = append(list, term)
		}
		t.order = append(t.order, cat)
		t.terms[cat] = list
		t.sets[cat] = set

		if c.HighValue {
			t.hvCats[cat] = true
			for _, term := range list {
				if _, ok := t.hvSet[term]; ok {
					continue
				}
				t.hvSet[term] = struct{}{}
				t.highValue = append(t.highValue, term)
			}
		}
	}

	for _, cat := range known {
		if _, ok := t.terms[cat]; !ok {
			return nil, fmt.Errorf("taxonomy: missing category %q", cat)
		}
	}

	for month := 1; month <= 12; month++ {
		list := raw.Seasonal[strconv.Itoa(month)]
		if len(list) == 0 {
			return nil, fmt.Errorf("taxonomy: no seasonal keywords for month %d", month)
		}
		for _, term := range list {
			if err := checkTerm(term); err != nil {
				return nil, fmt.Errorf("taxonomy: seasonal %d: %w", month, err)
			}
		}
		t.seasonal[month] = list
	}
	if len(raw.SeasonalFallback) == 0 {
		return nil, fmt.Errorf("taxonomy: empty seasonal fallback")
	}
	t.fallback = raw.SeasonalFallback

	return t, nil
}

func checkTerm(term string) error {
	if strings.TrimSpace(term) != term || term == "" {
		return fmt.Errorf("term %q must be non-empty and trimmed", term)
	}
	if strings.ToLower(term) != term {
		return fmt.Errorf("term %q must be lower-case", term)
	}
	return nil
}

func isKnown(c Category) bool {
	for _, k := range known {
		if k == c {
			return true
		}
	}
	return false
}

// Version is the document version
func (t *Table) Version() int { return t.version }

// Categories returns category names in declaration order
func (t *Table) Categories() []Category { return clone(t.order) }

// Terms returns the terms of one category, nil for an unknown category
func (t *Table) Terms(c Category) []string { return clone(t.terms[c]) }

// Has reports whether term is an exact member of category c
func (t *Table) Has(c Category, term string) bool {
	_, ok := t.sets[c][term]
	return ok
}

// HighValue returns the ordered union of the high value categories
func (t *Table) HighValue() []string { return clone(t.highValue) }

// HighValueCategory reports whether c feeds the high value union
func (t *Table) HighValueCategory(c Category) bool { return t.hvCats[c] }

// IsHighValue reports exact membership in the high value union
func (t *Table) IsHighValue(term string) bool {
	_, ok := t.hvSet[term]
	return ok
}

// Seasonal returns the keywords for month 1..12, the fallback list otherwise
func (t *Table) Seasonal(month int) []string {
	if month < 1 || month > 12 {
		return clone(t.fallback)
	}
	return clone(t.seasonal[month])
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

var std = mustParse(embedded)

func mustParse(b []byte) *Table {
	t, err := Parse(b)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the compiled embedded vocabulary
func Default() *Table { return std }

// Terms returns the terms of one category from the embedded vocabulary
func Terms(c Category) []string { return std.Terms(c) }

// HighValue returns the high value union from the embedded vocabulary
func HighValue() []string { return std.HighValue() }

// Seasonal returns seasonal keywords for month from the embedded vocabulary
func Seasonal(month int) []string { return std.Seasonal(month) }
