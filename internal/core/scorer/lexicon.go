package scorer

import "listingseo/internal/core/taxonomy"

// hookKeywordCount is how many leading high value keywords the description hook looks for
const hookKeywordCount = 20

// lexicon is the scorer's read-only view of a taxonomy table
type lexicon struct {
	table *taxonomy.Table

	highValue  []string
	hookTerms  []string
	longHV     []string // high value keywords longer than 3 bytes
	filler     map[string]struct{}
	spam       []string
	categories map[taxonomy.Category][]string
}

// coverageCategories are the tag coverage categories, in scoring order
var coverageCategories = []taxonomy.Category{
	taxonomy.Product,
	taxonomy.Format,
	taxonomy.Style,
	taxonomy.Occasion,
	taxonomy.Recipient,
}

func newLexicon(t *taxonomy.Table) *lexicon {
	hv := t.HighValue()
	lx := &lexicon{
		table:      t,
		highValue:  hv,
		filler:     map[string]struct{}{},
		spam:       t.Terms(taxonomy.Spam),
		categories: map[taxonomy.Category][]string{},
	}
	lx.hookTerms = hv
	if len(hv) > hookKeywordCount {
		lx.hookTerms = hv[:hookKeywordCount]
	}
	for _, k := range hv {
		if len(k) > 3 {
			lx.longHV = append(lx.longHV, k)
		}
	}
	for _, w := range t.Terms(taxonomy.Filler) {
		lx.filler[w] = struct{}{}
	}
	for _, c := range t.Categories() {
		lx.categories[c] = t.Terms(c)
	}
	return lx
}

func (lx *lexicon) isFiller(w string) bool {
	_, ok := lx.filler[w]
	return ok
}

func (lx *lexicon) isHighValue(w string) bool { return lx.table.IsHighValue(w) }

var defaultLexicon = newLexicon(taxonomy.Default())
