package scorer

import (
	"math"
	"strings"

	"listingseo/internal/core/taxonomy"
)

// Analysis is descriptive detail about a listing with no scoring role
type Analysis struct {
	KeywordCategoriesFound CategoriesFound `json:"keyword_categories_found"`
	TitleAnalysis          TitleAnalysis   `json:"title_analysis"`
	TagAnalysis            TagAnalysis     `json:"tag_analysis"`
	SeasonalRelevance      []string        `json:"seasonal_relevance"`
}

// CategoriesFound lists keywords of each category found in the title, in declaration order
type CategoriesFound struct {
	ProductTypes []string `json:"product_types"`
	Formats      []string `json:"formats"`
	Styles       []string `json:"styles"`
	Occasions    []string `json:"occasions"`
}

// TitleAnalysis describes title structure
type TitleAnalysis struct {
	Length         int  `json:"length"`
	OptimalLength  bool `json:"optimal_length"`
	UsesSeparators bool `json:"uses_separators"`
	FrontLoaded    bool `json:"front_loaded"`
}

// TagAnalysis describes the tag list
type TagAnalysis struct {
	Count          int     `json:"count"`
	MultiWordCount int     `json:"multi_word_count"`
	AvgLength      float64 `json:"avg_length"`
	UniqueCount    int     `json:"unique_count"`
}

func (lx *lexicon) analyze(title string, tags []string, seasonal []string) Analysis {
	lower := strings.ToLower(title)
	found := CategoriesFound{
		ProductTypes: lx.foundIn(lower, taxonomy.Product),
		Formats:      lx.foundIn(lower, taxonomy.Format),
		Styles:       lx.foundIn(lower, taxonomy.Style),
		Occasions:    lx.foundIn(lower, taxonomy.Occasion),
	}

	n := runeLen(title)
	ta := TitleAnalysis{
		Length:         n,
		OptimalLength:  n >= 120 && n <= 140,
		UsesSeparators: hasSeparator(title),
		FrontLoaded:    len(found.ProductTypes) > 0 || len(found.Formats) > 0,
	}

	tg := TagAnalysis{Count: len(tags)}
	if len(tags) > 0 {
		unique := make(map[string]struct{}, len(tags))
		total := 0
		for _, t := range tags {
			if strings.Contains(t, " ") {
				tg.MultiWordCount++
			}
			total += runeLen(t)
			unique[strings.ToLower(t)] = struct{}{}
		}
		tg.UniqueCount = len(unique)
		tg.AvgLength = math.Round(float64(total)/float64(len(tags))*100) / 100
	}

	if seasonal == nil {
		seasonal = []string{}
	}
	return Analysis{
		KeywordCategoriesFound: found,
		TitleAnalysis:          ta,
		TagAnalysis:            tg,
		SeasonalRelevance:      seasonal,
	}
}

// foundIn never returns nil so the JSON form is always an array
func (lx *lexicon) foundIn(lower string, c taxonomy.Category) []string {
	out := []string{}
	if lower == "" {
		return out
	}
	for _, kw := range lx.categories[c] {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}
