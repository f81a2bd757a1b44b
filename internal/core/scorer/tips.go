package scorer

import (
	"slices"
	"strconv"
	"strings"

	"listingseo/internal/core/tipcopy"
)

// Priority ranks a tip
type Priority string

// Tip priorities, highest first
const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case High:
		return 0
	case Medium:
		return 1
	default:
		return 2
	}
}

// MaxTips caps the tip list
const MaxTips = 6

// Score thresholds below which a field gets tips
const (
	fieldTipThreshold   = 80
	keywordTipThreshold = 70
	seasonalTipKeywords = 3
)

var tipEmoji = []string{"✨", "📦", "🎁", "⭐", "💡"}

// Tip is a single improvement suggestion
type Tip struct {
	Priority Priority `json:"priority"`
	Field    string   `json:"field"`
	Tip      string   `json:"tip"`
	Impact   string   `json:"impact"`
}

type tipWriter struct {
	cat    *tipcopy.Catalog
	locale string
	out    []Tip
}

func (w *tipWriter) add(p Priority, field string, msg, impact tipcopy.Key, params ...string) {
	w.out = append(w.out, Tip{
		Priority: p,
		Field:    field,
		Tip:      w.cat.Text(w.locale, msg, params...),
		Impact:   w.cat.Text(w.locale, impact),
	})
}

func (e *Engine) tips(title, desc string, tags []string, b Breakdown, seasonal []string) []Tip {
	w := &tipWriter{cat: e.catalog, locale: e.locale}

	if b.TitleScore < fieldTipThreshold && title != "" {
		if n := runeLen(title); n < 100 {
			w.add(High, "title", tipcopy.TitleShort, tipcopy.ImpactTitleShort, strconv.Itoa(n))
		}
		if !hasSeparator(title) {
			w.add(Medium, "title", tipcopy.TitleSeparators, tipcopy.ImpactTitleSep)
		}
	}

	if b.DescriptionScore < fieldTipThreshold && desc != "" {
		if runeLen(desc) < 500 {
			w.add(High, "description", tipcopy.DescriptionShort, tipcopy.ImpactDescShort)
		}
		if !containsAny(desc, tipEmoji) {
			w.add(Low, "description", tipcopy.DescriptionEmoji, tipcopy.ImpactDescEmoji)
		}
	}

	if b.TagScore < fieldTipThreshold {
		if len(tags) < MaxTags {
			w.add(High, "tags", tipcopy.TagsCount, tipcopy.ImpactTagsCount, e.catalog.TagCount(e.locale, len(tags)))
		}
		multi := 0
		for _, t := range tags {
			if strings.Contains(t, " ") {
				multi++
			}
		}
		if multi < 8 {
			w.add(Medium, "tags", tipcopy.TagsLongTail, tipcopy.ImpactTagsLong)
		}
	}

	if b.KeywordScore < keywordTipThreshold {
		w.add(Medium, "keywords", tipcopy.KeywordsAlign, tipcopy.ImpactKeywords)
	}

	if len(seasonal) > seasonalTipKeywords {
		seasonal = seasonal[:seasonalTipKeywords]
	}
	w.add(Low, "seasonal", tipcopy.Seasonal, tipcopy.ImpactSeasonal, e.catalog.List(e.locale, seasonal))

	return rankTips(w.out)
}

// rankTips orders tips high, medium, low keeping emission order within a tier, then caps the list
func rankTips(tips []Tip) []Tip {
	slices.SortStableFunc(tips, func(a, b Tip) int { return a.Priority.rank() - b.Priority.rank() })
	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}
