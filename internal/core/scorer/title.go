package scorer

import "strings"

const (
	frontWindowRunes = 40
	frontWindowWords = 5
)

// TitleFactors breaks a title score into its five factors
type TitleFactors struct {
	Length       int `json:"length"`        // 0..25
	FrontLoading int `json:"front_loading"` // 0..25
	Structure    int `json:"structure"`     // 0..15
	Richness     int `json:"richness"`      // 0..20
	Filler       int `json:"filler"`        // 0..15, what is left after penalties
}

// Total sums the factors, capped at 100
func (f TitleFactors) Total() int {
	return min(f.Length+f.FrontLoading+f.Structure+f.Richness+f.Filler, 100)
}

func (lx *lexicon) title(title string) TitleFactors {
	if title == "" {
		return TitleFactors{}
	}
	lower := strings.ToLower(title)
	words := strings.Fields(lower)

	return TitleFactors{
		Length:       titleLengthPoints(runeLen(title)),
		FrontLoading: lx.frontLoading(lower),
		Structure:    titleStructure(title),
		Richness:     lx.richness(lower, words),
		Filler:       lx.fillerLeft(lower, words),
	}
}

func titleLengthPoints(n int) int {
	switch {
	case n > 140:
		return 5
	case n >= 120:
		return 25
	case n >= 100:
		return 22
	case n >= 80:
		return 18
	case n >= 60:
		return 12
	default:
		return 8
	}
}

// frontLoading scores the first words of the 40 rune window. A word counts when it
// is a high value keyword itself, or when any long high value keyword sits in the window
func (lx *lexicon) frontLoading(lower string) int {
	window := head(lower, frontWindowRunes)
	first := strings.Fields(window)
	if len(first) > frontWindowWords {
		first = first[:frontWindowWords]
	}
	anyInWindow := containsAny(window, lx.longHV)

	hits := 0
	for _, w := range first {
		if anyInWindow || lx.isHighValue(w) {
			hits++
		}
	}
	return min(hits*8, 25)
}

func titleStructure(title string) int {
	pts := 0
	if hasSeparator(title) {
		pts += 10
	}
	if !allUpper(title) {
		pts += 5
	}
	return pts
}

func (lx *lexicon) richness(lower string, words []string) int {
	terms := make(map[string]struct{}, 2*len(words))
	for i, w := range words {
		terms[w] = struct{}{}
		if i+1 < len(words) {
			terms[w+" "+words[i+1]] = struct{}{}
		}
	}
	hits := 0
	for _, kw := range lx.highValue {
		if _, ok := terms[kw]; ok || strings.Contains(lower, kw) {
			hits++
		}
	}
	return min(hits*4, 20)
}

func (lx *lexicon) fillerLeft(lower string, words []string) int {
	penalty := 0
	for _, w := range words {
		if lx.isFiller(w) {
			penalty += 2
		}
	}
	if containsAny(lower, lx.spam) {
		penalty += 10
	}
	return max(15-penalty, 0)
}
