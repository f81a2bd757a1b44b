package scorer

import "strings"

// MaxTags is the Etsy tag slot count
const MaxTags = 13

// TagFactors breaks a tag score into its five factors
type TagFactors struct {
	Count      int `json:"count"`      // 0..25
	Uniqueness int `json:"uniqueness"` // 0..15
	LongTail   int `json:"long_tail"`  // 0..20
	Length     int `json:"length"`     // 0..15
	Coverage   int `json:"coverage"`   // 0..25
}

// Total sums the factors, capped at 100
func (f TagFactors) Total() int {
	return min(f.Count+f.Uniqueness+f.LongTail+f.Length+f.Coverage, 100)
}

func (lx *lexicon) tags(tags []string) TagFactors {
	if len(tags) == 0 {
		return TagFactors{}
	}
	n := len(tags)

	distinct := make(map[string]struct{}, n)
	multi, sized := 0, 0
	for _, t := range tags {
		trimmed := strings.TrimSpace(t)
		distinct[strings.ToLower(trimmed)] = struct{}{}
		if strings.Contains(trimmed, " ") {
			multi++
		}
		if l := runeLen(trimmed); l >= 8 && l <= 20 {
			sized++
		}
	}

	return TagFactors{
		Count:      tagCountPoints(n),
		Uniqueness: max(15-3*(n-len(distinct)), 0),
		LongTail:   longTailPoints(multi),
		Length:     min(sized*3/2, 15),
		Coverage:   lx.coverage(tags),
	}
}

func tagCountPoints(n int) int {
	switch {
	case n == MaxTags:
		return 25
	case n >= 11:
		return 20
	case n >= 8:
		return 12
	case n >= 5:
		return 6
	default:
		return 2
	}
}

func longTailPoints(multi int) int {
	switch {
	case multi >= 10:
		return 20
	case multi >= 7:
		return 15
	case multi >= 4:
		return 10
	default:
		return 3
	}
}

// coverage awards 5 points per category with a keyword that is a token of,
// equal to, or inside some tag
func (lx *lexicon) coverage(tags []string) int {
	lowered := make([]string, len(tags))
	tokens := map[string]struct{}{}
	for i, t := range tags {
		l := strings.ToLower(t)
		lowered[i] = l
		tokens[l] = struct{}{}
		for _, w := range strings.Fields(l) {
			tokens[w] = struct{}{}
		}
	}

	pts := 0
	for _, cat := range coverageCategories {
		for _, kw := range lx.categories[cat] {
			if _, ok := tokens[kw]; ok || containsIn(lowered, kw) {
				pts += 5
				break
			}
		}
	}
	return min(pts, 25)
}

// containsIn reports whether kw occurs inside any of the haystacks
func containsIn(haystacks []string, kw string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}
