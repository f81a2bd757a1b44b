package scorer

import "strings"

// KeywordFactors breaks the cross-field consistency score into its four factors
type KeywordFactors struct {
	Overlap       int `json:"overlap"`       // 0..25
	Reinforcement int `json:"reinforcement"` // 0..25, 0 without a description
	Variety       int `json:"variety"`       // 0..25
	Density       int `json:"density"`       // 0..25
	SharedWords   int `json:"shared_words"`  // informational
}

// Total sums the factors, capped at 100
func (f KeywordFactors) Total() int {
	return min(f.Overlap+f.Reinforcement+f.Variety+f.Density, 100)
}

func (lx *lexicon) keywords(title, desc string, tags []string) KeywordFactors {
	if title == "" || len(tags) == 0 {
		return KeywordFactors{}
	}

	titleWords := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if runeLen(w) > 2 && !lx.isFiller(w) {
			titleWords[w] = struct{}{}
		}
	}

	tagWords := map[string]struct{}{}
	phrases := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		// a blank tag stays in the phrase set and is contained in any description
		p := strings.ToLower(strings.TrimSpace(t))
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			phrases = append(phrases, p)
		}
		for _, w := range strings.Fields(p) {
			if !lx.isFiller(w) {
				tagWords[w] = struct{}{}
			}
		}
	}

	shared := 0
	for w := range titleWords {
		if _, ok := tagWords[w]; ok {
			shared++
		}
	}

	f := KeywordFactors{
		Overlap:     overlapPoints(shared),
		Variety:     variety(titleWords, tagWords),
		SharedWords: shared,
	}

	if desc != "" {
		lower := strings.ToLower(desc)
		f.Reinforcement = phraseReinforcement(countContained(lower, phrases)) +
			wordReinforcement(countKeysIn(lower, titleWords))
	}

	all := strings.ToLower(title + " " + desc + " " + strings.Join(tags, " "))
	f.Density = min(countContained(all, lx.highValue)*3, 25)
	return f
}

func overlapPoints(shared int) int {
	switch {
	case shared == 0:
		return 15
	case shared <= 3:
		return 25
	default:
		return 10
	}
}

func phraseReinforcement(n int) int {
	switch {
	case n >= 5:
		return 15
	case n >= 3:
		return 10
	default:
		return 5
	}
}

func wordReinforcement(n int) int {
	switch {
	case n >= 5:
		return 10
	case n >= 3:
		return 7
	default:
		return 3
	}
}

// variety counts words over the title word set and the tag word set, each set
// contributing a word once, and takes 5 points per word seen more than 3 times
func variety(titleWords, tagWords map[string]struct{}) int {
	freq := make(map[string]int, len(titleWords)+len(tagWords))
	for w := range titleWords {
		freq[w]++
	}
	for w := range tagWords {
		freq[w]++
	}
	over := 0
	for _, c := range freq {
		if c > 3 {
			over++
		}
	}
	return max(25-5*over, 0)
}

func countKeysIn(s string, set map[string]struct{}) int {
	n := 0
	for k := range set {
		if strings.Contains(s, k) {
			n++
		}
	}
	return n
}
