package scorer

import (
	"regexp"
	"strings"
)

const hookWindowRunes = 160

var (
	hookMarkers = []string{
		"✨", "⭐", "🎁", "💫", "🔥",
		"perfect", "beautiful", "unique", "handmade", "premium",
		"instant", "download", "included", "gift",
	}

	bulletMarkers = []string{"•", "✓", "✔", "★", "►", "→", "·", "-  "}

	capsHeader  = regexp.MustCompile(`[A-Z]{4,}:`)
	emojiHeader = regexp.MustCompile(`[🎁📦💡✨⭐🔥📩][A-Z\s]+:`)

	// one trigger list per section: included, features, how it works, faq, call to action
	sectionTriggers = [][]string{
		{"what you get", "included", "what's included", "you will receive"},
		{"feature", "benefit", "perfect for", "great for", "ideal for"},
		{"how to", "how it works", "instructions", "steps"},
		{"faq", "question", "note:", "please note"},
		{"favorite", "follow", "shop", "message", "contact"},
	}
)

// DescriptionFactors breaks a description score into its six factors
type DescriptionFactors struct {
	Length     int `json:"length"`      // 0..20
	Hook       int `json:"hook"`        // 0..15
	Structure  int `json:"structure"`   // 0..20
	Emoji      int `json:"emoji"`       // 0..10
	Sections   int `json:"sections"`    // 0..20
	Keywords   int `json:"keywords"`    // 0..15
	EmojiCount int `json:"emoji_count"` // informational
}

// Total sums the factors, capped at 100
func (f DescriptionFactors) Total() int {
	return min(f.Length+f.Hook+f.Structure+f.Emoji+f.Sections+f.Keywords, 100)
}

func (lx *lexicon) description(desc string) DescriptionFactors {
	if desc == "" {
		return DescriptionFactors{}
	}
	lower := strings.ToLower(desc)
	emoji := countEmoji(desc)

	f := DescriptionFactors{
		Length:     descriptionLengthPoints(runeLen(desc)),
		Hook:       lx.hook(head(lower, hookWindowRunes)),
		Structure:  descriptionStructure(desc),
		Emoji:      emojiPoints(emoji),
		EmojiCount: emoji,
		Keywords:   min(countContained(lower, lx.highValue)*2, 15),
	}
	found := 0
	for _, triggers := range sectionTriggers {
		if containsAny(lower, triggers) {
			found++
		}
	}
	f.Sections = min(found*4, 20)
	return f
}

func descriptionLengthPoints(n int) int {
	switch {
	case n >= 800 && n <= 2000:
		return 20
	case n >= 500 && n < 800:
		return 16
	case n > 2000 && n <= 3000:
		return 18
	case n >= 300 && n < 500:
		return 12
	default:
		return 6
	}
}

func (lx *lexicon) hook(window string) int {
	pts := 0
	if containsAny(window, hookMarkers) {
		pts += 8
	}
	if containsAny(window, lx.hookTerms) {
		pts += 7
	}
	return pts
}

func descriptionStructure(desc string) int {
	pts := 0
	if containsAny(desc, bulletMarkers) {
		pts += 8
	}
	if capsHeader.MatchString(desc) || emojiHeader.MatchString(desc) {
		pts += 6
	}
	switch lines := strings.Count(desc, "\n"); {
	case lines >= 5:
		pts += 6
	case lines >= 3:
		pts += 4
	}
	return min(pts, 20)
}

func emojiPoints(n int) int {
	switch {
	case n >= 3 && n <= 15:
		return 10
	case n > 0:
		return 5
	default:
		return 0
	}
}
