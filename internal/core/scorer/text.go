package scorer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// runeLen counts code points, which is how every length band is measured
func runeLen(s string) int { return utf8.RuneCountInString(s) }

// head returns the first n code points of s
func head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// countContained counts needles that occur in s at least once
func countContained(s string, needles []string) int {
	n := 0
	for _, k := range needles {
		if strings.Contains(s, k) {
			n++
		}
	}
	return n
}

// allUpper is true when s has at least one cased letter and no lower-case ones
func allUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func hasSeparator(title string) bool {
	return strings.Contains(title, "|") || strings.Contains(title, " - ")
}

// isEmoji covers the pictograph block and the misc symbols and dingbats blocks
func isEmoji(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1F9FF) || (r >= 0x2600 && r <= 0x27BF)
}

func countEmoji(s string) int {
	n := 0
	for _, r := range s {
		if isEmoji(r) {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
