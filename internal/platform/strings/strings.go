// Package strings holds small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def when in is empty
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustPrefix normalizes a mount path like " reports/ " to "/reports".
// It panics on an empty or root path
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), "/ ")
	if s == "/" {
		panic("mount prefix is required")
	}
	return s
}

// Clip returns at most n runes of s, marking a cut with an ellipsis
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos] + "…"
		}
		i++
	}
	return s
}
