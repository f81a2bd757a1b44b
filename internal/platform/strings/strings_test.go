package strings

import (
	"testing"

	"listingseo/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()
	if got := IfEmpty([]int{1, 2}, []int{9}); len(got) != 2 {
		t.Fatalf("kept slice replaced: %v", got)
	}
	if got := IfEmpty(nil, []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("default not used: %v", got)
	}
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]string{
		"reports":     "/reports",
		" /reports/ ": "/reports",
		"//v1/seo//":  "/v1/seo",
	} {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix(" / ") })
	testkit.MustPanic(t, func() { MustPrefix("") })
}

func TestClip(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"Boho mug", 20, "Boho mug"},
		{"Boho mug", 4, "Boho…"},
		{"Kaffekopp för mormor", 13, "Kaffekopp för…"},
		{"abc", 3, "abc"},
		{"abc", 0, ""},
	}
	for _, c := range cases {
		if got := Clip(c.in, c.n); got != c.want {
			t.Fatalf("Clip(%q,%d) = %q want %q", c.in, c.n, got, c.want)
		}
	}
}
