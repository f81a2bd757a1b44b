package scorer

import "testing"

func TestGrade(t *testing.T) {
	cases := map[int]string{
		100: "A+", 95: "A+", 94: "A", 90: "A", 89: "A-", 85: "A-", 84: "B+", 80: "B+",
		79: "B", 75: "B", 74: "B-", 70: "B-", 69: "C+", 65: "C+", 64: "C", 60: "C",
		59: "D", 50: "D", 49: "F", 0: "F", -3: "F",
	}
	for score, want := range cases {
		if got := Grade(score); got != want {
			t.Fatalf("Grade(%d) = %s, want %s", score, got, want)
		}
	}
	if g := Grades(); len(g) != 10 || g[0] != "A+" || g[9] != "F" {
		t.Fatalf("Grades() = %v", g)
	}
}

func TestOverall(t *testing.T) {
	cases := []struct {
		title, tags, desc, kw int
		want                  int
	}{
		{54, 100, 100, 100, 86},
		{0, 0, 0, 0, 0},
		{100, 100, 100, 100, 100},
		{0, 2, 0, 0, 1}, // 0.5 rounds up
		{5, 0, 0, 0, 2}, // 1.5 rounds up
		{1, 1, 0, 0, 1}, // 0.55
		{0, 1, 0, 0, 0}, // 0.25
		{0, 0, 0, 7, 1}, // 1.4
		{200, -5, 100, 100, 75},
	}
	for _, c := range cases {
		if got := Overall(c.title, c.tags, c.desc, c.kw); got != c.want {
			t.Fatalf("Overall(%d,%d,%d,%d) = %d, want %d", c.title, c.tags, c.desc, c.kw, got, c.want)
		}
	}
	if WeightTitle+WeightTags+WeightDescription+WeightKeywords != 100 {
		t.Fatalf("weights must sum to 100")
	}
}
