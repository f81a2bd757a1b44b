package scorer

// Field weights in percent, summing to 100
const (
	WeightTitle       = 30
	WeightTags        = 25
	WeightDescription = 25
	WeightKeywords    = 20
)

// Overall combines field scores as round(0.30t + 0.25g + 0.25d + 0.20k) using
// integer arithmetic with halves rounded up. Inputs are clamped to 0..100
func Overall(title, tags, description, keywords int) int {
	sum := WeightTitle*clamp(title, 0, 100) +
		WeightTags*clamp(tags, 0, 100) +
		WeightDescription*clamp(description, 0, 100) +
		WeightKeywords*clamp(keywords, 0, 100)
	return (sum + 50) / 100
}

type gradeStep struct {
	min   int
	grade string
}

var gradeLadder = []gradeStep{
	{95, "A+"},
	{90, "A"},
	{85, "A-"},
	{80, "B+"},
	{75, "B"},
	{70, "B-"},
	{65, "C+"},
	{60, "C"},
	{50, "D"},
}

// Grade maps an overall score to a letter grade, lower bounds inclusive
func Grade(score int) string {
	for _, s := range gradeLadder {
		if score >= s.min {
			return s.grade
		}
	}
	return "F"
}

// Grades lists every grade from best to worst
func Grades() []string {
	out := make([]string, 0, len(gradeLadder)+1)
	for _, s := range gradeLadder {
		out = append(out, s.grade)
	}
	return append(out, "F")
}
