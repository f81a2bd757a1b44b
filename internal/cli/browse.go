package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"listingseo/internal/core/scorer"
	"listingseo/internal/core/taxonomy"
	"listingseo/internal/services/api/seo/domain"
)

func (a *app) seasonalCmd() *cobra.Command {
	var month int
	cmd := &cobra.Command{
		Use:   "seasonal",
		Short: "Print seasonal keywords",
		Long: `Print the keywords that sell in a month. Without --month the current month is
used; months outside 1..12 print the evergreen fallback list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("month") {
				month = int(a.now().Month())
			}
			out := domain.SeasonalOut{Month: month, Keywords: taxonomy.Seasonal(month)}
			return a.render(out, func(t *table) {
				t.header("MONTH", "KEYWORD")
				for _, k := range out.Keywords {
					t.row(strconv.Itoa(out.Month), k)
				}
			})
		},
	}
	cmd.Flags().IntVar(&month, "month", 0, "month 1..12")
	return cmd
}

func (a *app) gradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grade <score>",
		Short: "Print the letter grade for a score 0..100",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			score, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || score < 0 || score > 100 {
				return fmt.Errorf("score must be an integer between 0 and 100, got %q", args[0])
			}
			out := domain.GradeOut{Score: score, Grade: scorer.Grade(score)}
			return a.render(out, func(t *table) {
				t.header("SCORE", "GRADE")
				t.row(strconv.Itoa(out.Score), out.Grade)
			})
		},
	}
}

// categoryOut is one keyword table in keywords output
type categoryOut struct {
	Category  taxonomy.Category `json:"category"`
	HighValue bool              `json:"high_value"`
	Terms     []string          `json:"terms"`
}

func (a *app) keywordsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Print the keyword taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tbl := taxonomy.Default()
			cats := tbl.Categories()
			if category != "" {
				c := taxonomy.Category(strings.ToLower(strings.TrimSpace(category)))
				if !contains(cats, c) {
					return fmt.Errorf("unknown category %q (want one of %s)", category, joinComma(cats))
				}
				cats = []taxonomy.Category{c}
			}

			out := make([]categoryOut, 0, len(cats))
			for _, c := range cats {
				terms := tbl.Terms(c)
				out = append(out, categoryOut{Category: c, HighValue: tbl.HighValueCategory(c), Terms: terms})
			}
			return a.render(out, func(t *table) {
				if category != "" {
					t.header("CATEGORY", "TERM", "HIGH VALUE")
					for _, term := range out[0].Terms {
						t.row(string(out[0].Category), term, strconv.FormatBool(tbl.IsHighValue(term)))
					}
					return
				}
				t.header("CATEGORY", "TERMS", "SAMPLE")
				for _, c := range out {
					t.row(string(c.Category), strconv.Itoa(len(c.Terms)), sample(c.Terms, 5))
				}
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only this category")
	return cmd
}

func contains[T comparable](in []T, v T) bool {
	for _, x := range in {
		if x == v {
			return true
		}
	}
	return false
}

func joinComma[T ~string](in []T) string {
	parts := make([]string, len(in))
	for i, s := range in {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func sample(terms []string, n int) string {
	if len(terms) <= n {
		return joinComma(terms)
	}
	return joinComma(terms[:n]) + ", ..."
}
