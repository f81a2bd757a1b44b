package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"listingseo/internal/core/scorer"
	"listingseo/internal/platform/net/http/bind"
	pstrings "listingseo/internal/platform/strings"
	"listingseo/internal/services/api/seo/domain"
)

type scoreFlags struct {
	title       string
	description string
	tags        []string
	locale      string
	month       int
	explain     bool
}

func (a *app) scoreCmd() *cobra.Command {
	var f scoreFlags
	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score a listing",
		Long: `Score a listing read from a JSON, YAML or TOML file (by extension, "-" for
JSON on stdin) or given with flags. Flags override values from the file.

Examples:
  listingseo score listing.yaml
  listingseo score --title "Ceramic Mug | Gift for Her" --tag "ceramic mug" --tag "gift for her"
  listingseo score listing.toml --locale en --month 12 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.listing(cmd, args, f)
			if err != nil {
				return err
			}
			eng := a.engine(f.locale, f.month)
			if in.Locale != "" && f.locale == "" {
				eng = eng.In(in.Locale)
			}
			rep := eng.Score(in.Title, in.Description, in.Tags)

			if f.explain {
				return a.render(struct {
					Report  scorer.Report  `json:"report"`
					Factors scorer.Factors `json:"factors"`
				}{rep, eng.Explain(in.Title, in.Description, in.Tags)}, func(t *table) { reportTable(t, rep) })
			}
			return a.render(rep, func(t *table) { reportTable(t, rep) })
		},
	}
	cmd.Flags().StringVar(&f.title, "title", "", "listing title")
	cmd.Flags().StringVar(&f.description, "description", "", "listing description")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "listing tag, repeatable")
	cmd.Flags().StringVar(&f.locale, "locale", "", "tip locale (en, sv)")
	cmd.Flags().IntVar(&f.month, "month", 0, "pin the seasonal month (1..12), current month when 0")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "include per factor points in JSON output")
	return cmd
}

// listing merges the optional file with flags set on the command line
func (a *app) listing(cmd *cobra.Command, args []string, f scoreFlags) (domain.Listing, error) {
	var in domain.Listing
	if len(args) == 1 {
		var err error
		if in, err = LoadListing(args[0], cmd.InOrStdin()); err != nil {
			return in, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("title") {
		in.Title = f.title
	}
	if flags.Changed("description") {
		in.Description = f.description
	}
	if flags.Changed("tag") {
		in.Tags = f.tags
	}
	if len(args) == 0 && !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("tag") {
		return in, fmt.Errorf("nothing to score: pass a listing file or --title, --description, --tag")
	}
	return in, bind.Validate(in)
}

// engine builds a scorer for locale, pinned to month when it is not 0
func (a *app) engine(locale string, month int) *scorer.Engine {
	opts := []scorer.Option{scorer.WithLocale(locale), scorer.WithClock(a.now)}
	if month != 0 {
		opts = append(opts, scorer.WithMonth(month))
	}
	return scorer.New(opts...)
}

func reportTable(t *table, r scorer.Report) {
	t.header("SECTION", "ITEM", "VALUE")
	t.row("overall", "score", strconv.Itoa(r.OverallScore))
	t.row("overall", "grade", r.Grade)
	t.row("breakdown", "title", strconv.Itoa(r.Breakdown.TitleScore))
	t.row("breakdown", "description", strconv.Itoa(r.Breakdown.DescriptionScore))
	t.row("breakdown", "tags", strconv.Itoa(r.Breakdown.TagScore))
	t.row("breakdown", "keywords", strconv.Itoa(r.Breakdown.KeywordScore))
	for i, tip := range r.Tips {
		t.row(fmt.Sprintf("tip %d", i+1), fmt.Sprintf("%s/%s", tip.Priority, tip.Field), pstrings.Clip(tip.Tip, 90))
	}
	ta := r.Analysis.TitleAnalysis
	t.row("title", "length", strconv.Itoa(ta.Length))
	t.row("title", "front loaded", strconv.FormatBool(ta.FrontLoaded))
	tg := r.Analysis.TagAnalysis
	t.row("tags", "count", strconv.Itoa(tg.Count))
	t.row("tags", "multi word", strconv.Itoa(tg.MultiWordCount))
	if s := r.Analysis.SeasonalRelevance; len(s) > 0 {
		t.row("seasonal", "keywords", pstrings.Clip(joinComma(s), 90))
	}
}
