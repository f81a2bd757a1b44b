// Package cli is the listingseo command line: score listings and browse the keyword taxonomy offline
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"listingseo/internal/core/version"
)

// Output formats accepted by -o
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// app carries what every subcommand shares
type app struct {
	out    io.Writer
	in     io.Reader
	format string
	now    func() time.Time
}

// Option tunes the root command
type Option func(*app)

// WithIO replaces stdin and stdout
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *app) { a.in, a.out = in, out }
}

// WithClock sets the clock the current month is read from
func WithClock(now func() time.Time) Option { return func(a *app) { a.now = now } }

// NewRoot builds the listingseo command tree
func NewRoot(opts ...Option) *cobra.Command {
	a := &app{out: os.Stdout, in: os.Stdin, now: time.Now}
	for _, o := range opts {
		o(a)
	}

	root := &cobra.Command{
		Use:   "listingseo",
		Short: "Deterministic SEO scoring for Etsy listings",
		Long: `listingseo scores Etsy listing copy (title, description, tags) from 0 to 100,
grades it and suggests ranked improvements. Scores are reproducible: the only
input besides the listing is the month used for seasonal keywords.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			switch a.format {
			case FormatTable, FormatJSON:
				return nil
			}
			return fmt.Errorf("unknown output format %q (want %s or %s)", a.format, FormatTable, FormatJSON)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.out)
	root.SetIn(a.in)
	root.PersistentFlags().StringVarP(&a.format, "output", "o", FormatTable, "output format (table, json)")

	root.AddCommand(
		a.scoreCmd(),
		a.seasonalCmd(),
		a.gradeCmd(),
		a.keywordsCmd(),
		a.versionCmd(),
	)
	return root
}

// Execute runs the command tree with args
func Execute(ctx context.Context, args []string, opts ...Option) error {
	root := NewRoot(opts...)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			info := version.For("listingseo")
			return a.render(info, func(t *table) {
				t.header("SERVICE", "VERSION", "COMMIT", "DATE", "GO")
				t.row(info.Service, info.Version, info.Commit, info.Date, info.Go)
			})
		},
	}
}
