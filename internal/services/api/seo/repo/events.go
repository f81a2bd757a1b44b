package repo

import (
	"context"
	_ "embed"
	"math"
	"time"

	"listingseo/internal/modkit/repokit"
	perr "listingseo/internal/platform/errors"
	"listingseo/internal/services/api/seo/domain"
)

//go:embed ch_schema.sql
var chSchema string

// EventsTable receives one row per stored report
const EventsTable = "seo_score_events"

// Events is the analytics surface for score events
type Events interface {
	Emit(ctx context.Context, ev domain.ScoreEvent) error
	Stats(ctx context.Context, since time.Time) (domain.Stats, error)
}

type chEvents struct{ ch repokit.Clickhouse }

// NewCH returns the ClickHouse event sink, or nil when ch is nil
func NewCH(ch repokit.Clickhouse) Events {
	if ch == nil {
		return nil
	}
	return &chEvents{ch: ch}
}

// MigrateCH creates the events table when missing
func MigrateCH(ctx context.Context, ch repokit.Clickhouse) error {
	if err := repokit.MigrateCH(ctx, ch, repokit.SplitSQL(chSchema)); err != nil {
		return perr.FromClickHouse(err, "migrate "+EventsTable)
	}
	return nil
}

func (e *chEvents) Emit(ctx context.Context, ev domain.ScoreEvent) error {
	row := []any{
		ev.At.UTC(),
		ev.ReportID,
		ev.ListingRef,
		ev.Locale,
		score8(ev.OverallScore),
		ev.Grade,
		score8(ev.TitleScore),
		score8(ev.DescriptionScore),
		score8(ev.TagScore),
		score8(ev.KeywordScore),
	}
	return perr.FromClickHouse(e.ch.Insert(ctx, EventsTable, [][]any{row}), "emit score event")
}

func (e *chEvents) Stats(ctx context.Context, since time.Time) (domain.Stats, error) {
	const totals = `
SELECT
	count() AS reports,
	ifNotFinite(avg(overall_score), 0),
	ifNotFinite(avg(title_score), 0),
	ifNotFinite(avg(description_score), 0),
	ifNotFinite(avg(tag_score), 0),
	ifNotFinite(avg(keyword_score), 0)
FROM seo_score_events
WHERE ts >= ?`

	const grades = `
SELECT grade, count() AS n
FROM seo_score_events
WHERE ts >= ?
GROUP BY grade
ORDER BY grade`

	out := domain.Stats{Grades: map[string]uint64{}}

	rs, err := e.ch.Query(ctx, totals, since.UTC())
	if err != nil {
		return out, perr.FromClickHouse(err, "score totals")
	}
	if rs.Next() {
		err = rs.Scan(&out.Reports, &out.AvgOverall, &out.AvgTitle, &out.AvgDescription, &out.AvgTags, &out.AvgKeywords)
	}
	if err == nil {
		err = rs.Err()
	}
	rs.Close()
	if err != nil {
		return out, perr.FromClickHouse(err, "score totals")
	}

	rs, err = e.ch.Query(ctx, grades, since.UTC())
	if err != nil {
		return out, perr.FromClickHouse(err, "grade counts")
	}
	defer rs.Close()
	for rs.Next() {
		var (
			g string
			n uint64
		)
		if err := rs.Scan(&g, &n); err != nil {
			return out, perr.FromClickHouse(err, "grade counts")
		}
		out.Grades[g] = n
	}
	if err := rs.Err(); err != nil {
		return out, perr.FromClickHouse(err, "grade counts")
	}

	for _, p := range []*float64{&out.AvgOverall, &out.AvgTitle, &out.AvgDescription, &out.AvgTags, &out.AvgKeywords} {
		*p = round2(*p)
	}
	return out, nil
}

func score8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return uint8(v)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
