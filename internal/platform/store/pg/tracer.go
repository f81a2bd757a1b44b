package pg

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"listingseo/internal/platform/logger"
)

// QueryTracer logs every statement through zerolog, warning on slow ones and errors
type QueryTracer struct {
	log  logger.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*QueryTracer)(nil)

type traceKey struct{}

type traceStart struct {
	sql   string
	nargs int
	at    time.Time
}

// Tracer returns a pgx tracer writing at debug level regardless of the root level.
// slow <= 0 disables slow marking
func Tracer(root logger.Logger, slow time.Duration) *QueryTracer {
	l := root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()
	return &QueryTracer{log: l, slow: slow, now: time.Now}
}

// TraceQueryStart stashes the statement and start time on ctx
func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: d.SQL, nargs: len(d.Args), at: t.now()})
}

// TraceQueryEnd writes one line per statement. Arguments are counted, not logged
func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, d pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(st.at)
	slow := t.slow > 0 && elapsed >= t.slow

	evt := t.log.Debug()
	switch {
	case d.Err != nil:
		evt = t.log.Warn().Err(d.Err)
	case slow:
		evt = t.log.Warn()
	}
	evt.Str("sql", compact(st.sql)).
		Int("args", st.nargs).
		Int64("rows", d.CommandTag.RowsAffected()).
		Float64("elapsed_ms", float64(elapsed.Microseconds())/1000).
		Bool("slow", slow).
		Msg("pg query")
}

// compact folds runs of whitespace into one space
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
