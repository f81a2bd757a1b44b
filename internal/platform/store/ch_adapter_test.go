package store

import (
	"context"
	"errors"
	"testing"

	"listingseo/internal/platform/store/ch"
)

type fakeCHRows struct {
	vals   []int32
	i      int
	closed bool
}

func (r *fakeCHRows) Next() bool { r.i++; return r.i <= len(r.vals) }
func (r *fakeCHRows) Scan(dest ...any) error {
	*(dest[0].(*int32)) = r.vals[r.i-1]
	return nil
}
func (r *fakeCHRows) Err() error        { return nil }
func (r *fakeCHRows) Close() error      { r.closed = true; return nil }
func (r *fakeCHRows) Columns() []string { return []string{"n"} }

type fakeCH struct {
	inserted map[string][][]any
	execs    []string
	rows     *fakeCHRows
	queryErr error
	pingErr  error
	closed   bool
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	if f.inserted == nil {
		f.inserted = map[string][][]any{}
	}
	f.inserted[table] = append(f.inserted[table], rows...)
	return nil
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (ch.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeCH) Ping(context.Context) error { return f.pingErr }
func (f *fakeCH) Close() error               { f.closed = true; return nil }

func TestCHAdapter(t *testing.T) {
	t.Parallel()
	f := &fakeCH{rows: &fakeCHRows{vals: []int32{3, 4}}}
	a := newCHAdapter(f)
	ctx := context.Background()

	if err := a.Insert(ctx, "seo_score_events", [][]any{{1}, {2}}); err != nil || len(f.inserted["seo_score_events"]) != 2 {
		t.Fatalf("insert: %v %v", err, f.inserted)
	}
	if err := a.Exec(ctx, "CREATE TABLE t"); err != nil || len(f.execs) != 1 {
		t.Fatalf("exec: %v", err)
	}

	rs, err := a.Query(ctx, "SELECT n")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	var sum int32
	for rs.Next() {
		var n int32
		if err := rs.Scan(&n); err != nil {
			t.Fatalf("scan: %v", err)
		}
		sum += n
	}
	rs.Close()
	if sum != 7 || !f.rows.closed || rs.Columns()[0] != "n" {
		t.Fatalf("sum %d closed %v", sum, f.rows.closed)
	}

	f.queryErr = errors.New("boom")
	if _, err := a.Query(ctx, "SELECT n"); err == nil {
		t.Fatalf("expected query error")
	}
	if err := a.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
