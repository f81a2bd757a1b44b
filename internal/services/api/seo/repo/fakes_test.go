package repo

import (
	"context"
	"reflect"
	"strings"

	"listingseo/internal/modkit/repokit"
	"listingseo/internal/platform/store"
)

type call struct {
	sql  string
	args []any
}

type fakeTag int64

func (t fakeTag) String() string      { return "INSERT 0 1" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeRows struct {
	data [][]any
	i    int
	err  error
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }

// fakeQ answers every query with rows and every write with affected
type fakeQ struct {
	calls    []call
	rows     [][]any
	affected int64
	err      error
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.calls = append(f.calls, call{sql, args})
	return fakeTag(f.affected), f.err
}

func (f *fakeQ) Query(_ context.Context, sql string, args ...any) (repokit.Rows, error) {
	f.calls = append(f.calls, call{sql, args})
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{data: f.rows}, nil
}

func (f *fakeQ) QueryRow(_ context.Context, sql string, args ...any) repokit.Row {
	f.calls = append(f.calls, call{sql, args})
	return &fakeRows{data: f.rows, i: 1}
}

// fakeCH records inserts and answers queries in order
type fakeCH struct {
	inserts map[string][][]any
	execs   []string
	answers []*fakeRows
	args    [][]any
	err     error
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	if f.err != nil {
		return f.err
	}
	if f.inserts == nil {
		f.inserts = map[string][][]any{}
	}
	f.inserts[table] = append(f.inserts[table], rows...)
	return nil
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, strings.TrimSpace(sql))
	return f.err
}

func (f *fakeCH) Query(_ context.Context, _ string, args ...any) (repokit.Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.args = append(f.args, args)
	rs := f.answers[0]
	f.answers = f.answers[1:]
	return rs, nil
}

func (f *fakeCH) Close() error { return nil }
