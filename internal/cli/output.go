package cli

import (
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
)

// table collects rows for tablewriter so render can fail once
type table struct {
	w   *tablewriter.Table
	err error
}

func (t *table) header(cols ...any) { t.w.Header(cols...) }

func (t *table) row(cells ...string) {
	if t.err == nil {
		t.err = t.w.Append(cells)
	}
}

// render writes v as indented JSON, or lets fill build a table
func (a *app) render(v any, fill func(*table)) error {
	if a.format == FormatJSON {
		return writeJSON(a.out, v)
	}
	t := &table{w: tablewriter.NewWriter(a.out)}
	fill(t)
	if t.err != nil {
		return t.err
	}
	return t.w.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
