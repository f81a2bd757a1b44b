package repokit

import (
	"context"
	"strings"

	"listingseo/internal/platform/store"
)

// Migrate applies DDL statements in order through q
func Migrate(ctx context.Context, q Queryer, stmts []string) error {
	return store.ExecAll(ctx, q, stmts)
}

// MigrateCH applies DDL statements in order to ClickHouse
func MigrateCH(ctx context.Context, c Clickhouse, stmts []string) error {
	for _, s := range stmts {
		if err := c.Exec(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// SplitSQL splits a DDL script on semicolons, dropping blanks and -- comment lines
func SplitSQL(script string) []string {
	var (
		out []string
		cur strings.Builder
	)
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
	}
	for _, s := range strings.Split(cur.String(), ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
