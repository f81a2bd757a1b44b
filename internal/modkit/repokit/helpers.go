package repokit

import (
	"context"

	"listingseo/internal/platform/store"
)

// ErrNoRows is returned when a lookup matched nothing
var ErrNoRows = store.ErrNoRows

// ExecOne runs a write that must touch exactly one row
func ExecOne(ctx context.Context, q Queryer, sql string, args ...any) error {
	return store.ExecOne(ctx, q, sql, args...)
}

// One maps exactly one row
func One[T any](ctx context.Context, q Queryer, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	return store.One(ctx, q, scan, sql, args...)
}

// Many maps every row, never returning a nil slice on success
func Many[T any](ctx context.Context, q Queryer, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	return store.Many(ctx, q, scan, sql, args...)
}
