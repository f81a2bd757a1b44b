// Package repokit holds the types and helpers repositories are written against
package repokit

import (
	"context"

	"listingseo/internal/platform/store"
)

type (
	// Queryer is the SQL surface a bound repo uses
	Queryer = store.RowQuerier

	// TxRunner runs functions in a transaction
	TxRunner = store.TxRunner

	// Rows is a result set
	Rows = store.Rows

	// Row is one result row
	Row = store.Row

	// Clickhouse is the analytics seam
	Clickhouse = store.Clickhouse
)

// WithTx runs fn in a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
