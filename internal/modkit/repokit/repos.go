// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"langid/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows is the result set of a query
	Rows = store.Rows

	// Row is a single row handed to a scan function
	Row = store.Row

	// CommandTag reports the outcome of a data modifying statement
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
