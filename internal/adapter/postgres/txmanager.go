package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs functions inside a transaction carried by the context.
// Nested RunInTx calls join the outer transaction.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithIsolation sets the isolation level of transactions started by the manager.
func WithIsolation(level pgx.TxIsoLevel) TxOption {
	return func(m *TxManager) { m.opts.IsoLevel = level }
}

// NewTxManager creates a TxManager. Transactions default to the server's
// isolation level.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RunInTx executes fn in a transaction: commit when fn returns nil, rollback
// on error or panic. The panic is propagated.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	return pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
		return fn(withTx(ctx, tx))
	})
}
