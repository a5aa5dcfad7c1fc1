package repositories

import (
	"context"
	"database/sql"
)

type txKey struct{}

type sqlTx interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func injectTx(ctx context.Context, db sqlTx) context.Context {
	return context.WithValue(ctx, txKey{}, db)
}

// extractTxRead returns the snapshot transaction opened by Atomic, or the read pool.
func (r *Repository) extractTxRead(ctx context.Context) sqlTx {
	if db, ok := ctx.Value(txKey{}).(sqlTx); ok {
		return db
	}
	return r.dbRead
}
