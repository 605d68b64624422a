package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool used by repositories. Both *pgxpool.Pool
// and pgxmock.PgxPoolIface satisfy it, so repositories can be exercised against
// a mock in tests.
type DBTX interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WithTx runs fn inside a transaction: commit when fn returns nil, rollback
// otherwise. Rollback also runs on panic, and uses a non-cancelable context so
// an abandoned request context can never leave the connection mid-transaction.
// The operation name labels the surrounding trace span.
func WithTx(ctx context.Context, db DBTX, operation string, fn func(tx pgx.Tx) error) (err error) {
	ctx, end := TraceQuery(ctx, operation, "transaction")
	defer func() { end(err) }()

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// No-op after a successful commit.
	defer func() {
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
