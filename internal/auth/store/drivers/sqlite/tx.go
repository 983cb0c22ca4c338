package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lookbook-app/lookbook/internal/auth/store"
)

// txStore wraps a *sql.Tx and satisfies store.Tx. Repos obtained from it
// execute against the transaction rather than the pool.
type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Users() store.Users { return &usersRepo{db: t.tx} }

func (t *txStore) Commit() error { return t.tx.Commit() }

func (t *txStore) Rollback() error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

func (t *txStore) ApplyMigrations() error {
	return errors.New("sqlite: cannot run migrations inside a transaction")
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errors.New("sqlite: nested transactions are not supported")
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Already inside a transaction, run against it directly.
	return fn(t)
}

func (t *txStore) Close() error { return t.Rollback() }

func (t *txStore) Ping(ctx context.Context) error { return nil }
