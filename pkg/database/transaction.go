package database

import (
	"context"
	"database/sql"
	"fmt"
)

// TxFunc is the unit of work executed inside a transaction.
type TxFunc func(*sql.Tx) error

// Beginner is the subset of *sql.DB the wrapper needs; it lets tests pass
// any database handle.
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTransaction wraps fn in a transaction: rollback on error or panic,
// commit on normal return. Every mutating service method goes through here
// exactly once, which is the application's only consistency boundary.
func WithTransaction(ctx context.Context, db Beginner, fn TxFunc) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTransactionResult is WithTransaction for functions returning a value.
func WithTransactionResult[T any](ctx context.Context, db Beginner, fn func(*sql.Tx) (T, error)) (T, error) {
	var result T
	var fnErr error

	err := WithTransaction(ctx, db, func(tx *sql.Tx) error {
		result, fnErr = fn(tx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
