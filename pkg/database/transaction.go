package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// WithTransaction function:
//     Begin transaction
//     Defer rollback - runs when fn returns an error or panics
//     Execute fn with the transaction
//     Commit nếu không có error

// TxFunc là function type được execute trong transaction
type TxFunc func(pgx.Tx) error

// PgBeginner is satisfied by pools, pooled connections and transactions.
type PgBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTransaction wraps fn in a pgx transaction.
// Auto rollback nếu có error, auto commit nếu success
func WithTransaction(ctx context.Context, db PgBeginner, fn TxFunc) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// WithTransactionResult wraps function có return value trong transaction
func WithTransactionResult[T any](ctx context.Context, db PgBeginner, fn func(pgx.Tx) (T, error)) (T, error) {
	var result T

	err := WithTransaction(ctx, db, func(tx pgx.Tx) error {
		var fnErr error
		result, fnErr = fn(tx)
		return fnErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// SQLBeginner is satisfied by *sql.DB and *sql.Conn.
type SQLBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithSQLTransactionResult is the database/sql counterpart of WithTransactionResult.
func WithSQLTransactionResult[T any](ctx context.Context, db SQLBeginner, fn func(*sql.Tx) (T, error)) (result T, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	result, err = fn(tx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err = tx.Commit(); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}
