package database

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SessionOpener opens a request-scoped session and returns a context carrying it.
// release returns the underlying connection to its pool.
type SessionOpener interface {
	OpenSession(ctx context.Context) (sessionCtx context.Context, release func(), err error)
}

// PgQuerier is satisfied by *pgxpool.Pool, *pgxpool.Conn and *pgx.Conn.
type PgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SQLQuerier is satisfied by *sql.DB and *sql.Conn.
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type pgSessionKey struct{}

type sqlSessionKey struct{}

func WithPgSession(ctx context.Context, q PgQuerier) context.Context {
	return context.WithValue(ctx, pgSessionKey{}, q)
}

func WithSQLSession(ctx context.Context, q SQLQuerier) context.Context {
	return context.WithValue(ctx, sqlSessionKey{}, q)
}

// PgSession returns the session bound to ctx, or fallback when the call runs outside a request.
func PgSession(ctx context.Context, fallback PgQuerier) PgQuerier {
	if q, ok := ctx.Value(pgSessionKey{}).(PgQuerier); ok && q != nil {
		return q
	}
	return fallback
}

// SQLSession returns the session bound to ctx, or fallback.
func SQLSession(ctx context.Context, fallback SQLQuerier) SQLQuerier {
	if q, ok := ctx.Value(sqlSessionKey{}).(SQLQuerier); ok && q != nil {
		return q
	}
	return fallback
}
