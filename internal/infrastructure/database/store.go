package database

import (
	"context"

	pkgdb "library-api/pkg/database"
)

// Store is the lifecycle surface shared by the Postgres and SQLite backends.
type Store interface {
	pkgdb.SessionOpener
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*PostgresDB)(nil)
	_ Store = (*SQLiteDB)(nil)
)
