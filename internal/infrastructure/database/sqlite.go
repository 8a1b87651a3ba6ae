package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	pkgdb "library-api/pkg/database"
)

const memoryPath = ":memory:"

// SQLiteDB wraps an embedded SQLite database used for local runs and tests.
type SQLiteDB struct {
	DB   *sql.DB
	Path string
}

// OpenSQLite opens the database file at path (or an in-memory database for ":memory:")
// with foreign keys enforced on every connection.
func OpenSQLite(path string) (*SQLiteDB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	var dsn string
	if path == memoryPath {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	} else {
		dsn = "file:" + filepath.Clean(path) +
			"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// An in-memory database lives and dies with its connection.
	if path == memoryPath {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	log.Info().Str("path", path).Msg("[DATABASE] SQLite database opened")
	return &SQLiteDB{DB: sqlDB, Path: path}, nil
}

func (db *SQLiteDB) EnsureSchema(ctx context.Context) error {
	if db.DB == nil {
		return ErrPoolNotInitialized
	}
	for _, stmt := range sqliteSchema {
		if _, err := db.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

func (db *SQLiteDB) Ping(ctx context.Context) error {
	if db.DB == nil {
		return ErrPoolNotInitialized
	}
	if err := db.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (db *SQLiteDB) Close() error {
	if db.DB == nil {
		return nil
	}
	err := db.DB.Close()
	db.DB = nil
	return err
}

// OpenSession pins one *sql.Conn to the request context.
func (db *SQLiteDB) OpenSession(ctx context.Context) (context.Context, func(), error) {
	if db.DB == nil {
		return ctx, func() {}, ErrPoolNotInitialized
	}
	conn, err := db.DB.Conn(ctx)
	if err != nil {
		return ctx, func() {}, fmt.Errorf("acquire session: %w", err)
	}
	release := func() {
		if err := conn.Close(); err != nil {
			log.Warn().Err(err).Msg("[DATABASE] Failed to release session")
		}
	}
	return pkgdb.WithSQLSession(ctx, conn), release, nil
}
