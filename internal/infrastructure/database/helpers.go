package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Ping kiểm tra database connection có còn sống và responsive không.
// Called by the /health endpoint.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return ErrPoolNotInitialized
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close đóng tất cả connections trong pool. Safe to call multiple times.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("[DATABASE] Connection pool closed successfully")

	return nil
}
