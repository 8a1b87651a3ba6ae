package config

import (
	"library-api/internal/infrastructure/database"
)

// PostgresConfig converts the db section into the pool settings used by database.PostgresDB.
func (c DatabaseConfig) PostgresConfig() *database.DBConfig {
	return &database.DBConfig{
		Host:              c.Host,
		Port:              c.Port,
		Username:          c.User,
		Password:          c.Password,
		DBName:            c.Name,
		SSLMode:           c.SSLMode,
		MaxConns:          int32(c.MaxConns),
		MinConns:          int32(c.MinConns),
		MaxConnLifetime:   c.MaxConnLifetime,
		MaxConnIdleTime:   c.MaxConnIdleTime,
		HealthCheckPeriod: c.HealthCheckPeriod,
		MaxRetries:        c.MaxRetries,
		RetryDelay:        c.RetryDelay,
		ConnectTimeout:    c.ConnectTimeout,
	}
}
