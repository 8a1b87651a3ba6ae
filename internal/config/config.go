package config

import (
	"fmt"
	"time"
)

// Supported relational backends.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config chứa toàn bộ application configuration.
// Populated by Load from defaults, an optional YAML file and LIBRARY_* env vars.
type Config struct {
	App      AppConfig      `koanf:"app"`
	Database DatabaseConfig `koanf:"db"`
	Log      LogConfig      `koanf:"log"`
	Metrics  MetricsConfig  `koanf:"metrics"`
	Tracing  TracingConfig  `koanf:"tracing"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Environment string `koanf:"env"` // development, staging, production
	Port        string `koanf:"port"`
	Version     string `koanf:"version"`
}

type DatabaseConfig struct {
	Driver   string `koanf:"driver"` // postgres | sqlite
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`

	// SQLitePath is a file path or ":memory:".
	SQLitePath string `koanf:"sqlite_path"`

	MaxConns          int           `koanf:"max_conns"`
	MinConns          int           `koanf:"min_conns"`
	MaxConnLifetime   time.Duration `koanf:"max_conn_lifetime"`
	MaxConnIdleTime   time.Duration `koanf:"max_conn_idle_time"`
	HealthCheckPeriod time.Duration `koanf:"health_check_period"`
	MaxRetries        int           `koanf:"max_retries"`
	RetryDelay        time.Duration `koanf:"retry_delay"`
	ConnectTimeout    time.Duration `koanf:"connect_timeout"`

	// AutoSchema creates the authors/books tables on startup when missing.
	AutoSchema bool `koanf:"auto_schema"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

type TracingConfig struct {
	Enabled     bool    `koanf:"enabled"`
	Endpoint    string  `koanf:"endpoint"` // OTLP/HTTP endpoint; stdout exporter when empty
	SampleRatio float64 `koanf:"sample_ratio"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		App: AppConfig{
			Name:        "Library API",
			Environment: "development",
			Port:        "8080",
			Version:     "1.0.0",
		},
		Database: DatabaseConfig{
			Driver:            DriverPostgres,
			Host:              "localhost",
			Port:              5432,
			User:              "library",
			Password:          "",
			Name:              "library",
			SSLMode:           "disable",
			SQLitePath:        "library.db",
			MaxConns:          25,
			MinConns:          5,
			MaxConnLifetime:   5 * time.Minute,
			MaxConnIdleTime:   time.Minute,
			HealthCheckPeriod: time.Minute,
			MaxRetries:        5,
			RetryDelay:        time.Second,
			ConnectTimeout:    10 * time.Second,
			AutoSchema:        true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			SampleRatio: 0.1,
		},
	}
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return ErrEmptyPort
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return ErrIncompleteDatabase
		}
		if c.Database.MaxConns < 1 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("%w: min=%d max=%d", ErrInvalidPoolSize, c.Database.MinConns, c.Database.MaxConns)
		}
		if c.Database.MaxRetries < 1 {
			return fmt.Errorf("%w: max_retries=%d", ErrInvalidPoolSize, c.Database.MaxRetries)
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return ErrIncompleteDatabase
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Database.Driver)
	}

	// Production environment phải có DB password
	if c.App.Environment == "production" && c.Database.Driver == DriverPostgres && c.Database.Password == "" {
		return ErrMissingPassword
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRatio, c.Tracing.SampleRatio)
	}

	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
