package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(envConfig, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.MaxConnLifetime)
	assert.True(t, cfg.Database.AutoSchema)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(envConfig, "")
	t.Setenv("LIBRARY_APP_PORT", "9090")
	t.Setenv("LIBRARY_DB_DRIVER", "sqlite")
	t.Setenv("LIBRARY_DB_SQLITE_PATH", ":memory:")
	t.Setenv("LIBRARY_DB_MAX_CONNS", "7")
	t.Setenv("LIBRARY_DB_RETRY_DELAY", "250ms")
	t.Setenv("LIBRARY_DB_AUTO_SCHEMA", "false")
	t.Setenv("LIBRARY_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.SQLitePath)
	assert.Equal(t, 7, cfg.Database.MaxConns)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.RetryDelay)
	assert.False(t, cfg.Database.AutoSchema)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.yaml")
	content := []byte(`
app:
  port: "7000"
  env: staging
db:
  host: db.internal
  name: books
tracing:
  enabled: true
  sample_ratio: 0.5
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv(envConfig, path)
	t.Setenv("LIBRARY_DB_HOST", "db.override")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.App.Port)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, "books", cfg.Database.Name)
	assert.True(t, cfg.Tracing.Enabled)
	assert.InDelta(t, 0.5, cfg.Tracing.SampleRatio, 1e-9)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(envConfig, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"empty port", func(c *Config) { c.App.Port = "" }, ErrEmptyPort},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, ErrUnknownDriver},
		{"sqlite without path", func(c *Config) {
			c.Database.Driver = DriverSQLite
			c.Database.SQLitePath = ""
		}, ErrIncompleteDatabase},
		{"min above max", func(c *Config) { c.Database.MinConns = 30 }, ErrInvalidPoolSize},
		{"production without password", func(c *Config) { c.App.Environment = "production" }, ErrMissingPassword},
		{"production sqlite", func(c *Config) {
			c.App.Environment = "production"
			c.Database.Driver = DriverSQLite
		}, nil},
		{"bad sample ratio", func(c *Config) { c.Tracing.SampleRatio = 2 }, ErrInvalidSampleRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "db.max_conns", envKey("LIBRARY_DB_MAX_CONNS"))
	assert.Equal(t, "app.port", envKey("LIBRARY_APP_PORT"))
	assert.Equal(t, "config", envKey("LIBRARY_CONFIG"))
}

func TestPostgresConfig(t *testing.T) {
	cfg := New()
	cfg.Database.Password = "secret"

	db := cfg.Database.PostgresConfig()
	assert.Equal(t, "localhost", db.Host)
	assert.Equal(t, 5432, db.Port)
	assert.Equal(t, "secret", db.Password)
	assert.Equal(t, int32(25), db.MaxConns)
	assert.Equal(t, int32(5), db.MinConns)
	assert.Equal(t, 5, db.MaxRetries)
}
