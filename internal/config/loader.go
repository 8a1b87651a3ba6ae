package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

const (
	envPrefix  = "LIBRARY_"
	envConfig  = "LIBRARY_CONFIG"
	dotEnvFile = ".env"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. YAML file if LIBRARY_CONFIG is set
//  3. env (prefix LIBRARY_), after merging a local .env file
func Load() (*Config, error) {
	// Load từ .env file (development/local)
	// Production sẽ dùng system environment variables
	if err := godotenv.Load(dotEnvFile); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to read .env file, using system environment variables")
	}

	k := koanf.New(".")

	if path := os.Getenv(envConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// LIBRARY_DB_MAX_CONNS -> db.max_conns, LIBRARY_APP_PORT -> app.port
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// envKey maps an environment variable name to a koanf key path.
// Only the first underscore after the prefix separates section from field.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, field, found := strings.Cut(s, "_")
	if !found {
		return section
	}
	return section + "." + field
}
