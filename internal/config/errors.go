package config

import "errors"

var (
	ErrEmptyPort          = errors.New("app port must not be empty")
	ErrUnknownDriver      = errors.New("unknown database driver")
	ErrIncompleteDatabase = errors.New("database connection settings are incomplete")
	ErrInvalidPoolSize    = errors.New("invalid database pool settings")
	ErrMissingPassword    = errors.New("LIBRARY_DB_PASSWORD must be set in production")
	ErrInvalidSampleRatio = errors.New("tracing sample ratio must be within [0,1]")
)
