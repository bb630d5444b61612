package config

import "errors"

var (
	// ErrNoDatabaseDSN is returned when the server is started without a
	// PostgreSQL DSN in any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")

	// ErrNoTokenSignKey is returned when the server is started without a
	// JWT signing key in any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
)
