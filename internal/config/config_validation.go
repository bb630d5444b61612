package config

import "time"

// Defaults applied when neither env, flags, nor the JSON file set a value.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultServerURL      = "http://localhost:8080"
	defaultTokenIssuer    = "promptdeck"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 15 * time.Second
)

// validateServer applies server defaults and checks the fields the server
// binary cannot run without.
func validateServer(cfg *StructuredConfig) error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	return nil
}

// validateClient applies client defaults. The client has no required fields:
// an unset server URL falls back to the local default.
func validateClient(cfg *StructuredConfig) error {
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = defaultServerURL
	}
	if cfg.Client.RequestTimeout <= 0 {
		cfg.Client.RequestTimeout = defaultRequestTimeout
	}

	return nil
}
