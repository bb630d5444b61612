package store

import (
	"context"
	"fmt"

	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client layer. Currently it holds only
// [CommandCache]; additional repositories can be added here as the feature
// set grows.
type ClientStorages struct {
	// CommandCache is the SQLite-backed snapshot of the command list used
	// to warm-start the dashboard before the first full load completes.
	CommandCache CommandCache
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens (creating if necessary) the SQLite file
// at cfg.Path, bootstraps the cache schema, and wires a fresh
// [CommandCache].
//
// Returns an error if the database connection cannot be established or the
// schema cannot be created.
func NewClientStorages(cfg config.Cache, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		CommandCache: NewLocalCommandRepository(db, logger),
	}, nil
}
