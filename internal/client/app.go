// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/promptdeck/promptdeck/internal/adapter"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/internal/workers"
	"github.com/promptdeck/promptdeck/models"
)

// App owns the client-side object graph: session, stores, reporter, and the
// transport gateway. It is constructed once per process and torn down at
// shutdown; consumers receive the stores by reference.
type App struct {
	Session   *Session
	Commands  *CommandStore
	Favorites *FavoritesStore
	Reporter  *Reporter

	gateway adapter.Gateway
	runner  *workers.Runner
	logger  *logger.Logger
}

// NewApp wires the client core from configuration. The SQLite cache is
// optional: when it cannot be opened the dashboard runs without warm starts.
func NewApp(cfg *config.StructuredConfig, notifier Notifier, logger *logger.Logger) (*App, error) {
	gateway, err := adapter.NewHTTPGateway(cfg.Client, logger)
	if err != nil {
		return nil, fmt.Errorf("creating gateway failed: %w", err)
	}

	var cache store.CommandCache
	if cfg.Storage.Cache.Path != "" {
		storages, err := store.NewClientStorages(cfg.Storage.Cache, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("command cache unavailable, continuing without warm start")
		} else {
			cache = storages.CommandCache
		}
	}

	session := NewSession()
	runner := workers.NewRunner(logger)

	commands := NewCommandStore(gateway, cache, session, notifier, logger)
	favorites := NewFavoritesStore(gateway, session, notifier, logger)
	reporter := NewReporter(gateway, commands, session, runner, logger)

	return &App{
		Session:   session,
		Commands:  commands,
		Favorites: favorites,
		Reporter:  reporter,
		gateway:   gateway,
		runner:    runner,
		logger:    logger,
	}, nil
}

// Bootstrap warm-starts the command list from the cache and then refreshes
// everything from the service. A failed refresh is already reported through
// the notifier; the cached list stays on screen.
func (a *App) Bootstrap(ctx context.Context) {
	a.Commands.WarmStart(ctx)

	if err := a.Commands.LoadAll(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial command load failed")
	}
	if err := a.Favorites.LoadForCurrentUser(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial favorites load failed")
	}
}

// Register creates an account, signs the session in, and loads the (empty)
// favorites set for the new identity.
func (a *App) Register(ctx context.Context, email, password, name string) error {
	identity, err := a.gateway.Register(ctx, models.User{Email: email, Password: password, Name: name})
	if err != nil {
		return err
	}

	a.Session.Set(identity)
	return a.Favorites.LoadForCurrentUser(ctx)
}

// Login authenticates, signs the session in, and refreshes the favorites
// set for the identity.
func (a *App) Login(ctx context.Context, email, password string) error {
	identity, err := a.gateway.Login(ctx, models.User{Email: email, Password: password})
	if err != nil {
		return err
	}

	a.Session.Set(identity)
	return a.Favorites.LoadForCurrentUser(ctx)
}

// Logout clears the token, the session identity, and the favorites set.
func (a *App) Logout(ctx context.Context) {
	a.gateway.SetToken("")
	a.Session.Clear()

	// Clearing happens via the anonymous path of LoadForCurrentUser.
	_ = a.Favorites.LoadForCurrentUser(ctx)
}

// Shutdown drains detached telemetry tasks.
func (a *App) Shutdown() {
	a.runner.Wait()
}
