// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the client's transport layer towards the
// promptdeck data service.
//
// The primary abstraction is [Gateway], which decouples the stores in
// internal/client from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and the
// canonical response bodies (internal/app messages) by mapHTTPError, so that
// callers can use [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/promptdeck/promptdeck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines transport-agnostic communication with the data service.
// Implementations own serialisation, bearer-token management, and mapping
// transport failures to the sentinel errors of this package.
type Gateway interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty string clears it (logout).
	SetToken(token string)

	// Token returns the bearer token currently stored, or an empty string.
	Token() string

	// Register creates an account. On success the returned bearer token is
	// stored via SetToken and the authenticated identity is returned.
	Register(ctx context.Context, user models.User) (models.Identity, error)

	// Login authenticates an existing account. On success the returned
	// bearer token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.Identity, error)

	// FetchCommands returns every active command, newest first.
	FetchCommands(ctx context.Context) ([]models.CommandRecord, error)

	// GetCommand returns a single active command. Returns [ErrNotFound] if
	// the id is unknown or the command is inactive.
	GetCommand(ctx context.Context, id string) (models.CommandRecord, error)

	// CreateCommand persists a new command and returns the canonical stored
	// row. Requires a token. Returns [ErrDuplicate] when the title is taken.
	CreateCommand(ctx context.Context, input models.NewCommand) (models.CommandRecord, error)

	// PatchCommand applies a sparse update and returns the updated row.
	// Requires a token.
	PatchCommand(ctx context.Context, id string, patch models.CommandPatch) (models.CommandRecord, error)

	// DeleteCommand soft-deletes a command. Requires a token.
	DeleteCommand(ctx context.Context, id string) error

	// RecordView asks the service to bump the views counter of a command.
	RecordView(ctx context.Context, id string) error

	// RecordCopy asks the service to bump the copies counter of a command.
	RecordCopy(ctx context.Context, id string) error

	// ListFavorites returns the command ids the authenticated user has
	// favorited. Requires a token.
	ListFavorites(ctx context.Context) ([]string, error)

	// AddFavorite favorites a command for the authenticated user. Requires a
	// token. Returns [ErrDuplicate] when the command is already favorited.
	AddFavorite(ctx context.Context, commandID string) (models.Favorite, error)

	// RemoveFavorite unfavorites a command for the authenticated user.
	// Requires a token.
	RemoveFavorite(ctx context.Context, commandID string) error

	// LogActivity reports one analytics entry. The user is inferred from the
	// token when present; anonymous entries are accepted.
	LogActivity(ctx context.Context, entry models.ActivityEntry) error
}
