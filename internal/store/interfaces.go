package store

import (
	"context"

	"github.com/promptdeck/promptdeck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type CommandRepository interface {
	ListActive(ctx context.Context) ([]models.CommandRecord, error)
	GetByID(ctx context.Context, id string) (models.CommandRecord, error)
	Create(ctx context.Context, record *models.CommandRecord) error
	Patch(ctx context.Context, id string, patch models.CommandPatch) (models.CommandRecord, error)
	Deactivate(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	IncrementCopies(ctx context.Context, id string) error
}

type FavoriteRepository interface {
	ListCommandIDs(ctx context.Context, userID int64) ([]string, error)
	Add(ctx context.Context, userID int64, commandID string) (models.Favorite, error)
	Remove(ctx context.Context, userID int64, commandID string) error
}

type ActivityRepository interface {
	Log(ctx context.Context, entry models.ActivityEntry) error
}
