package service

import (
	"context"

	"github.com/promptdeck/promptdeck/models"
)

type CommandService interface {
	ListActive(ctx context.Context) ([]models.CommandRecord, error)
	Get(ctx context.Context, id string) (models.CommandRecord, error)
	Create(ctx context.Context, input models.NewCommand, createdBy int64) (models.CommandRecord, error)
	Patch(ctx context.Context, id string, patch models.CommandPatch) (models.CommandRecord, error)
	Deactivate(ctx context.Context, id string) error
	RecordView(ctx context.Context, id string) error
	RecordCopy(ctx context.Context, id string) error
}

type FavoriteService interface {
	ListCommandIDs(ctx context.Context, userID int64) ([]string, error)
	Add(ctx context.Context, userID int64, commandID string) (models.Favorite, error)
	Remove(ctx context.Context, userID int64, commandID string) error
}

type ActivityService interface {
	Log(ctx context.Context, entry models.ActivityEntry) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
