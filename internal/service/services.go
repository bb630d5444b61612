package service

import (
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/internal/validators"
)

type Services struct {
	AuthService     AuthService
	CommandService  CommandService
	FavoriteService FavoriteService
	ActivityService ActivityService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewCommandValidator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		CommandService:  NewCommandService(storages.CommandRepository, validator, logger),
		FavoriteService: NewFavoriteService(storages.FavoriteRepository, logger),
		ActivityService: NewActivityService(storages.ActivityRepository, logger),
	}
}
