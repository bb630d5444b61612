package store

import "github.com/promptdeck/promptdeck/internal/logger"

// Storages bundles every repository the handlers depend on.
type Storages struct {
	UserRepository     UserRepository
	CommandRepository  CommandRepository
	FavoriteRepository FavoriteRepository
	ActivityRepository ActivityRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		CommandRepository:  NewCommandRepository(db, log),
		FavoriteRepository: NewFavoriteRepository(db, log),
		ActivityRepository: NewActivityRepository(db, log),
	}
}
