package service

import (
	"context"
	"fmt"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/models"
)

// favoriteService implements FavoriteService. All operations are scoped by
// the authenticated user id; a zero user id is rejected before touching the
// database.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	logger             *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// ListCommandIDs returns the ids of the user's favorited commands.
func (s *favoriteService) ListCommandIDs(ctx context.Context, userID int64) ([]string, error) {
	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	return s.favoriteRepository.ListCommandIDs(ctx, userID)
}

// Add favorites a command for the user.
func (s *favoriteService) Add(ctx context.Context, userID int64, commandID string) (models.Favorite, error) {
	if userID <= 0 || commandID == "" {
		return models.Favorite{}, ErrInvalidDataProvided
	}

	favorite, err := s.favoriteRepository.Add(ctx, userID, commandID)
	if err != nil {
		return models.Favorite{}, fmt.Errorf("adding favorite failed: %w", err)
	}

	return favorite, nil
}

// Remove unfavorites a command for the user.
func (s *favoriteService) Remove(ctx context.Context, userID int64, commandID string) error {
	if userID <= 0 || commandID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.favoriteRepository.Remove(ctx, userID, commandID); err != nil {
		return fmt.Errorf("removing favorite failed: %w", err)
	}

	return nil
}
