package service

import (
	"context"
	"fmt"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/models"
)

// activityService implements ActivityService. Activity rows are analytics
// only: the service validates the activity type and command id, then hands
// the entry to the repository. Nothing in the application ever reads these
// rows back.
type activityService struct {
	activityRepository store.ActivityRepository
	logger             *logger.Logger
}

func NewActivityService(activityRepository store.ActivityRepository, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		logger:             logger,
	}
}

// Log persists one activity entry.
//
// Returns ErrInvalidDataProvided when the command id is empty or the
// activity type is not one of the recognised values.
func (s *activityService) Log(ctx context.Context, entry models.ActivityEntry) error {
	if entry.CommandID == "" {
		return ErrInvalidDataProvided
	}
	if entry.ActivityType != models.ActivityView && entry.ActivityType != models.ActivityCopy {
		return ErrInvalidDataProvided
	}

	if err := s.activityRepository.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity failed: %w", err)
	}

	return nil
}
