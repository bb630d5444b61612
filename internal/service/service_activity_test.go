package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/mock"
	"github.com/promptdeck/promptdeck/models"
)

func newTestActivityService(t *testing.T) (ActivityService, *mock.MockActivityRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	activityRepo := mock.NewMockActivityRepository(ctrl)

	return NewActivityService(activityRepo, logger.Nop()), activityRepo
}

func TestActivityService_Log(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid entry", func(t *testing.T) {
		svc, activityRepo := newTestActivityService(t)

		entry := models.ActivityEntry{
			UserID:       7,
			CommandID:    "cmd-1",
			ActivityType: models.ActivityCopy,
		}
		activityRepo.EXPECT().Log(ctx, entry).Return(nil)

		require.NoError(t, svc.Log(ctx, entry))
	})

	t.Run("anonymous entries are allowed", func(t *testing.T) {
		svc, activityRepo := newTestActivityService(t)

		entry := models.ActivityEntry{
			CommandID:    "cmd-1",
			ActivityType: models.ActivityView,
		}
		activityRepo.EXPECT().Log(ctx, entry).Return(nil)

		require.NoError(t, svc.Log(ctx, entry))
	})

	t.Run("rejects unknown activity types", func(t *testing.T) {
		svc, _ := newTestActivityService(t)

		err := svc.Log(ctx, models.ActivityEntry{CommandID: "cmd-1", ActivityType: "share"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("rejects an empty command id", func(t *testing.T) {
		svc, _ := newTestActivityService(t)

		err := svc.Log(ctx, models.ActivityEntry{ActivityType: models.ActivityView})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}
