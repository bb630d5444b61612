package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/mock"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/models"
)

func newTestFavoriteService(t *testing.T) (FavoriteService, *mock.MockFavoriteRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	favoriteRepo := mock.NewMockFavoriteRepository(ctrl)

	return NewFavoriteService(favoriteRepo, logger.Nop()), favoriteRepo
}

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the created favorite", func(t *testing.T) {
		svc, favoriteRepo := newTestFavoriteService(t)

		favoriteRepo.EXPECT().
			Add(ctx, int64(7), "cmd-1").
			Return(models.Favorite{UserID: 7, CommandID: "cmd-1"}, nil)

		favorite, err := svc.Add(ctx, 7, "cmd-1")
		require.NoError(t, err)
		require.Equal(t, "cmd-1", favorite.CommandID)
	})

	t.Run("already favorited surfaces the sentinel", func(t *testing.T) {
		svc, favoriteRepo := newTestFavoriteService(t)

		favoriteRepo.EXPECT().
			Add(ctx, int64(7), "cmd-1").
			Return(models.Favorite{}, store.ErrAlreadyFavorite)

		_, err := svc.Add(ctx, 7, "cmd-1")
		require.ErrorIs(t, err, store.ErrAlreadyFavorite)
	})

	t.Run("rejects anonymous users and empty ids", func(t *testing.T) {
		svc, _ := newTestFavoriteService(t)

		_, err := svc.Add(ctx, 0, "cmd-1")
		require.ErrorIs(t, err, ErrInvalidDataProvided)

		_, err = svc.Add(ctx, 7, "")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to the repository", func(t *testing.T) {
		svc, favoriteRepo := newTestFavoriteService(t)

		favoriteRepo.EXPECT().Remove(ctx, int64(7), "cmd-1").Return(nil)

		require.NoError(t, svc.Remove(ctx, 7, "cmd-1"))
	})

	t.Run("missing favorite surfaces the sentinel", func(t *testing.T) {
		svc, favoriteRepo := newTestFavoriteService(t)

		favoriteRepo.EXPECT().
			Remove(ctx, int64(7), "cmd-1").
			Return(store.ErrFavoriteNotFound)

		err := svc.Remove(ctx, 7, "cmd-1")
		require.ErrorIs(t, err, store.ErrFavoriteNotFound)
	})
}

func TestFavoriteService_ListCommandIDs(t *testing.T) {
	ctx := context.Background()

	svc, favoriteRepo := newTestFavoriteService(t)

	favoriteRepo.EXPECT().
		ListCommandIDs(ctx, int64(7)).
		Return([]string{"cmd-1", "cmd-2"}, nil)

	ids, err := svc.ListCommandIDs(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, []string{"cmd-1", "cmd-2"}, ids)

	_, err = svc.ListCommandIDs(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
