package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/mock"
	"github.com/promptdeck/promptdeck/models"
)

type favoritesFixture struct {
	store    *FavoritesStore
	gateway  *mock.MockGateway
	notifier *mock.MockNotifier
	session  *Session
}

func newFavoritesFixture(t *testing.T) *favoritesFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &favoritesFixture{
		gateway:  mock.NewMockGateway(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
		session:  NewSession(),
	}
	f.store = NewFavoritesStore(f.gateway, f.session, f.notifier, logger.Nop())

	return f
}

func (f *favoritesFixture) signIn() {
	f.session.Set(models.Identity{UserID: 7, Email: "user@example.com"})
}

func TestFavoritesStore_LoadForCurrentUser(t *testing.T) {
	f := newFavoritesFixture(t)
	f.signIn()

	f.gateway.EXPECT().ListFavorites(gomock.Any()).Return([]string{"cmd-1", "cmd-2"}, nil)

	require.NoError(t, f.store.LoadForCurrentUser(context.Background()))

	assert.True(t, f.store.IsFavorite("cmd-1"))
	assert.True(t, f.store.IsFavorite("cmd-2"))
	assert.False(t, f.store.IsFavorite("cmd-3"))
	assert.ElementsMatch(t, []string{"cmd-1", "cmd-2"}, f.store.CommandIDs())
}

func TestFavoritesStore_LoadForCurrentUser_AnonymousClearsWithoutCall(t *testing.T) {
	f := newFavoritesFixture(t)
	f.signIn()
	f.gateway.EXPECT().ListFavorites(gomock.Any()).Return([]string{"cmd-1"}, nil)
	require.NoError(t, f.store.LoadForCurrentUser(context.Background()))

	f.session.Clear()

	require.NoError(t, f.store.LoadForCurrentUser(context.Background()))
	assert.Empty(t, f.store.CommandIDs())
}

func TestFavoritesStore_Toggle_AddsThenRemoves(t *testing.T) {
	f := newFavoritesFixture(t)
	f.signIn()

	f.gateway.EXPECT().AddFavorite(gomock.Any(), "cmd-1").Return(models.Favorite{}, nil)
	require.NoError(t, f.store.Toggle(context.Background(), "cmd-1"))
	assert.True(t, f.store.IsFavorite("cmd-1"))

	f.gateway.EXPECT().RemoveFavorite(gomock.Any(), "cmd-1").Return(nil)
	require.NoError(t, f.store.Toggle(context.Background(), "cmd-1"))
	assert.False(t, f.store.IsFavorite("cmd-1"))
}

func TestFavoritesStore_Toggle_AnonymousNotifiesAndReturnsNil(t *testing.T) {
	f := newFavoritesFixture(t)

	f.notifier.EXPECT().Info("you must be logged in to favorite commands")

	require.NoError(t, f.store.Toggle(context.Background(), "cmd-1"))
	assert.False(t, f.store.IsFavorite("cmd-1"))
}

func TestFavoritesStore_Toggle_AddFailureLeavesSetUnchanged(t *testing.T) {
	f := newFavoritesFixture(t)
	f.signIn()

	f.gateway.EXPECT().AddFavorite(gomock.Any(), "cmd-1").
		Return(models.Favorite{}, errors.New("timeout"))
	f.notifier.EXPECT().Error("failed to add favorite")

	err := f.store.Toggle(context.Background(), "cmd-1")
	require.Error(t, err)
	assert.False(t, f.store.IsFavorite("cmd-1"))
}

func TestFavoritesStore_Toggle_RemoveFailureLeavesSetUnchanged(t *testing.T) {
	f := newFavoritesFixture(t)
	f.signIn()

	f.gateway.EXPECT().AddFavorite(gomock.Any(), "cmd-1").Return(models.Favorite{}, nil)
	require.NoError(t, f.store.Toggle(context.Background(), "cmd-1"))

	f.gateway.EXPECT().RemoveFavorite(gomock.Any(), "cmd-1").Return(errors.New("timeout"))
	f.notifier.EXPECT().Error("failed to remove favorite")

	err := f.store.Toggle(context.Background(), "cmd-1")
	require.Error(t, err)
	assert.True(t, f.store.IsFavorite("cmd-1"))
}
