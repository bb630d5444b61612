package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/promptdeck/promptdeck/internal/adapter"
	"github.com/promptdeck/promptdeck/internal/logger"
)

// FavoritesStore mirrors the set of command ids the current identity has
// favorited.
//
// Toggle applies no optimistic change: the set mutates only after the remote
// insert or delete succeeded, so a failure never causes a flicker that has
// to be rolled back.
type FavoritesStore struct {
	gateway  adapter.Gateway
	session  *Session
	notifier Notifier

	logger *logger.Logger

	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewFavoritesStore(gateway adapter.Gateway, session *Session, notifier Notifier, logger *logger.Logger) *FavoritesStore {
	return &FavoritesStore{
		gateway:  gateway,
		session:  session,
		notifier: notifier,
		logger:   logger,
		ids:      map[string]struct{}{},
	}
}

// LoadForCurrentUser refreshes the set from the service. When anonymous the
// set is cleared without a remote call.
func (s *FavoritesStore) LoadForCurrentUser(ctx context.Context) error {
	if !s.session.Authenticated() {
		s.mu.Lock()
		s.ids = map[string]struct{}{}
		s.mu.Unlock()
		return nil
	}

	commandIDs, err := s.gateway.ListFavorites(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("loading favorites failed")
		s.notifier.Error("failed to load favorites")
		return fmt.Errorf("loading favorites failed: %w", err)
	}

	ids := make(map[string]struct{}, len(commandIDs))
	for _, id := range commandIDs {
		ids[id] = struct{}{}
	}

	s.mu.Lock()
	s.ids = ids
	s.mu.Unlock()

	return nil
}

// IsFavorite reports membership of the in-memory set.
func (s *FavoritesStore) IsFavorite(commandID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.ids[commandID]
	return ok
}

// CommandIDs returns a copy of the favorited ids.
func (s *FavoritesStore) CommandIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	return ids
}

// Toggle favorites or unfavorites a command for the current identity.
//
// Anonymous toggles are a normal UI path, not an error: the user gets a
// "must be logged in" notice and nil is returned. A remote failure leaves
// the set unchanged, surfaces a notice, and returns the error.
func (s *FavoritesStore) Toggle(ctx context.Context, commandID string) error {
	if !s.session.Authenticated() {
		s.notifier.Info("you must be logged in to favorite commands")
		return nil
	}

	if s.IsFavorite(commandID) {
		if err := s.gateway.RemoveFavorite(ctx, commandID); err != nil {
			s.logger.Error().Err(err).Str("command_id", commandID).Msg("removing favorite failed")
			s.notifier.Error("failed to remove favorite")
			return fmt.Errorf("removing favorite failed: %w", err)
		}

		s.mu.Lock()
		delete(s.ids, commandID)
		s.mu.Unlock()
		return nil
	}

	if _, err := s.gateway.AddFavorite(ctx, commandID); err != nil {
		s.logger.Error().Err(err).Str("command_id", commandID).Msg("adding favorite failed")
		s.notifier.Error("failed to add favorite")
		return fmt.Errorf("adding favorite failed: %w", err)
	}

	s.mu.Lock()
	s.ids[commandID] = struct{}{}
	s.mu.Unlock()
	return nil
}
