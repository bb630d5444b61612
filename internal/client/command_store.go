package client

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/promptdeck/promptdeck/internal/adapter"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/internal/validators"
	"github.com/promptdeck/promptdeck/models"
)

// relatedLimit caps the result of [CommandStore.Related].
const relatedLimit = 4

// CommandStore is the in-memory mirror of the active commands table, held in
// the dashboard's UI schema and ordered newest first.
//
// State changes only after the remote call confirmed: a failed load keeps the
// previous list, a failed create prepends nothing. The optional cache
// snapshots the last successful load so the next start can show data before
// the first refresh completes.
type CommandStore struct {
	gateway  adapter.Gateway
	cache    store.CommandCache
	session  *Session
	notifier Notifier

	validator validators.Validator
	logger    *logger.Logger

	mu       sync.RWMutex
	commands []models.Command
	loading  bool
}

// NewCommandStore wires a command store. cache may be nil, which disables
// warm starts but changes nothing else.
func NewCommandStore(gateway adapter.Gateway, cache store.CommandCache, session *Session, notifier Notifier, logger *logger.Logger) *CommandStore {
	return &CommandStore{
		gateway:   gateway,
		cache:     cache,
		session:   session,
		notifier:  notifier,
		validator: validators.NewCommandValidator(),
		logger:    logger,
	}
}

// Loading reports whether a full load is in flight.
func (s *CommandStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Commands returns a copy of the current in-memory list, newest first.
func (s *CommandStore) Commands() []models.Command {
	s.mu.RLock()
	defer s.mu.RUnlock()

	commands := make([]models.Command, len(s.commands))
	copy(commands, s.commands)
	return commands
}

// WarmStart seeds the list from the local cache snapshot. It is called once
// before the first LoadAll; a missing or failing cache is logged and ignored,
// the dashboard simply starts empty.
func (s *CommandStore) WarmStart(ctx context.Context) {
	if s.cache == nil {
		return
	}

	records, err := s.cache.LoadAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("command cache warm start failed")
		return
	}
	if len(records) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.commands) > 0 {
		// A full load already landed; the stale snapshot loses.
		return
	}
	s.commands = translateRecords(records)
	s.logger.Info().Int("count", len(records)).Msg("command list warm-started from cache")
}

// LoadAll fetches every active command and replaces the in-memory list.
//
// The loading flag is true for the duration of the call. On failure the
// previous list is left untouched, the error is reported through the
// notifier, and the error is returned.
func (s *CommandStore) LoadAll(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	records, err := s.gateway.FetchCommands(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("loading commands failed")
		s.notifier.Error("failed to load commands")
		return fmt.Errorf("loading commands failed: %w", err)
	}

	s.mu.Lock()
	s.commands = translateRecords(records)
	s.mu.Unlock()

	s.snapshot(ctx, records)

	return nil
}

// Create validates the input, requires a signed-in identity, and persists a
// new command. On success the stored row is translated and prepended to the
// in-memory list.
//
// Returns [ErrUnauthenticated] before any network call when anonymous, a
// validator error (wrapped) when a required field is blank, and the
// gateway's typed error otherwise.
func (s *CommandStore) Create(ctx context.Context, input models.NewCommand) (models.Command, error) {
	if !s.session.Authenticated() {
		return models.Command{}, ErrUnauthenticated
	}

	if err := s.validator.Validate(ctx, input); err != nil {
		return models.Command{}, fmt.Errorf("invalid command input: %w", err)
	}

	record, err := s.gateway.CreateCommand(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("creating command failed")
		return models.Command{}, err
	}

	command := models.CommandFromRecord(record)

	s.mu.Lock()
	s.commands = append([]models.Command{command}, s.commands...)
	s.mu.Unlock()

	return command, nil
}

// Update sends a sparse patch and, on success, replaces the matching
// in-memory entry with the row the service returned.
func (s *CommandStore) Update(ctx context.Context, id string, patch models.CommandPatch) (models.Command, error) {
	if !s.session.Authenticated() {
		return models.Command{}, ErrUnauthenticated
	}

	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Command{}, fmt.Errorf("invalid command patch: %w", err)
	}

	record, err := s.gateway.PatchCommand(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Str("command_id", id).Msg("updating command failed")
		return models.Command{}, err
	}

	command := models.CommandFromRecord(record)

	s.mu.Lock()
	for i := range s.commands {
		if s.commands[i].ID == id {
			s.commands[i] = command
			break
		}
	}
	s.mu.Unlock()

	return command, nil
}

// SoftDelete marks the command inactive remotely and, on success, removes it
// from the in-memory list. The remote row persists.
func (s *CommandStore) SoftDelete(ctx context.Context, id string) error {
	if !s.session.Authenticated() {
		return ErrUnauthenticated
	}

	if err := s.gateway.DeleteCommand(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("command_id", id).Msg("deleting command failed")
		return err
	}

	s.mu.Lock()
	for i := range s.commands {
		if s.commands[i].ID == id {
			s.commands = append(s.commands[:i], s.commands[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return nil
}

// GetByID is a pure in-memory lookup. Absence is reported through the ok
// flag, never as an error.
func (s *CommandStore) GetByID(id string) (models.Command, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, command := range s.commands {
		if command.ID == id {
			return command, true
		}
	}
	return models.Command{}, false
}

// Related returns up to four other commands related to id, ranked by:
// same category above cross-category tag match, higher popularity first
// within each band. An unknown id yields an empty result.
//
// This is a pure function of the in-memory list; it never queries the
// service.
func (s *CommandStore) Related(id string) []models.Command {
	target, ok := s.GetByID(id)
	if !ok {
		return []models.Command{}
	}

	targetTags := make(map[string]struct{}, len(target.Tags))
	for _, tag := range target.Tags {
		targetTags[tag] = struct{}{}
	}

	s.mu.RLock()
	var sameCategory, tagMatch []models.Command
	for _, command := range s.commands {
		if command.ID == id {
			continue
		}
		if command.Category == target.Category {
			sameCategory = append(sameCategory, command)
			continue
		}
		if sharesTag(command.Tags, targetTags) {
			tagMatch = append(tagMatch, command)
		}
	}
	s.mu.RUnlock()

	byPopularity := func(commands []models.Command) {
		sort.SliceStable(commands, func(i, j int) bool {
			return commands[i].Popularity > commands[j].Popularity
		})
	}
	byPopularity(sameCategory)
	byPopularity(tagMatch)

	related := make([]models.Command, 0, relatedLimit)
	for _, command := range append(sameCategory, tagMatch...) {
		if len(related) == relatedLimit {
			break
		}
		related = append(related, command)
	}
	return related
}

// bumpViews increments the in-memory views counter by one. Called by the
// telemetry reporter after the remote increment was acknowledged.
func (s *CommandStore) bumpViews(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.commands {
		if s.commands[i].ID == id {
			s.commands[i].Views++
			return
		}
	}
}

// bumpCopies increments the in-memory copies counter by one.
func (s *CommandStore) bumpCopies(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.commands {
		if s.commands[i].ID == id {
			s.commands[i].Copies++
			return
		}
	}
}

func (s *CommandStore) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// snapshot persists the last successful load. Cache failures are logged and
// swallowed; the cache is an accelerator, not a source of truth.
func (s *CommandStore) snapshot(ctx context.Context, records []models.CommandRecord) {
	if s.cache == nil {
		return
	}

	if err := s.cache.ReplaceAll(ctx, records); err != nil {
		s.logger.Warn().Err(err).Msg("command cache snapshot failed")
	}
}

func translateRecords(records []models.CommandRecord) []models.Command {
	commands := make([]models.Command, 0, len(records))
	for _, record := range records {
		commands = append(commands, models.CommandFromRecord(record))
	}
	return commands
}

func sharesTag(tags models.Tags, targetTags map[string]struct{}) bool {
	for _, tag := range tags {
		if _, ok := targetTags[tag]; ok {
			return true
		}
	}
	return false
}
