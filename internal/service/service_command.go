package service

import (
	"context"
	"fmt"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/store"
	"github.com/promptdeck/promptdeck/internal/utils"
	"github.com/promptdeck/promptdeck/internal/validators"
	"github.com/promptdeck/promptdeck/models"
)

// commandService implements CommandService on top of the commands repository.
//
// Validation runs before any repository call, so malformed input never
// reaches the database; constraint errors that slip through (duplicate
// title under a concurrent create) still surface as the repository's
// sentinel errors.
type commandService struct {
	commandRepository store.CommandRepository
	validator         validators.Validator
	idGenerator       *utils.UUIDGenerator
	logger            *logger.Logger
}

func NewCommandService(commandRepository store.CommandRepository, validator validators.Validator, logger *logger.Logger) CommandService {
	return &commandService{
		commandRepository: commandRepository,
		validator:         validator,
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// ListActive returns every active command, newest first.
func (s *commandService) ListActive(ctx context.Context) ([]models.CommandRecord, error) {
	return s.commandRepository.ListActive(ctx)
}

// Get returns a single active command by id.
func (s *commandService) Get(ctx context.Context, id string) (models.CommandRecord, error) {
	return s.commandRepository.GetByID(ctx, id)
}

// Create validates the input, assigns a fresh id, and persists the command.
// createdBy links the row to the authenticated author; zero means anonymous.
//
// Returns ErrInvalidDataProvided (wrapping the specific validator error) when
// a required field is blank or the level is unknown.
func (s *commandService) Create(ctx context.Context, input models.NewCommand, createdBy int64) (models.CommandRecord, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, input); err != nil {
		log.Warn().Err(err).Str("title", input.Title).Msg("command creation input rejected")
		return models.CommandRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tags := input.Tags
	if tags == nil {
		tags = models.Tags{}
	}

	record := models.CommandRecord{
		ID:               s.idGenerator.Generate(),
		Title:            input.Title,
		Description:      input.Description,
		CategoryName:     input.Category,
		Level:            input.Level,
		Prompt:           input.Prompt,
		UsageInstruction: input.Usage,
		Tags:             tags,
		EstimatedTime:    input.EstimatedTime,
		CreatedBy:        createdBy,
	}

	if err := s.commandRepository.Create(ctx, &record); err != nil {
		return models.CommandRecord{}, err
	}

	return record, nil
}

// Patch validates the sparse update and applies it, returning the canonical
// updated row.
//
// Returns ErrInvalidDataProvided when the patch is empty or a provided field
// is blank; repository sentinels (store.ErrCommandNotFound,
// store.ErrDuplicateTitle) pass through.
func (s *commandService) Patch(ctx context.Context, id string, patch models.CommandPatch) (models.CommandRecord, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.CommandRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyCommandID)
	}

	if err := s.validator.Validate(ctx, patch); err != nil {
		log.Warn().Err(err).Str("command_id", id).Msg("command patch rejected")
		return models.CommandRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.commandRepository.Patch(ctx, id, patch)
}

// Deactivate soft-deletes a command.
func (s *commandService) Deactivate(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyCommandID)
	}

	return s.commandRepository.Deactivate(ctx, id)
}

// RecordView bumps the views counter of a command.
func (s *commandService) RecordView(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyCommandID)
	}

	return s.commandRepository.IncrementViews(ctx, id)
}

// RecordCopy bumps the copies counter of a command.
func (s *commandService) RecordCopy(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyCommandID)
	}

	return s.commandRepository.IncrementCopies(ctx, id)
}
