package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/models"
)

// commandRepository is the PostgreSQL-backed implementation of
// [CommandRepository]. It executes all command CRUD and counter operations
// against the "commands" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (command_id, user_id, etc.).
type commandRepository struct {
	*DB
	logger *logger.Logger
}

// NewCommandRepository constructs a [CommandRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewCommandRepository(db *DB, logger *logger.Logger) CommandRepository {
	return &commandRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCommandRecord reads one commands-table row in [commandColumns] order.
// Nullable columns (usage_instructions, estimated_time, created_by) collapse
// to their zero values.
func scanCommandRecord(row rowScanner, record *models.CommandRecord) error {
	var usage, estimated sql.NullString
	var createdBy sql.NullInt64

	err := row.Scan(
		&record.ID,
		&record.Title,
		&record.Description,
		&record.CategoryName,
		&record.Level,
		&record.Prompt,
		&usage,
		&record.Tags,
		&estimated,
		&record.Views,
		&record.Copies,
		&record.Popularity,
		&record.IsActive,
		&createdBy,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return err
	}

	record.UsageInstruction = usage.String
	record.EstimatedTime = estimated.String
	record.CreatedBy = createdBy.Int64

	return nil
}

// ListActive retrieves every active command row, newest first.
//
// Returns an empty slice when the table holds no active commands. Inactive
// rows are filtered out at the database, never in Go.
func (r *commandRepository) ListActive(ctx context.Context) ([]models.CommandRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActiveCommandsQuery(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "commandRepository.ListActive").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "commandRepository.ListActive").
			Msg("failed to execute query for listing active commands")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CommandRecord, 0, 50)

	for rows.Next() {
		var record models.CommandRecord

		if scanErr := scanCommandRecord(rows, &record); scanErr != nil {
			log.Err(scanErr).
				Str("func", "commandRepository.ListActive").
				Msg("failed to scan command row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "commandRepository.ListActive").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// GetByID retrieves a single active command by its id.
//
// Returns [ErrCommandNotFound] when no active row matches.
func (r *commandRepository) GetByID(ctx context.Context, id string) (models.CommandRecord, error) {
	log := logger.FromContext(ctx)

	var record models.CommandRecord

	err := scanCommandRecord(r.DB.QueryRowContext(ctx, getCommandByID, id), &record)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "commandRepository.GetByID").
			Str("command_id", id).
			Msg("command not found")
		return models.CommandRecord{}, ErrCommandNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "commandRepository.GetByID").
			Str("command_id", id).
			Msg("failed to execute query for getting command")
		return models.CommandRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// Create inserts a new command row and writes the server-assigned defaults
// (counters, popularity, is_active, timestamps) back into record via the
// INSERT … RETURNING clause.
//
// Error handling:
//   - unique_violation on the title index → [ErrDuplicateTitle]
//   - not_null/check violation → [ErrMissingRequiredField]
//   - insufficient_privilege → [ErrPermissionDenied]
//   - anything else → wrapped as [ErrExecutingQuery]
func (r *commandRepository) Create(ctx context.Context, record *models.CommandRecord) error {
	log := logger.FromContext(ctx)

	var createdBy any
	if record.CreatedBy != 0 {
		createdBy = record.CreatedBy
	}

	row := r.DB.QueryRowContext(ctx, insertCommand,
		record.ID,
		record.Title,
		record.Description,
		record.CategoryName,
		record.Level,
		record.Prompt,
		record.UsageInstruction,
		record.Tags,
		record.EstimatedTime,
		createdBy,
	)

	if err := scanCommandRecord(row, record); err != nil {
		log.Err(err).
			Str("func", "commandRepository.Create").
			Str("command_id", record.ID).
			Str("title", record.Title).
			Msg("failed to insert command")

		if mapped := commandWriteError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "commandRepository.Create").
		Str("command_id", record.ID).
		Msg("successfully created command")

	return nil
}

// Patch applies a sparse update built from the non-nil fields of patch and
// returns the canonical updated row.
//
// Returns [ErrCommandNotFound] when the id does not match an active row, and
// the same constraint mapping as [commandRepository.Create] for write
// failures. An empty patch still bumps updated_at.
func (r *commandRepository) Patch(ctx context.Context, id string, patch models.CommandPatch) (models.CommandRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPatchCommandQuery(ctx, id, patch)
	if err != nil {
		log.Err(err).
			Str("func", "commandRepository.Patch").
			Str("command_id", id).
			Msg("failed to build update query")
		return models.CommandRecord{}, err
	}

	var record models.CommandRecord

	err = scanCommandRecord(r.DB.QueryRowContext(ctx, query, args...), &record)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().
			Str("func", "commandRepository.Patch").
			Str("command_id", id).
			Msg("command not found")
		return models.CommandRecord{}, ErrCommandNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "commandRepository.Patch").
			Str("command_id", id).
			Msg("failed to execute update query")

		if mapped := commandWriteError(err); mapped != err {
			return models.CommandRecord{}, mapped
		}
		return models.CommandRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "commandRepository.Patch").
		Str("command_id", id).
		Msg("successfully updated command")

	return record, nil
}

// Deactivate soft-deletes a command by flipping is_active to false.
// The row is preserved for analytics; it simply stops appearing in
// [commandRepository.ListActive] results.
//
// Returns [ErrCommandNotFound] when the id does not match an active row.
func (r *commandRepository) Deactivate(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deactivateCommand, id)
	if err != nil {
		log.Err(err).
			Str("func", "commandRepository.Deactivate").
			Str("command_id", id).
			Msg("failed to execute soft delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "commandRepository.Deactivate").
			Str("command_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "commandRepository.Deactivate").
			Str("command_id", id).
			Msg("command not found")
		return ErrCommandNotFound
	}

	log.Info().
		Str("func", "commandRepository.Deactivate").
		Str("command_id", id).
		Msg("successfully soft-deleted command")

	return nil
}

// IncrementViews bumps the views counter via the increment_command_views
// stored procedure.
func (r *commandRepository) IncrementViews(ctx context.Context, id string) error {
	return r.callCounterProcedure(ctx, incrementCommandViews, "commandRepository.IncrementViews", id)
}

// IncrementCopies bumps the copies counter via the increment_command_copies
// stored procedure.
func (r *commandRepository) IncrementCopies(ctx context.Context, id string) error {
	return r.callCounterProcedure(ctx, incrementCommandCopies, "commandRepository.IncrementCopies", id)
}

// callCounterProcedure executes one of the counter stored procedures.
// Failures are classified so operators can tell transient connection
// problems apart from permanent ones in the logs.
func (r *commandRepository) callCounterProcedure(ctx context.Context, query string, funcName string, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, query, id); err != nil {
		event := log.Error()
		if r.errorClassificator.Classify(err) == Retryable {
			event = log.Warn()
		}
		event.Err(err).
			Str("func", funcName).
			Str("command_id", id).
			Msg("failed to execute counter procedure")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
