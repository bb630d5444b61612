package store

import (
	"context"
	"fmt"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/models"
)

type localCommandRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalCommandRepository(db *DB, logger *logger.Logger) CommandCache {
	return &localCommandRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceAll swaps the entire cached snapshot for records inside a single
// transaction, so readers never observe a half-written cache.
func (l *localCommandRepository) ReplaceAll(ctx context.Context, records []models.CommandRecord) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localCommandRepository.ReplaceAll").
			Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearCachedCommands); err != nil {
		log.Err(err).
			Str("func", "localCommandRepository.ReplaceAll").
			Msg("failed to clear cached commands")
		return fmt.Errorf("failed to clear cached commands: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, saveCachedCommand)
	if err != nil {
		log.Err(err).
			Str("func", "localCommandRepository.ReplaceAll").
			Msg("failed to prepare insert statement")
		return fmt.Errorf("failed to prepare cache insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, execErr := stmt.ExecContext(ctx,
			record.ID,
			record.Title,
			record.Description,
			record.CategoryName,
			record.Level,
			record.Prompt,
			record.UsageInstruction,
			record.Tags,
			record.EstimatedTime,
			record.Views,
			record.Copies,
			record.Popularity,
			record.IsActive,
			record.CreatedBy,
			record.CreatedAt,
			record.UpdatedAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "localCommandRepository.ReplaceAll").
				Str("command_id", record.ID).
				Msg("failed to insert cached command")
			return fmt.Errorf("failed to cache command (id=%s): %w", record.ID, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localCommandRepository.ReplaceAll").
			Int("records_count", len(records)).
			Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit cache transaction: %w", commitErr)
	}

	log.Debug().
		Str("func", "localCommandRepository.ReplaceAll").
		Int("records_count", len(records)).
		Msg("replaced cached command snapshot")

	return nil
}

// LoadAll reads back the whole cached snapshot, newest first.
func (l *localCommandRepository) LoadAll(ctx context.Context) ([]models.CommandRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getAllCachedCommands)
	if err != nil {
		log.Err(err).
			Str("func", "localCommandRepository.LoadAll").
			Msg("failed to query cached commands")
		return nil, fmt.Errorf("failed to query cached commands: %w", err)
	}
	defer rows.Close()

	records := make([]models.CommandRecord, 0, 50)

	for rows.Next() {
		var record models.CommandRecord

		if scanErr := scanCommandRecord(rows, &record); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localCommandRepository.LoadAll").
				Msg("failed to scan cached command row")
			return nil, fmt.Errorf("failed to scan cached command row: %w", scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localCommandRepository.LoadAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached command rows: %w", rowsErr)
	}

	return records, nil
}
