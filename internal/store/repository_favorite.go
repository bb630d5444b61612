package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/models"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository]. The (user_id, command_id) unique index makes Add
// idempotent at the database level; a second insert for the same pair
// surfaces as [ErrAlreadyFavorite].
type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListCommandIDs returns the ids of every command the user has favorited,
// most recently favorited first. Returns an empty slice for a user with no
// favorites.
func (r *favoriteRepository) ListCommandIDs(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listFavoriteCommandIDs, userID)
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.ListCommandIDs").
			Int64("user_id", userID).
			Msg("failed to execute query for listing favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 20)

	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).
				Str("func", "favoriteRepository.ListCommandIDs").
				Int64("user_id", userID).
				Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "favoriteRepository.ListCommandIDs").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ids, nil
}

// Add inserts a favorite row for the (user, command) pair and returns the
// persisted row.
//
// Error handling:
//   - unique_violation on (user_id, command_id) → [ErrAlreadyFavorite].
//   - foreign_key_violation on command_id → [ErrCommandNotFound].
//   - anything else → wrapped as [ErrExecutingQuery].
func (r *favoriteRepository) Add(ctx context.Context, userID int64, commandID string) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	var favorite models.Favorite

	err := r.DB.QueryRowContext(ctx, insertFavorite, userID, commandID).
		Scan(&favorite.ID, &favorite.UserID, &favorite.CommandID, &favorite.CreatedAt)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().
				Str("func", "favoriteRepository.Add").
				Int64("user_id", userID).
				Str("command_id", commandID).
				Msg("favorite already exists")
			return models.Favorite{}, ErrAlreadyFavorite
		case pgerrcode.ForeignKeyViolation:
			log.Warn().
				Str("func", "favoriteRepository.Add").
				Int64("user_id", userID).
				Str("command_id", commandID).
				Msg("command not found")
			return models.Favorite{}, ErrCommandNotFound
		}

		log.Err(err).
			Str("func", "favoriteRepository.Add").
			Int64("user_id", userID).
			Str("command_id", commandID).
			Msg("failed to insert favorite")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "favoriteRepository.Add").
		Int64("user_id", userID).
		Str("command_id", commandID).
		Msg("successfully added favorite")

	return favorite, nil
}

// Remove deletes the favorite row for the (user, command) pair.
//
// Returns [ErrFavoriteNotFound] when no row matched.
func (r *favoriteRepository) Remove(ctx context.Context, userID int64, commandID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteFavorite, userID, commandID)
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.Remove").
			Int64("user_id", userID).
			Str("command_id", commandID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.Remove").
			Int64("user_id", userID).
			Str("command_id", commandID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "favoriteRepository.Remove").
			Int64("user_id", userID).
			Str("command_id", commandID).
			Msg("favorite not found")
		return ErrFavoriteNotFound
	}

	log.Info().
		Str("func", "favoriteRepository.Remove").
		Int64("user_id", userID).
		Str("command_id", commandID).
		Msg("successfully removed favorite")

	return nil
}
