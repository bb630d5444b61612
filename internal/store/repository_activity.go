package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/models"
)

// activityRepository is the PostgreSQL-backed implementation of
// [ActivityRepository]. It writes analytics rows through the
// log_user_activity stored procedure and never reads them back.
type activityRepository struct {
	*DB
	logger *logger.Logger
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{
		DB:     db,
		logger: logger,
	}
}

// Log persists one activity entry via the log_user_activity procedure.
//
// A zero UserID is recorded as NULL (anonymous activity). Failures are
// classified so operators can tell transient connection problems apart from
// permanent ones; the caller decides whether the failure is worth surfacing.
func (r *activityRepository) Log(ctx context.Context, entry models.ActivityEntry) error {
	log := logger.FromContext(ctx)

	var userID any
	if entry.UserID != 0 {
		userID = entry.UserID
	}

	var metadata any
	if entry.Metadata != nil {
		raw, err := json.Marshal(entry.Metadata)
		if err != nil {
			log.Err(err).
				Str("func", "activityRepository.Log").
				Str("command_id", entry.CommandID).
				Msg("failed to marshal activity metadata")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		metadata = raw
	}

	if _, err := r.DB.ExecContext(ctx, logUserActivity, userID, entry.CommandID, entry.ActivityType, metadata); err != nil {
		event := log.Error()
		if r.errorClassificator.Classify(err) == Retryable {
			event = log.Warn()
		}
		event.Err(err).
			Str("func", "activityRepository.Log").
			Str("command_id", entry.CommandID).
			Str("activity_type", entry.ActivityType).
			Msg("failed to log user activity")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
