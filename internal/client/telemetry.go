package client

import (
	"context"
	"time"

	"github.com/promptdeck/promptdeck/internal/adapter"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/workers"
	"github.com/promptdeck/promptdeck/models"
)

// activityLogTimeout bounds the detached activity-log call, which has no
// caller left to cancel it.
const activityLogTimeout = 5 * time.Second

// Reporter carries the view/copy telemetry. Every failure here is silent:
// logged, never shown to the user, and never allowed to affect the primary
// action (copy to clipboard, navigation) that triggered it.
//
// Counters follow optimistic-after-confirm: the in-memory value bumps by one
// only after the remote procedure acknowledged.
type Reporter struct {
	gateway  adapter.Gateway
	commands *CommandStore
	session  *Session
	runner   *workers.Runner

	logger *logger.Logger
}

func NewReporter(gateway adapter.Gateway, commands *CommandStore, session *Session, runner *workers.Runner, logger *logger.Logger) *Reporter {
	return &Reporter{
		gateway:  gateway,
		commands: commands,
		session:  session,
		runner:   runner,
		logger:   logger,
	}
}

// RecordView bumps the remote views counter and mirrors the increment into
// the command store on acknowledgement.
func (r *Reporter) RecordView(ctx context.Context, commandID string) {
	if err := r.gateway.RecordView(ctx, commandID); err != nil {
		r.logger.Warn().Err(err).Str("command_id", commandID).Msg("view counter increment failed")
		return
	}

	r.commands.bumpViews(commandID)
}

// RecordCopy bumps the remote copies counter and mirrors the increment into
// the command store on acknowledgement. When an identity is present it also
// fires a detached activity-log task; that task is never joined by the
// caller and its failure cannot affect the counter result.
func (r *Reporter) RecordCopy(ctx context.Context, commandID string) {
	if err := r.gateway.RecordCopy(ctx, commandID); err != nil {
		r.logger.Warn().Err(err).Str("command_id", commandID).Msg("copy counter increment failed")
		return
	}

	r.commands.bumpCopies(commandID)

	identity := r.session.Current()
	if identity == nil {
		return
	}

	entry := models.ActivityEntry{
		UserID:       identity.UserID,
		CommandID:    commandID,
		ActivityType: models.ActivityCopy,
	}

	r.runner.Go("activity-log", func() {
		logCtx, cancel := context.WithTimeout(context.Background(), activityLogTimeout)
		defer cancel()

		if err := r.gateway.LogActivity(logCtx, entry); err != nil {
			r.logger.Warn().Err(err).Str("command_id", commandID).Msg("activity log failed")
		}
	})
}
