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
	"github.com/promptdeck/promptdeck/internal/workers"
	"github.com/promptdeck/promptdeck/models"
)

type reporterFixture struct {
	reporter *Reporter
	commands *CommandStore
	gateway  *mock.MockGateway
	session  *Session
	runner   *workers.Runner
}

func newReporterFixture(t *testing.T) *reporterFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &reporterFixture{
		gateway: mock.NewMockGateway(ctrl),
		session: NewSession(),
		runner:  workers.NewRunner(logger.Nop()),
	}
	f.commands = NewCommandStore(f.gateway, nil, f.session, mock.NewMockNotifier(ctrl), logger.Nop())
	f.reporter = NewReporter(f.gateway, f.commands, f.session, f.runner, logger.Nop())

	f.gateway.EXPECT().FetchCommands(gomock.Any()).
		Return([]models.CommandRecord{{ID: "cmd-1", Title: "one", IsActive: true, Views: 10, Copies: 5}}, nil)
	require.NoError(t, f.commands.LoadAll(context.Background()))

	return f
}

func (f *reporterFixture) counters(t *testing.T) (views, copies int) {
	t.Helper()

	command, ok := f.commands.GetByID("cmd-1")
	require.True(t, ok)
	return command.Views, command.Copies
}

func TestReporter_RecordView_BumpsAfterAcknowledgement(t *testing.T) {
	f := newReporterFixture(t)

	f.gateway.EXPECT().RecordView(gomock.Any(), "cmd-1").Return(nil)

	f.reporter.RecordView(context.Background(), "cmd-1")

	views, copies := f.counters(t)
	assert.Equal(t, 11, views)
	assert.Equal(t, 5, copies)
}

func TestReporter_RecordView_FailureLeavesCounterUnchanged(t *testing.T) {
	f := newReporterFixture(t)

	f.gateway.EXPECT().RecordView(gomock.Any(), "cmd-1").Return(errors.New("timeout"))

	f.reporter.RecordView(context.Background(), "cmd-1")

	views, _ := f.counters(t)
	assert.Equal(t, 10, views)
}

func TestReporter_RecordCopy_BumpsAndLogsActivity(t *testing.T) {
	f := newReporterFixture(t)
	f.session.Set(models.Identity{UserID: 7, Email: "user@example.com"})

	f.gateway.EXPECT().RecordCopy(gomock.Any(), "cmd-1").Return(nil)
	f.gateway.EXPECT().
		LogActivity(gomock.Any(), models.ActivityEntry{
			UserID:       7,
			CommandID:    "cmd-1",
			ActivityType: models.ActivityCopy,
		}).
		Return(nil)

	f.reporter.RecordCopy(context.Background(), "cmd-1")
	f.runner.Wait()

	_, copies := f.counters(t)
	assert.Equal(t, 6, copies)
}

func TestReporter_RecordCopy_AnonymousSkipsActivityLog(t *testing.T) {
	f := newReporterFixture(t)

	f.gateway.EXPECT().RecordCopy(gomock.Any(), "cmd-1").Return(nil)

	f.reporter.RecordCopy(context.Background(), "cmd-1")
	f.runner.Wait()

	_, copies := f.counters(t)
	assert.Equal(t, 6, copies)
}

func TestReporter_RecordCopy_ActivityLogFailureIsSilent(t *testing.T) {
	f := newReporterFixture(t)
	f.session.Set(models.Identity{UserID: 7, Email: "user@example.com"})

	f.gateway.EXPECT().RecordCopy(gomock.Any(), "cmd-1").Return(nil)
	f.gateway.EXPECT().LogActivity(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	f.reporter.RecordCopy(context.Background(), "cmd-1")
	f.runner.Wait()

	_, copies := f.counters(t)
	assert.Equal(t, 6, copies)
}

func TestReporter_RecordCopy_FailureLeavesCounterAndSkipsActivity(t *testing.T) {
	f := newReporterFixture(t)
	f.session.Set(models.Identity{UserID: 7, Email: "user@example.com"})

	f.gateway.EXPECT().RecordCopy(gomock.Any(), "cmd-1").Return(errors.New("timeout"))

	f.reporter.RecordCopy(context.Background(), "cmd-1")
	f.runner.Wait()

	_, copies := f.counters(t)
	assert.Equal(t, 5, copies)
}
