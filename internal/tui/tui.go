package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptdeck/promptdeck/internal/client"
	"github.com/promptdeck/promptdeck/internal/logger"
)

var ErrUserQuit = errors.New("user quit the dashboard")

// TUI runs the terminal dashboard over a wired client [client.App]. It owns
// the Bubble Tea program and installs its status-line notifier into the
// client stores before the first frame.
type TUI struct {
	app    *client.App
	logger *logger.Logger
}

func New(app *client.App, logger *logger.Logger) *TUI {
	return &TUI{app: app, logger: logger}
}

// Run blocks until the user quits. The notifier is attached to the running
// program so store notices land on the dashboard status line regardless of
// which goroutine emits them.
func (t *TUI) Run(ctx context.Context, notifier *StatusNotifier) error {
	model := newDashboardModel(ctx, t.app)

	program := tea.NewProgram(model, tea.WithAltScreen())
	notifier.Attach(program)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
