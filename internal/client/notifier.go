package client

import "github.com/promptdeck/promptdeck/internal/logger"

//go:generate mockgen -source=notifier.go -destination=../mock/notifier_mock.go -package=mock

// Notifier is the toast analogue: stores push user-visible notices through
// it instead of returning presentation concerns to their callers. The TUI
// installs its own implementation; LogNotifier serves headless use.
type Notifier interface {
	// Info shows a neutral notice ("must be logged in", "command created").
	Info(message string)

	// Error shows a failure notice the user should act on.
	Error(message string)
}

// LogNotifier writes notices to the structured log. Used when no UI is
// attached.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Info(message string) {
	n.logger.Info().Str("notice", message).Msg("notification")
}

func (n *LogNotifier) Error(message string) {
	n.logger.Error().Str("notice", message).Msg("notification")
}
