package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/promptdeck/promptdeck/internal/client"
	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/logger"
	"github.com/promptdeck/promptdeck/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log, closeLog := newClientLogger()
	defer closeLog()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	notifier := tui.NewStatusNotifier()

	app, err := client.NewApp(cfg, notifier, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client app")
	}
	defer app.Shutdown()

	ui := tui.New(app, log)
	if err = ui.Run(context.Background(), notifier); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("error running dashboard")
	}
}

// newClientLogger writes logs to a file so the alternate-screen UI stays
// clean. When the file cannot be created the logs are discarded.
func newClientLogger() (*logger.Logger, func()) {
	path := filepath.Join(os.TempDir(), "promptdeck-client.log")

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logger.NewWithOutput("promptdeck-client", io.Discard), func() {}
	}

	return logger.NewWithOutput("promptdeck-client", file), func() { _ = file.Close() }
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
