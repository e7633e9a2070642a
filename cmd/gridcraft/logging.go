package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// tuiAnnotation marks commands that take over the terminal. Their logs go
// to a file so the alt-screen stays clean.
const tuiAnnotation = "tui"

// logger is the process logger, installed by setupLogger.
var logger = log.Default()

// logFile is closed when the process exits.
var logFile io.Closer

func setupLogger(cmd *cobra.Command) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if cmd.Annotations[tuiAnnotation] == "true" {
		f, err := openLogFile()
		if err != nil {
			// Logging to stderr would corrupt the screen
			out = io.Discard
		} else {
			out = f
			logFile = f
		}
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          "gridcraft",
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	log.SetDefault(logger)
	return nil
}

// openLogFile opens ~/.gridcraft/gridcraft.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".gridcraft")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "gridcraft.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
