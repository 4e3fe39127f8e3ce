// Package shared holds helpers common to all pokercoach commands.
package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures console logging at the given level.
func SetupLogger(level string) *log.Logger {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           parsed,
	})
}
