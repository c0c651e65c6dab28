// Package logging builds the application logger.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

func prefix() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#6366F1")).
		Bold(true).
		Padding(0, 1).
		Render("nonton")
}

// New returns a logger writing to w. Debug enables debug level with
// timestamps and caller information.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: debug,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix(),
	})

	if debug {
		logger.SetLevel(log.DebugLevel)
		logger.Debug("debug logging enabled")
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
