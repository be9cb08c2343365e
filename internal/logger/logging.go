// Package logger provides modifications to charmbracelet/log's default
// logger shared by the acrolex packages and the CLI.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed charm logger that respects the global log level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetDebug switches the global level between debug and info.
func SetDebug(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.InfoLevel)
}
