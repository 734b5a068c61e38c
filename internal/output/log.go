// Package output provides terminal output utilities.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger receives diagnostics: skipped init items, title fallbacks, watcher
// and rebuild events. Status lines go through Printer instead.
var Logger = NewLogger(os.Stderr, false)

// NewLogger returns a logger writing to w. Verbose output adds debug events,
// timestamps, and the calling site.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		ReportCaller:    verbose,
		Prefix:          "foresite",
	})
}

// SetupLogging points the package logger at w, normally the running
// command's error stream.
func SetupLogging(w io.Writer, verbose bool) {
	Logger = NewLogger(w, verbose)
}

func Debug(msg string, keyvals ...any) {
	Logger.Helper()
	Logger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...any) {
	Logger.Helper()
	Logger.Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...any) {
	Logger.Helper()
	Logger.Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...any) {
	Logger.Helper()
	Logger.Error(msg, keyvals...)
}
