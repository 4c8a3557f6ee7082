// Package logger holds the process-wide slog logger. Diagnostics go to stderr
// so stdout stays reserved for command results.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// LogLevel controls the default logger. It starts at Info.
var LogLevel = new(slog.LevelVar)

// Logger writes text records to stderr at LogLevel.
var Logger = New(os.Stderr)

// New returns a text logger bound to LogLevel that writes to w.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: LogLevel}))
}

// InitSlog installs Logger as the slog default. Verbose lowers the level to
// Debug.
func InitSlog(verbose bool) {
	slog.SetDefault(Logger)
	if verbose {
		LogLevel.Set(slog.LevelDebug)
	} else {
		LogLevel.Set(slog.LevelInfo)
	}
}
