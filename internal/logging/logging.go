// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs a text handler on stderr as the default logger.
// Verbose lowers the level to debug, which is where skipped input lines
// are reported.
func Setup(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
