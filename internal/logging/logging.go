// Package logging configures the structured logger for hbnb and provides
// the request-logging middleware used by the web UI.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the default slog logger. Logs go to stderr so command
// output on stdout (tables, --format json) stays clean. Dev mode uses
// human-readable text at debug level; otherwise JSON at info level.
func Setup(devMode bool) {
	var handler slog.Handler
	if devMode {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	slog.SetDefault(slog.New(handler))
}
