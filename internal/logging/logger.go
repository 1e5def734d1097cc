package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the global slog logger with JSON output to stdout.
func Setup() {
	slog.SetDefault(slog.New(stdoutHandler()))
}

// WithDB fans records out to stdout and to the system_logs sink.
func WithDB(db *DBHandler) {
	slog.SetDefault(slog.New(NewMultiHandler(stdoutHandler(), db)))
}

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
