package logger

import (
	"log/slog"
	"os"
)

// New returns the application logger. Handlers log with request_id so log
// lines can be correlated across the submission pipeline.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
