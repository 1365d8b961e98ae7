package cli

import (
	"io"
	"log/slog"
)

// newLogger пишет текстовые логи в w, обычно stderr
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
