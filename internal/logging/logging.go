// Package logging builds the slog loggers used by the binaries.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vancomm/minesweeper-console/internal/config"
)

// New logs to stderr: colored text at debug level in development, JSON
// otherwise.
func New(development bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if development {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

// NewFile logs to a size-rotated file, keeping stdout free for the board.
// The returned closer flushes and closes the current file.
func NewFile(cfg *config.LogFile, development bool) (*slog.Logger, io.Closer) {
	w := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, nil)
	if development {
		handler = tint.NewHandler(w, &tint.Options{
			Level:   slog.LevelDebug,
			NoColor: true,
		})
	}
	return slog.New(handler), w
}
