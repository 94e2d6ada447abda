package slogutil

import (
	"io"
	"log/slog"

	"hellod/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the process logger from the logging config. Records always go to
// console; when cfg.File is set they are also appended to that file, rotated
// per cfg.MaxSize and cfg.MaxBackups. The returned closer releases the file.
func New(cfg config.LoggingConfig, console io.Writer) (*slog.Logger, io.Closer, error) {
	level := LevelFromString(cfg.Level)
	consoleHandler := NewLineHandler(console, &slog.HandlerOptions{Level: level})

	if cfg.File == "" {
		return slog.New(consoleHandler), nopCloser{}, nil
	}

	f, err := OpenLogFile(cfg.File, cfg.MaxSize, cfg.MaxBackups)
	if err != nil {
		return nil, nil, err
	}

	fileHandler := NewLineHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(NewTeeHandler(consoleHandler, fileHandler)), f, nil
}
