package config

import (
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigureLogger builds the process-wide slog logger from the Log settings:
// a rotating file sink via lumberjack, wrapped in a text handler, matching
// the teacher's configureLogger exactly in shape.
func ConfigureLogger(l Log) *slog.Logger {
	filename := strings.TrimSpace(l.Filename)
	if filename == "" {
		filename = defaultLogFilename
	}

	level := ParseLevel(l.Level)
	if l.Verbose {
		level = slog.LevelDebug
	}

	writer := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
