// Package logger builds the zerolog loggers shared by the HTTP layer and GORM.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the root logger.
type Config struct {
	// Level is a zerolog level name (debug, info, warn, error). Empty means info.
	Level string
	// Output defaults to os.Stdout.
	Output io.Writer
	// Pretty switches to the human-readable console writer.
	Pretty bool
}

// New returns the root logger for the service.
func New(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(cfg.Level))
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	if strings.TrimSpace(level) == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// GormWriter feeds GORM's logger output into zerolog.
type GormWriter struct {
	Logger zerolog.Logger
}

// Printf implements gorm.io/gorm/logger.Writer.
func (w GormWriter) Printf(format string, v ...interface{}) {
	w.Logger.Info().Str("component", "gorm").Msgf(strings.TrimLeft(format, "\r\n"), v...)
}
