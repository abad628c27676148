package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger.
//
// level is parsed into a zerolog level and defaults to InfoLevel on parse error.
// format "json" writes structured lines, anything else a human-readable console.
func InitLogger(level, format string) zerolog.Logger {
	return initLogger(os.Stderr, level, format)
}

func initLogger(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
	return logger
}
