// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ukaji3/commuteplot-go/internal/config"
)

// New builds a logger writing to out at the configured level.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.DevMode {
		level = zerolog.TraceLevel
	}

	if !cfg.LogJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(level)
}

// Configure replaces the global logger. Logs go to stderr so that stdout
// stays free for command output.
func Configure(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = New(cfg, os.Stderr)
}
