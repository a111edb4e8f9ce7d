package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel names the variable consulted for the log level.
const EnvLevel = "ISBNFIX_LOG_LEVEL"

// Level picks the log level: debug when verbose, otherwise the level named by
// ISBNFIX_LOG_LEVEL, falling back to warn.
func Level(verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	if s := strings.TrimSpace(os.Getenv(EnvLevel)); s != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(s)); err == nil && lvl != zerolog.NoLevel {
			return lvl
		}
	}
	return zerolog.WarnLevel
}

// New returns a human-readable logger writing to w.
func New(w io.Writer, level zerolog.Level, color bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
