package app

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns the diagnostics logger. It writes human-readable lines to
// w (stderr in practice), never to the output stream, at warn level unless
// verbose is set.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Str("component", "logknife").
		Logger()
}
