// Package logger configures the zerolog logger shared by both binaries.
//
// Both tools log operational events (fetches, parse failures, snapshot
// loads) as structured console output on stderr so that report data on
// stdout stays clean for piping.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Verbose enables debug
// output; otherwise only info and above are emitted.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Logger().Level(level)
}

// Nop returns a logger that discards everything. Used in tests and as
// a default when callers do not care about logging.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
