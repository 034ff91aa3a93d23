// Package telemetry configures the process-wide diagnostic logger.
//
// Diagnostics are separate from the tool's report output: the summary,
// progress bar and preview go to stdout, while the logger writes to the
// writer given to Init (stderr in the CLI). Until Init is called the logger
// discards everything, which keeps library tests quiet.
package telemetry

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Init configures the global logger with a console writer on w and the given
// level ("debug", "info", "warn", ...). Unknown levels fall back to warn.
func Init(level string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	console := zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = "15:04:05"
	})

	l := zerolog.New(console).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	log = l.Level(lvl)
	return log
}

// L returns the global logger.
func L() *zerolog.Logger { return &log }
