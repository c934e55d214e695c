package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a logger writing human-readable diagnostics to stderr.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(os.Stderr),
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
