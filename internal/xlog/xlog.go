// Package xlog is a thin fluent wrapper over
// github.com/projectdiscovery/gologger, grounded on its use in
// projectdiscovery-alterx (gologger.Warning().Msgf(...)) — the one
// leveled/structured logging library in the example pack, adopted here
// in place of the teacher's bare fmt.Printf/fmt.Fprintf.
package xlog

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
)

// Configure sets the global gologger level and disables ANSI color
// output when stdout is not a terminal, matching the pack's one example
// of TTY-aware logging (mattn/go-isatty).
func Configure(verbosity int) {
	level := levels.LevelInfo
	switch {
	case verbosity <= 0:
		level = levels.LevelError
	case verbosity == 1:
		level = levels.LevelInfo
	default:
		level = levels.LevelDebug
	}
	gologger.DefaultLogger.SetMaxLevel(level)
	gologger.DefaultLogger.SetFormatter(formatter.NewCLI(!isatty.IsTerminal(os.Stdout.Fd())))
}

// Info logs an informational message.
func Info(format string, args ...any) {
	gologger.Info().Msgf(format, args...)
}

// Warning logs a recoverable-condition message.
func Warning(format string, args ...any) {
	gologger.Warning().Msgf(format, args...)
}

// Error logs a failure that the caller is about to surface or abort on.
func Error(format string, args ...any) {
	gologger.Error().Msgf(format, args...)
}

// Debug logs a message only visible at verbosity >= 2.
func Debug(format string, args ...any) {
	gologger.Debug().Msgf(format, args...)
}
