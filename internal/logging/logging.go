// Package logging builds the structured logger of the moneycalc command.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldCalculator = "calculator"
	FieldRounding   = "rounding"
	FieldCurrency   = "currency"
	FieldUnits      = "units"
	FieldResult     = "result"
	FieldError      = "error"
)

// Components
const (
	ComponentCLI    = "cli"
	ComponentConfig = "config"
	ComponentCalc   = "calc"
)

// Options configures a logger.
type Options struct {
	Level   slog.Leveler
	NoColor bool
}

// New returns a logger writing text records to w.
// Records are colorized only when w is a terminal, NoColor is not set and
// the NO_COLOR environment variable is absent.
func New(w io.Writer, opts Options) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    opts.NoColor || noColor || !isTerminal(w),
	}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, &tint.Options{Level: slog.LevelError + 1}))
}

// WithComponent returns a logger tagging every record with the component.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	return l.With(FieldComponent, component)
}

// Err returns an attribute holding the error message.
func Err(err error) slog.Attr {
	return slog.Any(FieldError, err)
}
