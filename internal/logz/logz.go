// Package logz centralizes zerolog configuration for the ambient layers
// (selfcheck, cmd/bn254check). The core arithmetic packages (Fp, ECP, ECP2,
// Fp12, pairing) never import this package: they stay pure and side-effect
// free, the way the teacher keeps its circuit/field code free of logging.
package logz

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// L is the package-wide logger, defaulting to a human-readable console
// writer on stderr. Callers that want structured JSON output (e.g. piping
// cmd/bn254check into a log aggregator) can replace it with New.
var L = New(os.Stderr, true)

// New builds a zerolog.Logger writing to w. When pretty is true, output
// goes through zerolog.ConsoleWriter for a human-readable timestamped
// format; otherwise it emits newline-delimited JSON.
func New(w io.Writer, pretty bool) zerolog.Logger {
	var out io.Writer = w
	if pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// SetLevel parses a zerolog level name ("debug", "info", "warn", "error")
// and applies it globally. An unrecognized name falls back to info.
func SetLevel(name string) {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
