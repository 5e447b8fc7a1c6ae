package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger
// Production writes JSON lines, other environments a console writer.
// Unknown levels fall back to info
func Setup(level string, production bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = New(os.Stdout, production)
}

// New builds a timestamped logger writing to out
func New(out io.Writer, production bool) zerolog.Logger {
	if production {
		return zerolog.New(out).With().Timestamp().Logger()
	}
	cw := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.TimeFormat = time.RFC3339
	})
	return zerolog.New(cw).With().Timestamp().Logger()
}
