package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"holdem-console/internal/config"
)

var writer io.Writer = os.Stdout

// Init configures the global zerolog logger. When cfg.File is set, output
// goes to a size-capped log file; the terminal client relies on this so the
// screen stays owned by the table view.
func Init(cfg config.LogConfig) error {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	switch {
	case cfg.File != "":
		w, err := newCappedFileWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			return err
		}
		out = w
	case cfg.Pretty:
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	writer = out
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

// Writer returns the destination Init selected, for components that log
// outside zerolog (the request logger middleware).
func Writer() io.Writer {
	return writer
}
