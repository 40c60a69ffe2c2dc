// Package logging builds the structured logger shared by the CLI and the frontends.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "asteroids"

// Options selects where log lines go and how verbose they are.
type Options struct {
	File   string    // Append to this file when set
	Stderr bool      // Write to stderr when no file is set
	Debug  bool      // Enable debug level
	Writer io.Writer // Overrides File and Stderr; used by tests
}

// New creates a logger. Terminal frontends own stdout and stderr while
// running, so without a file or Stderr the logger discards everything.
// The returned close function releases the log file and is never nil.
func New(opts Options) (*log.Logger, func() error, error) {
	closer := func() error { return nil }

	var w io.Writer
	switch {
	case opts.Writer != nil:
		w = opts.Writer
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("logging: open %s: %w", opts.File, err)
		}
		w = f
		closer = f.Close
	case opts.Stderr:
		w = os.Stderr
	default:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
	})
	if opts.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: Prefix})
}
