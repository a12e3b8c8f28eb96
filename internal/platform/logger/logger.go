// Package logger provides the service's zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger tagged with the service name and version. An unknown level
// falls back to info. Pretty switches to zerolog's console writer for local runs.
func New(serviceName, version, level string, pretty bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return newWithWriter(out, serviceName, version, level)
}

func newWithWriter(out io.Writer, serviceName, version, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(lvl).With().
		Str("service", serviceName).
		Str("version", version).
		Timestamp().
		Logger()
}
