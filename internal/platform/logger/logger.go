// Package logger construye el zerolog.Logger de la aplicación.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New arma un logger con nivel y formato dados.
// format "json" => NDJSON a stdout; cualquier otro valor => consola legible.
func New(appName, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if strings.ToLower(strings.TrimSpace(format)) != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().
		Str("app", strings.TrimSpace(appName)).
		Timestamp().
		Logger()
}
