// Package logging builds the zerolog logger shared by the engine and the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Levels lists the accepted log level names.
var Levels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// ParseLevel parses a level name. The empty string selects warn.
func ParseLevel(s string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return zerolog.WarnLevel, nil
	}
	for _, l := range Levels {
		if l == name {
			return zerolog.ParseLevel(name)
		}
	}
	return zerolog.NoLevel, fmt.Errorf("invalid log level %q (valid: %s)", s, strings.Join(Levels, ", "))
}

// InitLogger creates a console logger on out at the given level and installs
// it as the package-level zerolog logger.
func InitLogger(out io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Str("app", "asimov").Logger()
	log.Logger = logger
	return logger
}
