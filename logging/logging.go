// Package logging configures the slog backend for the skiff CLI.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// LevelSilent disables logging entirely. Skiff is quiet unless asked:
// command output on stdout is the interface, diagnostics on stderr are
// opt-in via --log-level.
const LevelSilent = slog.Level(1000)

var levelNames = []string{"debug", "info", "warning", "error", "silent"}

// ParseLogLevel converts a level name to its slog.Level. Unrecognized names
// fall back to info rather than failing, so a bad SKIFF_LOG_LEVEL value
// never blocks the CLI.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "silent", "none":
		return LevelSilent
	default:
		return slog.LevelInfo
	}
}

// ValidLogLevels returns the level names accepted by the --log-level flag
func ValidLogLevels() []string {
	return levelNames
}

// InitLogging installs a text handler on stderr at the given level, keeping
// stdout reserved for command output
func InitLogging(logLevel string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLogLevel(logLevel),
	})

	slog.SetDefault(slog.New(handler))
}

// LogLevel is the --log-level flag value. The flag default is silent; when
// the flag is not set the configured level (SKIFF_LOG_LEVEL or "info")
// applies instead, which is why the flag tracks whether it was set at all.
var LogLevel = &logLevelFlag{value: "silent"}

type logLevelFlag struct {
	value string
	set   bool
}

func (l *logLevelFlag) Set(value string) error {
	if !slices.Contains(levelNames, value) {
		return fmt.Errorf("invalid value '%s'. Allowed values: %s",
			value, strings.Join(levelNames, ", "))
	}
	l.value = value
	l.set = true
	return nil
}

func (l *logLevelFlag) String() string {
	return l.value
}

func (l *logLevelFlag) Type() string {
	return "level"
}

// IsSet reports whether the flag was given on the command line
func (l *logLevelFlag) IsSet() bool {
	return l.set
}
