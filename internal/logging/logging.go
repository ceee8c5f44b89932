// Package logging configures the process-wide zerolog logger.
//
// All output goes to stderr. Stdout carries the MCP protocol stream and
// must never receive log lines.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the shared logger instance.
var Logger zerolog.Logger

// Config holds logger settings.
type Config struct {
	// Level is the minimum level to emit.
	Level zerolog.Level
	// Output is the destination. Defaults to os.Stderr.
	Output io.Writer
}

// Init replaces the shared logger.
func Init(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	Logger = zerolog.New(cfg.Output).Level(cfg.Level).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, case-insensitively.
// Unrecognized names fall back to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug starts a debug level event on the shared logger.
func Debug() *zerolog.Event { return Logger.Debug() }

// Info starts an info level event on the shared logger.
func Info() *zerolog.Event { return Logger.Info() }

// Warn starts a warn level event on the shared logger.
func Warn() *zerolog.Event { return Logger.Warn() }

// Error starts an error level event on the shared logger.
func Error() *zerolog.Event { return Logger.Error() }

// Fatal starts a fatal level event. Calling Msg or Send on it exits the
// process with status 1.
func Fatal() *zerolog.Event { return Logger.Fatal() }

func init() {
	Init(Config{Level: zerolog.InfoLevel})
}
