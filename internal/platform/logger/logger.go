// Package logger provides a configured zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a new zerolog.Logger configured for the application.
func New(serviceName string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger for CLI tools.
func NewConsole(serviceName string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
