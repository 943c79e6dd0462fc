// Package log provides structured logging for programs that use evalmetrics.
//
// The metric calculators themselves never log; failures are returned to the
// caller, which decides what to record. This package gives callers a shared
// zerolog setup:
//
//	log.SetupLogger("debug")
//	logger := log.GetLoggerWithName("evaluation")
//	logger.Info().Float64("rmse", rmse).Msg("fold evaluated")
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr, zerolog.InfoLevel)
)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") into a
// zerolog level. Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// SetupLogger configures the global logger to write human-readable output to
// stderr at the given level.
func SetupLogger(level string) {
	SetOutput(os.Stderr, level)
}

// SetOutput configures the global logger to write to w at the given level.
func SetOutput(w io.Writer, level string) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, ParseLevel(level))
}

// GetLogger returns the global logger.
func GetLogger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// GetLoggerWithName returns a child logger tagged with a component name.
func GetLoggerWithName(name string) zerolog.Logger {
	return GetLogger().With().Str("component", name).Logger()
}

// LogError logs err at error level. At debug level the full error chain,
// including cockroachdb/errors stack traces, is attached as "detail".
func LogError(err error, msg string) {
	if err == nil {
		return
	}
	l := GetLogger()
	event := l.Error().Err(err)
	if l.GetLevel() <= zerolog.DebugLevel {
		event = event.Str("detail", fmt.Sprintf("%+v", err))
	}
	event.Msg(msg)
}
