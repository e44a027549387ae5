// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). Output is formatted by charmbracelet/log.
// The logger is safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// String returns the level name as used in configuration.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelNormal:
		return "normal"
	case LevelVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ParseLevel converts a configuration string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet":
		return LevelOff, nil
	case "normal", "info", "":
		return LevelNormal, nil
	case "verbose", "debug":
		return LevelVerbose, nil
	default:
		return LevelNormal, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	mu    sync.RWMutex
	level Level
	base  *charmlog.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	base := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           charmlog.DebugLevel,
	})

	return &Logger{level: level, base: base}
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	if l.enabled(LevelVerbose) {
		l.base.Debugf(format, args...)
	}
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	if l.enabled(LevelNormal) {
		l.base.Infof(format, args...)
	}
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	if l.enabled(LevelNormal) {
		l.base.Warnf(format, args...)
	}
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	if l.enabled(LevelNormal) {
		l.base.Errorf(format, args...)
	}
}

func (l *Logger) enabled(min Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level >= min
}
