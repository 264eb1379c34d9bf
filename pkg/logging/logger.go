// Package logging provides the small leveled, key/value logger the rest
// of the module is wired with. Components take a Logger and default to
// the nop implementation, so libraries stay quiet unless the caller
// opts in.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents the severity of a log message
type Level int

const (
	// LevelDebug is for detailed debugging information
	LevelDebug Level = iota
	// LevelInfo is for general informational messages
	LevelInfo
	// LevelWarn is for warning messages
	LevelWarn
	// LevelError is for error messages
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the interface for logging operations
type Logger interface {
	// Debug logs a debug message
	Debug(msg string, keyvals ...any)
	// Info logs an informational message
	Info(msg string, keyvals ...any)
	// Warn logs a warning message
	Warn(msg string, keyvals ...any)
	// Error logs an error message
	Error(msg string, keyvals ...any)
	// With returns a new logger with additional key-value pairs
	With(keyvals ...any) Logger
}

type writerLogger struct {
	mu       sync.Mutex
	writer   io.Writer
	minLevel Level
	keyvals  []any
}

// New creates a logger that writes to the given writer
func New(writer io.Writer, minLevel Level) Logger {
	return &writerLogger{writer: writer, minLevel: minLevel}
}

// NewStderr creates a logger that writes to stderr
func NewStderr(minLevel Level) Logger {
	return New(os.Stderr, minLevel)
}

func (l *writerLogger) Debug(msg string, keyvals ...any) { l.log(LevelDebug, msg, keyvals...) }
func (l *writerLogger) Info(msg string, keyvals ...any)  { l.log(LevelInfo, msg, keyvals...) }
func (l *writerLogger) Warn(msg string, keyvals ...any)  { l.log(LevelWarn, msg, keyvals...) }
func (l *writerLogger) Error(msg string, keyvals ...any) { l.log(LevelError, msg, keyvals...) }

func (l *writerLogger) With(keyvals ...any) Logger {
	merged := make([]any, 0, len(l.keyvals)+len(keyvals))
	merged = append(merged, l.keyvals...)
	merged = append(merged, keyvals...)
	return &writerLogger{writer: l.writer, minLevel: l.minLevel, keyvals: merged}
}

func (l *writerLogger) log(level Level, msg string, keyvals ...any) {
	if level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.writer, "%s [%s] %s",
		time.Now().Format("2006-01-02 15:04:05.000"), level, msg)
	writePairs(l.writer, l.keyvals)
	writePairs(l.writer, keyvals)
	fmt.Fprintln(l.writer)
}

func writePairs(w io.Writer, keyvals []any) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(w, " %v=%v", keyvals[i], keyvals[i+1])
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }

// Nop returns a logger that discards all messages
func Nop() Logger {
	return nopLogger{}
}
