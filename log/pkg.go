package log

import (
	"log/slog"
	"sync"
)

// DefaultStream is the target of the package-level default logger.
const DefaultStream = StreamScheme + "stderr"

var (
	defaultMutex sync.RWMutex
	defaultLog   = mustDefault()
)

func mustDefault() *Logger {
	l, err := New(DefaultStream, LevelInfo)
	if err != nil {
		// Stream loggers only fail on a bad filter expression.
		panic(err)
	}

	return l
}

// Default returns the package-level logger.
func Default() *Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()

	return defaultLog
}

// SetDefault replaces the package-level logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}

	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultLog = l
}

// Config replaces the package-level logger with a standard error logger at
// threshold configured by opts.
func Config(threshold Level, opts ...Option) error {
	l, err := New(DefaultStream, threshold, opts...)
	if err != nil {
		return err
	}

	SetDefault(l)

	return nil
}

// Slog returns a [slog.Logger] backed by the package-level logger.
func Slog() *slog.Logger {
	return Default().Slog()
}

// Emergency logs a message at Emergency level using the default logger.
func Emergency(msg string, ctx ...Context) error {
	return Default().Emergency(msg, ctx...)
}

// Alert logs a message at Alert level using the default logger.
func Alert(msg string, ctx ...Context) error {
	return Default().Alert(msg, ctx...)
}

// Critical logs a message at Critical level using the default logger.
func Critical(msg string, ctx ...Context) error {
	return Default().Critical(msg, ctx...)
}

// Error logs a message at Error level using the default logger.
func Error(msg string, ctx ...Context) error {
	return Default().Error(msg, ctx...)
}

// Warning logs a message at Warning level using the default logger.
func Warning(msg string, ctx ...Context) error {
	return Default().Warning(msg, ctx...)
}

// Notice logs a message at Notice level using the default logger.
func Notice(msg string, ctx ...Context) error {
	return Default().Notice(msg, ctx...)
}

// Info logs a message at Info level using the default logger.
func Info(msg string, ctx ...Context) error {
	return Default().Info(msg, ctx...)
}

// Debug logs a message at Debug level using the default logger.
func Debug(msg string, ctx ...Context) error {
	return Default().Debug(msg, ctx...)
}
