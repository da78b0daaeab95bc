package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Logger appends formatted lines to a log file or a standard stream.
//
// Every call that passes the threshold is formatted and written before it
// returns. A Logger may be shared by goroutines, but nothing coordinates
// separate Loggers or processes appending to the same file.
type Logger struct {
	config

	predicate *filter
	stream    io.Writer
	path      string

	mutex     sync.Mutex
	threshold Level
	lastLine  string
	count     int
}

// New creates a [Logger] writing lines at or above threshold to a file in
// dir, creating dir and its parents if needed.
//
// If dir begins with [StreamScheme], lines are written to the named stream
// ("stream://stderr" for standard error, standard output otherwise) or to
// the writer given by [WithOutput], and the file system is not touched.
//
// New returns [ErrDirectoryCreate] if dir cannot be created, [ErrPermission]
// if the log file exists but is not writable, and [ErrFilter] if a filter
// expression does not compile.
func New(dir string, threshold Level, opts ...Option) (*Logger, error) {
	cfg := makeConfig(opts...)

	flt, err := compileFilter(cfg.filter)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		config:    cfg,
		predicate: flt,
		threshold: threshold,
	}

	dir = normalizeDir(dir)

	if IsStream(dir) {
		l.path = dir
		l.stream = cfg.output

		if l.stream == nil {
			l.stream = streamWriter(dir)
		}

		return l, nil
	}

	err = ensureDir(dir)
	if err != nil {
		return nil, err
	}

	l.path = cfg.resolvePath(dir)

	err = checkWritable(l.path)
	if err != nil {
		return nil, err
	}

	return l, nil
}

// Path returns the resolved log file path, or the stream pseudo-path.
func (l *Logger) Path() string { return l.path }

// IsStream reports whether the logger writes to a stream instead of a file.
func (l *Logger) IsStream() bool { return l.stream != nil }

// Threshold returns the current severity threshold.
func (l *Logger) Threshold() Level {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.threshold
}

// SetThreshold changes the severity threshold.
func (l *Logger) SetThreshold(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.threshold = level
}

// LastLine returns the last line written, without surrounding whitespace.
func (l *Logger) LastLine() string {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.lastLine
}

// Count returns the number of lines written by this logger.
func (l *Logger) Count() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.count
}

// Enabled reports whether a message at level would pass the threshold.
func (l *Logger) Enabled(level Level) bool {
	return level.Enabled(l.Threshold())
}

// Format renders the line that [Logger.Log] would write, including the
// trailing newline, without writing it.
func (l *Logger) Format(level Level, msg Message, ctx ...Context) (string, error) {
	return l.format(level, msg, merge(ctx...))
}

// Log writes msg at the given level with the merged contexts.
//
// Messages below the threshold, or rejected by the filter, are discarded and
// Log returns nil. Otherwise the formatted line is written with
// [Logger.Write].
func (l *Logger) Log(level Level, msg Message, ctx ...Context) error {
	if !l.Enabled(level) {
		return nil
	}

	merged := merge(ctx...)

	ok, err := l.predicate.allow(level, msg, merged)
	if err != nil || !ok {
		return err
	}

	line, err := l.format(level, msg, merged)
	if err != nil {
		return err
	}

	return l.Write(line)
}

// Logf writes a formatted text message at the given level.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	if !l.Enabled(level) {
		return nil
	}

	return l.Log(level, Text(fmt.Sprintf(format, args...)))
}

// Write appends line verbatim to the target.
//
// Write returns [ErrWrite] if the line cannot be appended. On success the
// line, trimmed, becomes the last line and the line count is incremented.
func (l *Logger) Write(line string) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	var err error

	if l.stream != nil {
		_, err = io.WriteString(l.stream, line)
	} else {
		err = appendFile(l.path, []byte(line))
	}

	if err != nil {
		return ErrWrite.
			With(slog.String("file", l.path)).
			Wrap(err)
	}

	l.lastLine = strings.TrimSpace(line)
	l.count++

	return nil
}

// Emergency logs a message at Emergency level.
func (l *Logger) Emergency(msg string, ctx ...Context) error {
	return l.Log(LevelEmergency, Text(msg), ctx...)
}

// Alert logs a message at Alert level.
func (l *Logger) Alert(msg string, ctx ...Context) error {
	return l.Log(LevelAlert, Text(msg), ctx...)
}

// Critical logs a message at Critical level.
func (l *Logger) Critical(msg string, ctx ...Context) error {
	return l.Log(LevelCritical, Text(msg), ctx...)
}

// Error logs a message at Error level.
func (l *Logger) Error(msg string, ctx ...Context) error {
	return l.Log(LevelError, Text(msg), ctx...)
}

// Warning logs a message at Warning level.
func (l *Logger) Warning(msg string, ctx ...Context) error {
	return l.Log(LevelWarning, Text(msg), ctx...)
}

// Notice logs a message at Notice level.
func (l *Logger) Notice(msg string, ctx ...Context) error {
	return l.Log(LevelNotice, Text(msg), ctx...)
}

// Info logs a message at Info level.
func (l *Logger) Info(msg string, ctx ...Context) error {
	return l.Log(LevelInfo, Text(msg), ctx...)
}

// Debug logs a message at Debug level.
func (l *Logger) Debug(msg string, ctx ...Context) error {
	return l.Log(LevelDebug, Text(msg), ctx...)
}
