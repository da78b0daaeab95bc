package log

import (
	"log/slog"
	"strings"
)

// Failure represents a logger error with structured logging support.
//
// Failures derived from a sentinel with [Failure.Wrap] or [Failure.With]
// compare equal to that sentinel under [errors.Is].
type Failure struct {
	msg   string
	err   error
	attrs []slog.Attr
	kind  *Failure
}

// NewFailure returns a new sentinel error with the given message.
func NewFailure(msg string) *Failure {
	e := &Failure{msg: msg}
	e.kind = e

	return e
}

func (e *Failure) Error() string {
	// "<msg>: <err>", "<msg>", "<err>", or "" depending on which are set.
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Failure) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok || t == nil {
		return false
	}

	return e.kind != nil && e.kind == t.kind
}

func (e *Failure) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Attrs returns the structured details attached to the error.
func (e *Failure) Attrs() []slog.Attr { return e.attrs }

// Wrap creates a new Failure wrapping another error.
func (e *Failure) Wrap(err error) *Failure {
	return &Failure{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
		kind:  e.kind,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Failure instance to maintain immutability.
func (e *Failure) With(attrs ...slog.Attr) *Failure {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Failure{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		kind:  e.kind,
	}
}

var (
	// ErrDirectoryCreate is returned when the log directory does not exist
	// and could not be created.
	ErrDirectoryCreate = NewFailure("create log directory")

	// ErrPermission is returned when the log file exists but cannot be
	// opened for writing.
	ErrPermission = NewFailure(
		"log file is not writable (check that appropriate permissions are set)",
	)

	// ErrWrite is returned when appending a line to the target fails.
	ErrWrite = NewFailure("write log line")

	// ErrLevel is returned when a level name is not recognized.
	ErrLevel = NewFailure("unknown log level")

	// ErrEncode is returned when a message or context cannot be encoded.
	ErrEncode = NewFailure("encode log message")

	// ErrFilter is returned when a filter expression fails to compile or
	// evaluate.
	ErrFilter = NewFailure("log filter")
)
