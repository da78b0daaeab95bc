package cmd

import "github.com/ardnew/filelog/log"

// Error represents a CLI command error with structured logging support.
//
// Errors derived from a sentinel compare equal to it under [errors.Is].
type Error = log.Failure

// NewError returns a new command sentinel error with the given message.
func NewError(msg string) *Error { return log.NewFailure(msg) }

var (
	ErrOpenLog     = NewError("open log")
	ErrWriteLog    = NewError("write log")
	ErrReadLog     = NewError("read log")
	ErrWriteConfig = NewError("write configuration file")
	ErrFileExists  = NewError("file exists (use --force to overwrite)")
)
