package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/filelog/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	targetKey struct{}
	stdinKey  struct{}
	stdoutKey struct{}
)

// WithTarget returns a new context.Context containing the parsed target
// flags shared by all commands.
func WithTarget(ctx context.Context, t Target) context.Context {
	return context.WithValue(ctx, targetKey{}, t)
}

// targetFrom returns the target stored by [WithTarget], or the zero target
// with default threshold when none was stored.
func targetFrom(ctx context.Context) Target {
	t, ok := ctx.Value(targetKey{}).(Target)
	if !ok {
		return Target{Threshold: log.DefaultLevel, AppendContext: true}
	}

	return t
}

// WithStdin returns a new context.Context whose commands read input from r
// instead of [os.Stdin].
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok {
		return r
	}

	return os.Stdin
}

// WithStdout returns a new context.Context whose commands print to w
// instead of [os.Stdout]. Stream targets write there too.
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

// stdoutFrom returns the writer stored by [WithStdout] and whether one was
// stored at all.
func stdoutFrom(ctx context.Context) (io.Writer, bool) {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok {
		return w, true
	}

	return os.Stdout, false
}

// Target holds the flags that select a log destination and line format.
type Target struct {
	Dir           string    `default:"${logDir}"                    help:"Log directory, or stream://stdout or stream://stderr." short:"d"`
	Threshold     log.Level `default:"debug"                        help:"Minimum severity written."                              placeholder:"LEVEL" short:"t"`
	Extension     string    `default:"txt"                          help:"Extension of derived file names."`
	TimeLayout    string    `default:"2006-01-02 15:04:05.000000"   help:"Timestamp layout (Go reference time or a named layout)."`
	Filename      string    `                                       help:"Fixed file name instead of one derived from the date."`
	Prefix        string    `default:"log_"                         help:"Prefix of derived file names."`
	Template      string    `                                       help:"Line template with {date}, {level}, {message}, {context}, ... placeholders."`
	AppendContext bool      `default:"true"                         help:"Append an indented context dump after the line."       negatable:""`
	JSON          bool      `                                       help:"Render messages and context as JSON."                  name:"json"`
	Filter        string    `                                       help:"Expression a record must satisfy to be written."`
}

// Options returns the logger options selected by t.
func (t Target) Options() []log.Option {
	o := log.Options{
		Extension:     t.Extension,
		DateFormat:    t.TimeLayout,
		Filename:      t.Filename,
		Prefix:        &t.Prefix,
		LogFormat:     t.Template,
		AppendContext: &t.AppendContext,
		JSON:          &t.JSON,
		Filter:        t.Filter,
	}

	return o.Apply()
}

// Path returns the path lines would be written to right now.
func (t Target) Path() string {
	return log.ResolvePath(t.Dir, t.Options()...)
}

// Open constructs the logger selected by t. Stream targets write to the
// writer stored by [WithStdout], if any.
func (t Target) Open(ctx context.Context) (*log.Logger, error) {
	opts := t.Options()

	if w, ok := stdoutFrom(ctx); ok && log.IsStream(t.Dir) {
		opts = append(opts, log.WithOutput(w))
	}

	l, err := log.New(t.Dir, t.Threshold, opts...)
	if err != nil {
		return nil, ErrOpenLog.Wrap(err)
	}

	return l, nil
}
