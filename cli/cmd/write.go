package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/filelog/log"
	"github.com/ardnew/filelog/pkg"
)

// Write appends one message to the target log.
type Write struct {
	Level   log.Level         `arg:"" help:"Severity of the message."                     placeholder:"LEVEL"`
	Message []string          `arg:"" help:"Message text, read from stdin when omitted."  optional:""`
	Context map[string]string `       help:"Context entry as key=value (repeatable)."     placeholder:"KEY=VALUE" short:"c"`
}

// Run executes the write command.
func (w *Write) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	target := targetFrom(ctx)

	logger, err := target.Open(ctx)
	if err != nil {
		return err
	}

	msg, err := w.message(ctx, target.JSON)
	if err != nil {
		return err
	}

	err = logger.Log(w.Level, msg, w.context())
	if err != nil {
		return ErrWriteLog.
			With(slog.String("path", logger.Path())).
			Wrap(err)
	}

	slog.DebugContext(ctx, "write",
		slog.String("path", logger.Path()),
		slog.String("level", w.Level.String()),
		slog.Bool("written", logger.Count() > 0),
	)

	return nil
}

// message returns the message from the arguments or stdin. In JSON mode,
// text that is itself valid JSON is logged as a value so it is not quoted a
// second time.
func (w *Write) message(ctx context.Context, asJSON bool) (log.Message, error) {
	text := strings.Join(w.Message, " ")

	if len(w.Message) == 0 {
		buf, err := io.ReadAll(stdinFrom(ctx))
		if err != nil {
			return log.Message{}, pkg.ErrReadInput.Wrap(err)
		}

		text = strings.TrimRight(string(buf), "\r\n")
	}

	if asJSON {
		if v, ok := decodeJSON(text); ok {
			return log.Value(v), nil
		}
	}

	return log.Text(text), nil
}

// context converts the --context entries, decoding values that are valid
// JSON and keeping the rest as strings.
func (w *Write) context() log.Context {
	if len(w.Context) == 0 {
		return nil
	}

	ctx := make(log.Context, len(w.Context))

	for k, s := range w.Context {
		if v, ok := decodeJSON(s); ok {
			ctx[k] = v
		} else {
			ctx[k] = s
		}
	}

	return ctx
}

func decodeJSON(s string) (any, bool) {
	if !json.Valid([]byte(s)) {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var v any
	if dec.Decode(&v) != nil {
		return nil, false
	}

	return numbers(v), true
}

// numbers replaces each [json.Number] in v with an int64 or float64 when
// that value formats back to the same text. Other numbers keep their
// original text.
func numbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil && strconv.FormatInt(n, 10) == t.String() {
			return n
		}

		if f, err := t.Float64(); err == nil && strconv.FormatFloat(f, 'g', -1, 64) == t.String() {
			return f
		}

		return t

	case map[string]any:
		for k, e := range t {
			t[k] = numbers(e)
		}

	case []any:
		for i, e := range t {
			t[i] = numbers(e)
		}
	}

	return v
}
