package log

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"
)

// handler adapts a [Logger] to the [slog.Handler] interface.
//
// Record attributes become the context of the logged line. Attributes of
// nested groups are keyed by their dotted group path.
type handler struct {
	logger *Logger
	attrs  Context
	groups []string
}

// Handler returns a [slog.Handler] that writes records through l.
//
// Record levels map onto the nearest severity: error and above to
// [LevelError], warn to [LevelWarning], info to [LevelInfo], and anything
// lower to [LevelDebug].
func (l *Logger) Handler() slog.Handler {
	return &handler{logger: l}
}

// Slog returns a [slog.Logger] backed by l.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.Handler())
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(fromSlog(level))
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	ctx := make(Context, len(h.attrs)+r.NumAttrs())

	maps.Copy(ctx, h.attrs)

	prefix := h.prefix()

	r.Attrs(func(a slog.Attr) bool {
		addAttr(ctx, prefix, a)

		return true
	})

	return h.logger.Log(fromSlog(r.Level), Text(r.Message), ctx)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	ctx := make(Context, len(h.attrs)+len(attrs))

	maps.Copy(ctx, h.attrs)

	prefix := h.prefix()

	for _, a := range attrs {
		addAttr(ctx, prefix, a)
	}

	return &handler{
		logger: h.logger,
		attrs:  ctx,
		groups: h.groups,
	}
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &handler{
		logger: h.logger,
		attrs:  h.attrs,
		groups: append(slices.Clip(h.groups), name),
	}
}

// prefix returns the dotted path of the open groups.
func (h *handler) prefix() string {
	var prefix string

	for _, g := range h.groups {
		prefix = join(prefix, g)
	}

	return prefix
}

// addAttr stores a into ctx under its group-qualified key.
// Empty attributes are ignored and groups are flattened.
func addAttr(ctx Context, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group = join(prefix, a.Key)
		}

		for _, child := range a.Value.Group() {
			addAttr(ctx, group, child)
		}

		return
	}

	ctx[join(prefix, a.Key)] = attrValue(a.Value)
}

// attrValue converts a resolved [slog.Value] to a plain Go value.
func attrValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)

	case slog.KindDuration:
		return v.Duration().String()

	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}

		return v.Any()

	default:
		return v.Any()
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
