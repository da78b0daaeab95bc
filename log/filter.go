package log

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Record is the environment a filter expression is evaluated against.
//
// For example, the expression
//
//	priority <= 3 || "user" in context
//
// admits error and more severe records, plus any record carrying a "user"
// context key.
type Record struct {
	Context  map[string]any `expr:"context"`
	Level    string         `expr:"level"`
	Message  string         `expr:"message"`
	Priority int            `expr:"priority"`
}

// filter is a compiled record predicate. A nil filter admits every record.
type filter struct {
	program *vm.Program
	source  string
}

// compileFilter compiles source into a filter.
// An empty source yields a nil filter.
func compileFilter(source string) (*filter, error) {
	if source == "" {
		return nil, nil
	}

	program, err := expr.Compile(source, expr.Env(Record{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilter.Wrap(err).
			With(slog.String("source", source))
	}

	return &filter{program: program, source: source}, nil
}

// allow reports whether the record satisfies the filter.
func (f *filter) allow(level Level, msg Message, ctx Context) (bool, error) {
	if f == nil {
		return true, nil
	}

	if ctx == nil {
		ctx = Context{}
	}

	out, err := expr.Run(f.program, Record{
		Context:  ctx,
		Level:    level.String(),
		Message:  msg.String(),
		Priority: level.Priority(),
	})
	if err != nil {
		return false, ErrFilter.Wrap(err).
			With(slog.String("source", f.source))
	}

	ok, _ := out.(bool)

	return ok, nil
}
