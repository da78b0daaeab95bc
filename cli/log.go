package cli

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/filelog/log"
)

// defaultLogTemplate renders diagnostics on standard error.
const defaultLogTemplate = "{level}{level-padding}{message} {context}"

// logLevel is a custom type that reconfigures the diagnostic logger as a
// side effect of parsing via encoding.TextUnmarshaler.
type logLevel log.Level

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	level, err := log.ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = logLevel(level)

	return log.Config(level, log.WithTemplate(defaultLogTemplate))
}

// MarshalText implements encoding.TextMarshaler.
func (l logLevel) MarshalText() ([]byte, error) {
	return log.Level(l).MarshalText()
}

type logConfig struct {
	Level    logLevel `default:"warning"         help:"Set diagnostic log level."                      placeholder:"LEVEL"`
	Template string   `default:"${logTemplate}"  help:"Set diagnostic line template."`
	Context  bool     `default:"false"           help:"Append an indented context dump to diagnostics." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{"logTemplate": defaultLogTemplate}
}

func (*logConfig) groups() []kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Diagnostic logging options"

	return []kong.Group{group}
}

// start installs the diagnostic logger built from all parsed values as the
// [slog] default, and returns a function restoring the previous default.
func (f *logConfig) start(ctx context.Context) (stop func()) {
	err := log.Config(log.Level(f.Level),
		log.WithTemplate(f.Template),
		log.WithAppendContext(f.Context),
	)
	if err != nil {
		// Keep whatever the early scan installed.
		log.Slog().WarnContext(ctx, "logger configuration", slog.Any("error", err))
	}

	prev := slog.Default()
	slog.SetDefault(log.Slog())

	slog.DebugContext(ctx, "logger initialized",
		slog.String("level", log.Level(f.Level).String()),
		slog.String("template", f.Template),
		slog.Bool("context", f.Context),
	)

	return func() { slog.SetDefault(prev) }
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line.
func (f *logConfig) scan(args []string) {
	f.Level = logLevel(log.LevelWarning)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		name, value, assigned := strings.Cut(arg, "=")

		switch name {
		case "--log-level":
			// Non-boolean flag: consume next arg as value if not assigned
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				value = args[i+1]
				i++
			}

			_ = f.Level.UnmarshalText([]byte(value))

		case "--log-context", "--no-log-context":
			v := true
			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				v = b
			}

			f.Context = v == (name == "--log-context")
		}
	}

	_ = log.Config(log.Level(f.Level),
		log.WithTemplate(defaultLogTemplate),
		log.WithAppendContext(f.Context),
	)
}
