package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/filelog/cli/cmd"
	"github.com/ardnew/filelog/log"
	"github.com/ardnew/filelog/pkg"
)

// CLI is the top-level command-line interface for filelog.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Target cmd.Target `embed:""`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Write cmd.Write `cmd:"" default:"withargs" help:"Append a message to the log (default)"`
	Path  cmd.Path  `cmd:""                    help:"Print the resolved log file path"`
	View  cmd.View  `cmd:""                    help:"Print a log file with colored severities"`
	Init  cmd.Init  `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the filelog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := pkg.MkdirAll()
	if err != nil {
		return err
	}

	configFilePath := pkg.ConfigFile()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		cmd.LogDirIdentifier: pkg.LogDir(),
		"version":            pkg.Signature(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that diagnostics emitted while parsing
	// already honor them, regardless of flag position.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(append(cli.Log.groups(), cli.Pprof.groups()...)),
		// Commands receive ctx as it is when they run, after the values
		// below are stored in it.
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON,
			strings.TrimSuffix(configFilePath, ".yaml")+".json"),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithTarget(ctx, cli.Target)

	defer cli.Log.start(ctx)()

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	log.Slog().DebugContext(ctx, "run",
		"command", ktx.Command(),
		"target", cli.Target.Dir,
	)

	return ktx.Run()
}
