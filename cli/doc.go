// Package cli contains the command line interface for filelog.
//
// # Usage
//
//	filelog [flags] [write] <level> [<message> ...]
//	filelog [flags] path
//	filelog [flags] view [<file>] [--match=PATTERN] [--min=LEVEL]
//	filelog [flags] init [--force]
//
// The write command is the default, so the following are equivalent:
//
//	filelog --dir=/var/log/app info "service started" -c pid=4242
//	filelog --dir=/var/log/app write info "service started" -c pid=4242
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory, keyed by long flag name (hyphens or underscores):
//
//	dir: /var/log/app
//	threshold: notice
//	append-context: false
//
// The init command writes the current flag values to that file.
//
// # Diagnostics
//
// The --log-* flags configure filelog's own diagnostics, which are written
// to standard error through [log/slog] backed by the filelog logger.
//
// # Profiling
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof
//	filelog --pprof-mode=cpu info "profiled"
package cli
