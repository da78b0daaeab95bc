// Package cmd implements the filelog subcommands.
//
// Every command shares the [Target] flags, which select the log file and
// how lines are rendered. [Write] appends a line, [Path] prints where lines
// would go, [View] prints an existing log with colored severities, and
// [Init] saves the current flags as the configuration file.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path of
	// the YAML configuration file.
	ConfigIdentifier = "config"

	// LogDirIdentifier is the kong variable identifier containing the
	// default log directory.
	LogDirIdentifier = "logDir"
)
