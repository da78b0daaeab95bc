// Package log appends severity-leveled, timestamped lines to a log file or a
// standard stream.
//
// The eight syslog severities are supported, from [LevelEmergency] (most
// severe) to [LevelDebug]. Messages less severe than a logger's threshold are
// discarded; every other message is formatted and written synchronously
// before the call returns.
//
// # Basic Usage
//
//	logger, err := log.New("/var/log/app", log.LevelInfo)
//	if err != nil {
//		return err
//	}
//	logger.Info("application started", log.Context{"version": "1.0.0"})
//
// By default lines are appended to a file named after the current date,
// such as /var/log/app/log_2026-10-17.txt, and look like:
//
//	[2026-10-17 14:03:27.918273] [info] application started
//	    version: 1.0.0
//
// # Configuration
//
// Configure the logger using functional options:
//
//	logger, err := log.New(dir, log.LevelDebug,
//		log.WithFilename("app.log"),
//		log.WithTemplate("{date} {level}{level-padding} {message} {context}"),
//		log.WithAppendContext(false))
//
// The same settings can be decoded from a configuration file into
// [Options] and applied with [Options.Apply].
//
// # Templates
//
// A template replaces the default "[<timestamp>] [<level>] <message>"
// format. The placeholders are:
//
//   - {date}: the timestamp, formatted by [WithTimeLayout]
//   - {level}: the upper-case level name
//   - {level-padding}: spaces padding the level name to nine columns
//   - {priority}: the numeric level
//   - {context}: the context encoded as JSON
//   - {message}: the message
//
// With [WithJSON] enabled, messages are encoded as JSON first, and a quoted
// "{message}" is replaced together with its quotes so that structured
// messages are embedded as JSON values.
//
// # Streams
//
// A directory beginning with [StreamScheme] names a standard stream:
// "stream://stderr" writes to standard error and any other name to standard
// output. [WithOutput] redirects a stream logger to any [io.Writer].
//
// # Structured Logging
//
// [Logger.Handler] adapts a Logger to [log/slog], so record attributes are
// rendered as context.
package log
