// Package log is a small structured logging layer over [log/slog].
//
// A [Logger] is made once with functional options and is immutable
// afterwards:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
//	logger.Info("manifest loaded", slog.String("path", path))
//
// Every level has a plain and a Context variant. The plain variants use the
// context returned by [DefaultContextProvider].
//
// The package also keeps a default Logger, reconfigured with [Config] and
// used by the package-level functions [Trace], [Debug], [Info], [Warn] and
// [Error].
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is rendered as "TRACE" rather
// than slog's "DEBUG-4".
//
// # Pretty output
//
// With [WithPretty] (the default) records are colorized for a terminal:
// text records as one line of key=value pairs and JSON records as an
// indented block. Disable it to get the plain slog text and JSON handlers.
package log
