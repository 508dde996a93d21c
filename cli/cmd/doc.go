// Package cmd implements the recipegen subcommands: generate, check, fmt
// and init.
//
// Commands read their shared state from the [context.Context] passed to
// Run: the parsed [kong.Context] ([WithContext]), the manifest search path
// ([WithInputs]) and the writer receiving user-facing output
// ([WithStdout]).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// to the configuration file written by init.
	ConfigIdentifier = "config"
)
