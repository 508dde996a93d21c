// Package cli contains the command line interface for recipegen.
//
// # Usage
//
//	recipegen [flags] <command> [command flags]
//
// The default command is generate, so these are equivalent:
//
//	recipegen -i manifests --dist dist
//	recipegen generate -i manifests --dist dist
//
// # Inputs
//
// The -i/--input flag takes manifest files or directories, repeated or
// comma-separated. Directories are searched breadth-first for .json, .yaml
// and .yml files. The paths listed in the environment variable named after
// the executable, e.g. RECIPEGEN_PATH, are searched after the flag values.
//
// # Commands
//
//   - generate: write each manifest's recipes to <dist>/<output>, or print
//     them with --dry-run; --watch regenerates on change
//   - check: generate without writing and report recipe counts
//   - fmt json|yaml: print a manifest in normalized form
//   - init: write the current flag values to the configuration file
//
// # Configuration
//
// Flag defaults are read from config.yaml (or config.yml, or config.json)
// in the user configuration directory, e.g. ~/.config/recipegen. Keys are
// flag names:
//
//	log-level: debug
//	input: [manifests, extra/recipes.yaml]
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o recipegen .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/recipegen/pprof)
package cli
