// Package profile starts optional runtime profiling of the recipegen
// command through [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag ([Tag]):
//
//	go build -tags pprof ./...
//	recipegen generate --pprof-mode cpu --pprof-dir ./profiles -i recipes/
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// Without the tag, [Modes] is empty and [Profiler.Start] does nothing.
// With it, the package also registers the [net/http/pprof] handlers.
package profile
