// Package profile provides optional runtime profiling for filelog.
//
// Profiling is compiled in only with the "pprof" build tag, which links
// [github.com/pkg/profile]. Without the tag [Modes] is empty and
// [Profiler.Start] always returns a no-op.
//
//	p := profile.Profiler{Mode: "cpu", Path: pkg.CacheDir()}
//	defer p.Start().Stop()
//
// Profile files are written to Path with names matching the mode, for
// example cpu.pprof. Analyze them with go tool pprof:
//
//	go tool pprof -http=: cpu.pprof
package profile
