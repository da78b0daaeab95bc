package profile

import (
	"path/filepath"
	"slices"
)

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler selects a profiling mode and where its output is written.
type Profiler struct {
	// Mode is one of [Modes]. An empty or unknown mode disables profiling.
	Mode string
	// Path is the output directory. An empty path lets the profiler choose
	// a temporary directory.
	Path string
	// Quiet suppresses the profiler's own start and stop messages.
	Quiet bool
}

// Enabled reports whether p names a supported mode.
func (p Profiler) Enabled() bool {
	return p.Mode != "" && slices.Contains(Modes(), p.Mode)
}

// Start begins profiling. Both Start and the returned Stop are always safe to
// call, even when profiling is disabled.
func (p Profiler) Start() Stopper {
	if !p.Enabled() {
		return ignore{}
	}

	path := p.Path
	if path != "" {
		path = filepath.Clean(path)
	}

	return start(p.Mode, path, p.Quiet)
}

type ignore struct{}

func (ignore) Stop() {}
