package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler controls the lifecycle of runtime profiling sessions.
//
// Call [Profiler.Start] before the work being measured and [Profiler.Stop]
// after it, to flush the CPU profile and write all enabled snapshot
// profiles.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start applies the heap sampling rate and, if a CPU profile path is
// configured, opens it and begins CPU profiling.
func (p *Profiler) Start() error {
	runtime.MemProfileRate = p.MemProfileRate

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()

		return fmt.Errorf("starting CPU profile: %w", err)
	}

	p.cpuFile = f

	return nil
}

// Stop stops CPU profiling, if it was started, and writes the heap and
// allocs snapshots for any configured paths.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		if err := p.cpuFile.Close(); err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}

		p.cpuFile = nil
	}

	if err := p.writeSnapshot("heap", p.HeapProfile); err != nil {
		return err
	}

	return p.writeSnapshot("allocs", p.AllocsProfile)
}

// writeSnapshot writes the named pprof profile to path, or does nothing
// when path is empty (profile disabled).
func (p *Profiler) writeSnapshot(name, path string) error {
	if path == "" {
		return nil
	}

	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile: %s", name)
	}

	f, err := os.Create(path) //nolint:gosec // Profile path from CLI flag is expected.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	if err := prof.WriteTo(f, 0); err != nil {
		_ = f.Close()

		return fmt.Errorf("write %s profile: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s profile: %w", name, err)
	}

	return nil
}
