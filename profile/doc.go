// Package profile adds CPU, heap, and allocs profiling to the CLI.
//
// Block, mutex, goroutine, and threadcreate profiles have nothing to measure
// in a single-threaded, synchronous inference run, so this package only
// exposes the profiles that correspond to real work here: CPU time spent
// folding documents, and heap growth driven by the inferred schema's
// structural complexity. Use [Config.RegisterFlags] to add CLI flags and
// [Config.RegisterCompletions] to wire up shell completions.
//
// Typical usage creates a [Config], registers flags, then creates a [Profiler]
// to wrap command execution:
//
//	cfg := profile.NewConfig()
//
//	var p *profile.Profiler
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        p = cfg.NewProfiler()
//
//	        return p.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Stop()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//	err := rootCmd.Execute()
//
// Users can then enable profiling via flags like --cpu-profile=cpu.prof.
package profile
