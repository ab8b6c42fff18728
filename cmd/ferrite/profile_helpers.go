package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ferrite/internal/logging"
	"ferrite/internal/prof"
)

// profiling is the session started by setupEnv; main stops it once Execute
// returns, including on error paths where PostRun hooks are skipped.
var profiling *prof.Session

func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	if profiling, err = prof.Start(opts); err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug("profiling enabled",
		"cpu", opts.CPU, "mem", opts.Mem, "trace", opts.Trace)
	return nil
}

// stopProfiling flushes every active profiler; failures are only reported.
func stopProfiling(cmd *cobra.Command) {
	if err := profiling.Stop(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: profiling:", err)
	}
	profiling = nil
}
