package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ferrite/internal/diag"
	"ferrite/internal/diagfmt"
	"ferrite/internal/driver"
	"ferrite/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.fe|directory>",
	Short: "Check ferrite sources for lexical and syntax errors",
	Long:  `Check runs the front end over a file or directory, prints only diagnostics, and exits with status 1 when any error was found`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("cache", false, "reuse and store token streams in the on-disk cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	env := envFrom(cmd)
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	opts, err := env.driverOptions(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var (
		fs    *source.FileSet
		bag   = diag.NewBag(env.cfg.Diagnostics.Max)
		files int
	)
	if st.IsDir() {
		var results []driver.ParseDirResult
		fs, results, err = driver.ParseDir(cmd.Context(), args[0], opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		for _, r := range results {
			bag.Merge(r.Bag)
		}
		files = len(results)
	} else {
		var result *driver.ParseResult
		result, err = driver.Parse(cmd.Context(), args[0], opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		fs = result.FileSet
		bag.Merge(result.Bag)
		files = 1
	}
	bag.Sort()
	bag.Dedup()

	out := cmd.OutOrStdout()
	if format == "json" {
		if err := diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
			return err
		}
	} else {
		diagfmt.Pretty(out, bag, fs, env.prettyOpts())
		if !env.quiet {
			errs := bag.Count(diag.SevError)
			if bag.Len() > 0 {
				fmt.Fprintln(out) //nolint:errcheck
			}
			fmt.Fprintf(out, "checked %d file(s): %d error(s)\n", files, errs) //nolint:errcheck
		}
	}
	if bag.HasErrors() {
		return errDiagnostics
	}
	return nil
}
