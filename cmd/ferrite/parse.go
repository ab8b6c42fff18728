package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ferrite/internal/diagfmt"
	"ferrite/internal/driver"
	"ferrite/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.fe|directory|->",
	Short: "Parse a ferrite source file or directory and output the AST",
	Long: `Parse lexes, parses and lowers a ferrite source file, standard input ("-"),
or every source file in a directory, and prints the resulting syntax trees`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var parseUI = uiModeAuto

func init() {
	parseCmd.Flags().String("format", "", "output format (tree|graph|json|yaml); default from ferrite.toml")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().Var(&parseUI, "ui", "progress UI for directories (auto|on|off)")
	parseCmd.Flags().Bool("cache", false, "reuse and store token streams in the on-disk cache")
}

func runParse(cmd *cobra.Command, args []string) error {
	env := envFrom(cmd)
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = env.cfg.Parse.Format
	}
	switch format {
	case "tree", "graph", "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	opts, err := env.driverOptions(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	if path == "-" {
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result, parseErr := driver.ParseVirtual(cmd.Context(), "<stdin>", content, opts)
		if parseErr != nil {
			return fmt.Errorf("parsing failed: %w", parseErr)
		}
		return printParseResult(cmd, env, format, result)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		result, parseErr := driver.Parse(cmd.Context(), path, opts)
		if parseErr != nil {
			return fmt.Errorf("parsing failed: %w", parseErr)
		}
		return printParseResult(cmd, env, format, result)
	}
	return runParseDir(cmd, env, format, path, opts)
}

func printParseResult(cmd *cobra.Command, env *cliEnv, format string, result *driver.ParseResult) error {
	failed := reportDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, env)
	if env.timings {
		printTimings(cmd.ErrOrStderr(), "", result.Timer)
	}
	if result.Builder == nil {
		if failed {
			return errDiagnostics
		}
		return nil
	}
	if err := writeAST(cmd.OutOrStdout(), format, result.Builder, result.FileID, result.FileSet, result.File.Content); err != nil {
		return err
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

func runParseDir(cmd *cobra.Command, env *cliEnv, format, dir string, opts driver.Options) error {
	var (
		fs      *source.FileSet
		results []driver.ParseDirResult
		err     error
	)
	if parseUI.useTUI(env.quiet) {
		files, listErr := driver.ListSourceFiles(dir, opts)
		if listErr != nil {
			return fmt.Errorf("parsing failed: %w", listErr)
		}
		fs, results, err = parseDirWithUI(cmd.Context(), "parse "+dir, dir, files, opts)
	} else {
		fs, results, err = driver.ParseDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for _, r := range results {
		if reportDiagnostics(cmd.ErrOrStderr(), r.Bag, fs, env) {
			failed = true
		}
		if env.timings && r.Timer != nil {
			printTimings(cmd.ErrOrStderr(), r.Path, r.Timer)
		}
	}

	if err := writeDirAST(cmd.OutOrStdout(), env, format, fs, results); err != nil {
		return err
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

func displayPath(fs *source.FileSet, r *driver.ParseDirResult) string {
	if !r.Loaded {
		return r.Path
	}
	return fs.Get(r.FileID).FormatPath("relative", fs.BaseDir())
}

func writeDirAST(w io.Writer, env *cliEnv, format string, fs *source.FileSet, results []driver.ParseDirResult) error {
	switch format {
	case "json", "yaml":
		output := make(map[string]*diagfmt.ASTNodeOutput, len(results))
		for i := range results {
			r := &results[i]
			if r.Builder == nil {
				output[displayPath(fs, r)] = nil
				continue
			}
			node, err := diagfmt.BuildASTOutput(r.Builder, r.ASTFile, fs.Get(r.FileID).Content)
			if err != nil {
				return err
			}
			output[displayPath(fs, r)] = &node
		}
		if format == "yaml" {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(output); err != nil {
				return err
			}
			return enc.Close()
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	for idx := range results {
		r := &results[idx]
		if !env.quiet {
			if _, err := fmt.Fprintf(w, "== %s ==\n", displayPath(fs, r)); err != nil {
				return err
			}
		}
		if r.Builder != nil {
			if err := writeAST(w, format, r.Builder, r.ASTFile, fs, fs.Get(r.FileID).Content); err != nil {
				return err
			}
		}
		if !env.quiet && idx < len(results)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
