package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ferrite/internal/diagfmt"
	"ferrite/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.fe",
	Short: "Tokenize a ferrite source file",
	Long:  `Tokenize breaks down a ferrite source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse and store token streams in the on-disk cache")
}

func runTokenize(cmd *cobra.Command, args []string) error {
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

	result, err := driver.Tokenize(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if reportDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, env) {
		return errDiagnostics
	}
	if env.timings {
		printTimings(cmd.ErrOrStderr(), "", result.Timer)
	}

	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, result.File.Content)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.File)
}
