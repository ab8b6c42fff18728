package main

import (
	"fmt"
	"io"

	"ferrite/internal/ast"
	"ferrite/internal/diag"
	"ferrite/internal/diagfmt"
	"ferrite/internal/observ"
	"ferrite/internal/source"
)

// reportDiagnostics prints bag to w and reports whether it held errors.
func reportDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, env *cliEnv) bool {
	if bag == nil || bag.Len() == 0 {
		return false
	}
	bag.Sort()
	diagfmt.Pretty(w, bag, fs, env.prettyOpts())
	return bag.HasErrors()
}

func writeAST(w io.Writer, format string, b *ast.Builder, file ast.FileID, fs *source.FileSet, text string) error {
	switch format {
	case "tree":
		return diagfmt.FormatASTPretty(w, b, file, fs, text)
	case "graph":
		return diagfmt.FormatASTTree(w, b, file, fs, text)
	case "json":
		return diagfmt.FormatASTJSON(w, b, file, text)
	case "yaml":
		return diagfmt.FormatASTYAML(w, b, file, text)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func printTimings(w io.Writer, label string, timer *observ.Timer) {
	if timer == nil {
		return
	}
	if label != "" {
		fmt.Fprintf(w, "== %s ==\n", label) //nolint:errcheck
	}
	fmt.Fprint(w, timer.Summary()) //nolint:errcheck
}
