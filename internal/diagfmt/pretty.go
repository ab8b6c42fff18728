package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ferrite/internal/diag"
	"ferrite/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
	note            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.FgWhite, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w) //nolint:errcheck
		}
		prettyOne(w, &d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity(d.Severity).Sprint(d.Severity.String())
	code := pal.code.Sprint(d.Code.ID())

	if !d.Code.HasSource() || fs == nil || fs.Get(d.Primary.File) == nil {
		fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message) //nolint:errcheck
		return
	}
	file := fs.Get(d.Primary.File)
	start := file.LineCol(d.Primary.Start)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(file, fs, opts.PathMode), start.Line, start.Col)
	fmt.Fprintf(w, "%s: %s %s: %s\n", pal.path.Sprint(loc), sev, code, d.Message) //nolint:errcheck

	writeSnippet(w, file, d.Primary, int(opts.Context), pal)

	if !opts.ShowNotes {
		return
	}
	for _, note := range d.Notes {
		nf := fs.Get(note.Span.File)
		if nf == nil {
			fmt.Fprintf(w, "  %s %s\n", pal.note.Sprint("note:"), note.Msg) //nolint:errcheck
			continue
		}
		lc := nf.LineCol(note.Span.Start)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"), //nolint:errcheck
			formatPath(nf, fs, opts.PathMode), lc.Line, lc.Col, note.Msg)
	}
}

// writeSnippet prints the primary line with up to context lines around it
// and an underline below the span. Multi-line spans are underlined up to
// the end of their first line.
func writeSnippet(w io.Writer, file *source.File, sp source.Span, context int, pal palette) {
	start, end := file.LineCol(sp.Start), file.LineCol(sp.End)
	primary := int(start.Line)
	first := max(1, primary-context)
	last := min(file.LineCount(), primary+context)
	gutterWidth := len(fmt.Sprint(last))

	for n := first; n <= last; n++ {
		line := file.Line(uint32(n)) // #nosec G115
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, n), expandTabs(line)) //nolint:errcheck
		if n != primary {
			continue
		}
		col := int(start.Col) - 1
		col = min(col, len(line))
		stop := len(line)
		if end.Line == start.Line {
			stop = min(int(end.Col)-1, len(line))
		}
		pad := displayWidth(line[:col])
		width := max(1, displayWidth(line[col:max(col, stop)]))
		marker := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(w, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), //nolint:errcheck
			strings.Repeat(" ", pad), pal.caret.Sprint(marker))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}
