package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"ferrite/internal/source"
)

// goldenLine is one rendered entry; pos is "path:line:col" or "-" for
// diagnostics that point at no file.
type goldenLine struct {
	sev, code, path string
	line, col       uint32
	msg             string
}

func (g goldenLine) String() string {
	pos := "-"
	if g.path != "" {
		pos = fmt.Sprintf("%s:%d:%d", g.path, g.line, g.col)
	}
	return g.sev + " " + g.code + " " + pos + " " + g.msg
}

// FormatGoldenDiagnostics renders one line per diagnostic (and per note when
// includeNotes is set) for comparison in tests. Paths are relative to the
// file set's base directory; lines are sorted by location.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	var lines []goldenLine
	for i := range diags {
		d := &diags[i]
		if g, ok := goldenAt(fs, d.Code, d.Primary); ok {
			g.sev, g.msg = d.Severity.Label(), oneLine(d.Message)
			lines = append(lines, g)
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			if g, ok := goldenAt(fs, d.Code, n.Span); ok {
				g.sev, g.msg = "note", oneLine(n.Msg)
				lines = append(lines, g)
			}
		}
	}

	slices.SortStableFunc(lines, func(x, y goldenLine) int {
		return cmp.Or(
			cmp.Compare(x.path, y.path),
			cmp.Compare(x.line, y.line),
			cmp.Compare(x.col, y.col),
			cmp.Compare(x.sev, y.sev),
			cmp.Compare(x.code, y.code),
			cmp.Compare(x.msg, y.msg),
		)
	})

	out := make([]string, len(lines))
	for i, g := range lines {
		out[i] = g.String()
	}
	return strings.Join(out, "\n")
}

// goldenAt resolves span; I/O codes resolve to "-" and spans into unknown
// files are skipped.
func goldenAt(fs *source.FileSet, code Code, span source.Span) (goldenLine, bool) {
	g := goldenLine{code: code.ID()}
	if !code.HasSource() {
		return g, true
	}
	file := fs.Get(span.File)
	if file == nil {
		return g, false
	}
	start, _ := fs.Resolve(span)
	g.path = filepath.ToSlash(file.FormatPath("relative", fs.BaseDir()))
	for strings.HasPrefix(g.path, "./") {
		g.path = g.path[2:]
	}
	g.line, g.col = start.Line, start.Col
	return g, true
}

func oneLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.NewReplacer("\r", " ", "\n", " ").Replace(msg)
	return strings.TrimSpace(msg)
}
