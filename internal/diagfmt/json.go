package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"ferrite/internal/diag"
	"ferrite/internal/source"
)

// maxSpanText bounds LocationJSON.Text; longer spans are cut.
const maxSpanText = 80

// PositionJSON is a 1-based line/column pair.
type PositionJSON struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// LocationJSON: байтовый диапазон в файле; From/To/Text только с IncludePositions.
type LocationJSON struct {
	File  string        `json:"file"`
	Start uint32        `json:"start"`
	End   uint32        `json:"end"`
	From  *PositionJSON `json:"from,omitempty"`
	To    *PositionJSON `json:"to,omitempty"`
	Text  string        `json:"text,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic; Location is absent for I/O codes.
type DiagnosticJSON struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
	Notes    []NoteJSON    `json:"notes,omitempty"`
}

// DiagnosticsOutput is the document written by JSON. Errors and Warnings
// count the whole bag even when Max cut the list.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
	Truncated   bool             `json:"truncated,omitempty"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	f := fs.Get(span.File)
	loc := LocationJSON{File: formatPath(f, fs, opts.PathMode), Start: span.Start, End: span.End}
	if !opts.IncludePositions || f == nil {
		return loc
	}
	from, to := fs.Resolve(span)
	loc.From = &PositionJSON{Line: from.Line, Col: from.Col}
	loc.To = &PositionJSON{Line: to.Line, Col: to.Col}
	loc.Text = clipText(span.Text(f.Content))
	return loc
}

// clipText keeps the first line of s, at most maxSpanText bytes.
func clipText(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > maxSpanText {
		s = strings.ToValidUTF8(s[:maxSpanText], "")
	}
	return s
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	out := DiagnosticsOutput{
		Errors:   bag.Count(diag.SevError),
		Warnings: bag.Count(diag.SevWarning) - bag.Count(diag.SevError),
	}
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
		out.Truncated = true
	}

	out.Diagnostics = make([]DiagnosticJSON, 0, len(items))
	for _, d := range items {
		dj := DiagnosticJSON{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
		}
		if fs != nil && d.Code.HasSource() {
			loc := makeLocation(d.Primary, fs, opts)
			dj.Location = &loc
		}
		if fs != nil && opts.IncludeNotes {
			for _, note := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Message: note.Msg, Location: makeLocation(note.Span, fs, opts)})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes the diagnostics as one indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
