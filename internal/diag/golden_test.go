package diag

import (
	"testing"

	"ferrite/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.fe", []byte("a\nb\n"), 0)
	otherFile := fs.Add("/workspace/lib/helper.fe", []byte("x\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynExpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: otherFile, Start: 0, End: 0}, Msg: "declared here"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     LexUnrecognizedSymbol,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "note SYN2001 lib/helper.fe:1:1 declared here\n" +
		"error SYN2001 testdata/golden/sample.fe:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.fe:2:1 note line\n" +
		"warning LEX1002 testdata/golden/sample.fe:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatGoldenDiagnosticsWithoutNotes(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	id := fs.Add("/workspace/a.fe", []byte("let"), 0)
	diags := []Diagnostic{NewError(SynExpected, source.Span{File: id, Start: 3, End: 3}, "expected top level item").
		WithNote(source.Span{File: id, Start: 0, End: 3}, "ignored")}

	if got, want := FormatGoldenDiagnostics(diags, fs, false), "error SYN2002 a.fe:1:4 expected top level item"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := FormatGoldenDiagnostics(nil, fs, true); got != "" {
		t.Fatalf("empty input should render empty, got %q", got)
	}
}

func TestFormatGoldenDiagnosticsIO(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	id := fs.Add("/workspace/a.fe", []byte("fn"), 0)
	diags := []Diagnostic{
		NewError(SynExpectedToken, source.Span{File: id, Start: 2, End: 3}, "expected identifier"),
		NewError(IOLoadFileError, source.Span{}, "b.fe: no such file"),
		NewError(SynExpected, source.Span{File: 42, Start: 0, End: 1}, "unknown file"),
	}
	want := "error IO4001 - b.fe: no such file\n" +
		"error SYN2001 a.fe:1:3 expected identifier"
	if got := FormatGoldenDiagnostics(diags, fs, false); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
