package diag

import (
	"errors"
	"slices"
	"testing"

	"ferrite/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range uint32(3) {
		ok := b.Add(NewError(SynExpected, sp(i, i+1), "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 || !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("unexpected bag state: len=%d", b.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, LexUnrecognizedSymbol, sp(5, 6), "w"))
	b.Add(NewError(SynExpectedToken, sp(1, 2), "a"))
	b.Add(NewError(SynExpectedToken, sp(1, 2), "a again"))
	b.Add(NewError(LexUnterminatedBlockComment, sp(1, 2), "c"))

	b.Sort()
	b.Dedup()

	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("got %d items after dedup", len(items))
	}
	wantCodes := []Code{LexUnterminatedBlockComment, SynExpectedToken, LexUnrecognizedSymbol}
	for i, want := range wantCodes {
		if items[i].Code != want {
			t.Fatalf("items[%d].Code = %s, want %s", i, items[i].Code.ID(), want.ID())
		}
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SynExpected, sp(0, 1), "a"))
	other := NewBag(2)
	other.Add(NewError(SynExpected, sp(1, 2), "b"))
	other.Add(NewError(SynExpected, sp(2, 3), "c"))

	a.Merge(other)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("len=%d cap=%d after merge", a.Len(), a.Cap())
	}
}

func TestWithNoteDoesNotAlias(t *testing.T) {
	base := NewError(SynExpected, sp(0, 1), "x").WithNote(sp(0, 0), "first")
	a := base.WithNote(sp(1, 1), "a")
	b := base.WithNote(sp(2, 2), "b")
	if a.Notes[1].Msg != "a" || b.Notes[1].Msg != "b" || len(base.Notes) != 1 {
		t.Fatalf("notes aliased: a=%v b=%v base=%v", a.Notes, b.Notes, base.Notes)
	}
}

func TestReportIO(t *testing.T) {
	bag := NewBag(4)
	r := BagReporter{Bag: bag}

	ReportIO(r, SevWarning, IOCacheError, "a.fe", errors.New("disk full"))
	ReportIO(r, SevError, IOLoadFileError, "", nil)
	ReportIO(nil, SevError, IOLoadFileError, "b.fe", errors.New("x"))
	if bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Message != "a.fe: disk full" || d.Severity != SevWarning || d.Code.HasSource() {
		t.Fatalf("unexpected: %+v", d)
	}
	BagReporter{}.Report(d) // nil bag is a no-op
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnterminatedBlockComment, "LEX1003"},
		{SynExpectedToken, "SYN2001"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if Code(1999).Title() != "Unknown error" {
		t.Errorf("unknown code title = %q", Code(1999).Title())
	}
}

func TestBagSortPutsIOFirst(t *testing.T) {
	b := NewBag(4)
	b.Add(NewError(SynExpected, sp(3, 4), "late"))
	b.Add(NewWarning(IOCacheError, source.Span{}, "cache"))
	b.Add(NewError(SynExpected, source.Span{File: 0, Start: 0, End: 1}, "early"))
	b.Sort()

	got := make([]string, 0, b.Len())
	for _, d := range b.Items() {
		got = append(got, d.Message)
	}
	if want := []string{"cache", "early", "late"}; !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if b.Count(SevWarning) != 3 || b.Count(SevError) != 2 {
		t.Fatalf("counts: warn+=%d err=%d", b.Count(SevWarning), b.Count(SevError))
	}
}
