package source

import (
	"fmt"
)

// Pos is a single byte position inside a file. Index may equal the file length.
type Pos struct {
	File  FileID
	Index uint32
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.File, p.Index)
}

// Span returns the one-byte span starting at p.
func (p Pos) Span() Span {
	return Span{File: p.File, Start: p.Index, End: p.Index + 1}
}

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// SpanOf builds a span from byte offsets, panicking when end precedes start.
func SpanOf(file FileID, start, end uint32) Span {
	if end < start {
		panic(fmt.Sprintf("source: inverted span %d..%d", start, end))
	}
	return Span{File: file, Start: start, End: end}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// StartPos returns the position of the first byte.
func (s Span) StartPos() Pos {
	return Pos{File: s.File, Index: s.Start}
}

// EndPos returns the past-the-end position.
func (s Span) EndPos() Pos {
	return Pos{File: s.File, Index: s.End}
}

// Cover returns the smallest span enclosing both s and other.
// Spans of different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// To is the span from the start of s to the end of other.
func (s Span) To(other Span) Span {
	if other.End < s.Start {
		return s
	}
	return Span{File: s.File, Start: s.Start, End: other.End}
}

// Contains reports whether other lies fully within s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File && s.Start <= other.Start && other.End <= s.End
}

// Text slices the span out of text. Out-of-range spans yield "".
func (s Span) Text(text string) string {
	if s.Start > s.End || int(s.End) > len(text) {
		return ""
	}
	return text[s.Start:s.End]
}
