package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"ferrite/internal/ast"
	"ferrite/internal/cst"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// CheckSpans runs the span invariants on a lowered file:
// 1) file.Span lies within the file contents
// 2) every node span belongs to the file and has Start <= End
// 3) every child span is contained in its parent span
func CheckSpans(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	var firstErr error
	b.Walk(ast.FileNode(fileID), func(parent, node ast.Node) bool {
		if firstErr != nil {
			return false
		}
		sp := b.Span(node)
		if sp.File != sf.ID {
			firstErr = fmt.Errorf("node %v: span file mismatch: got=%d want=%d", node, sp.File, sf.ID)
			return false
		}
		if sp.Start > sp.End {
			firstErr = fmt.Errorf("node %v: inverted span %v", node, sp)
			return false
		}
		if parent.Kind != 0 {
			if psp := b.Span(parent); !psp.Contains(sp) {
				firstErr = fmt.Errorf("node %v span %v escapes parent %v span %v", node, sp, parent, psp)
				return false
			}
		}
		return true
	})
	return firstErr
}

// CheckCSTSpans verifies containment for every parent/child pair of a CST.
func CheckCSTSpans(items []*cst.TopLevel) error {
	for _, top := range items {
		if err := checkCSTNode(top); err != nil {
			return err
		}
	}
	return nil
}

func checkCSTNode(parent cst.Node) error {
	psp := parent.Span()
	for _, child := range cst.Children(parent) {
		if !psp.Contains(child.Span()) {
			return fmt.Errorf("%T span %v escapes parent %T span %v", child, child.Span(), parent, psp)
		}
		if err := checkCSTNode(child); err != nil {
			return err
		}
	}
	return nil
}

// CheckTokens verifies that tokens are strictly increasing, non-overlapping
// and aligned to code point boundaries of text.
func CheckTokens(text string, toks []token.Token) error {
	starts := runeStarts(text)
	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if sp.Start >= sp.End {
			return fmt.Errorf("token %d (%s): empty span %v", i, tok.Kind, sp)
		}
		if i > 0 && sp.Start < prevEnd {
			return fmt.Errorf("token %d (%s): span %v overlaps previous end %d", i, tok.Kind, sp, prevEnd)
		}
		if int(sp.End) > len(text) {
			return fmt.Errorf("token %d (%s): span %v beyond text length %d", i, tok.Kind, sp, len(text))
		}
		if !starts[sp.Start] || !starts[sp.End] {
			return fmt.Errorf("token %d (%s): span %v splits a code point", i, tok.Kind, sp)
		}
		prevEnd = sp.End
	}
	return nil
}

// runeStarts marks every offset where decoding starts a new code point.
// Invalid bytes decode one at a time, like in the lexer.
func runeStarts(text string) []bool {
	starts := make([]bool, len(text)+1)
	for off := 0; off < len(text); {
		starts[off] = true
		_, size := utf8.DecodeRuneInString(text[off:])
		off += size
	}
	starts[len(text)] = true
	return starts
}
