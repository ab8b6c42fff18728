// Package lower turns the concrete parse tree into the AST.
//
// Lowering keeps the encompassing span of every construct and replaces
// label spans with hashed symbols. Parenthesised types, patterns and
// expressions disappear, `recv.method(args)` becomes a MemberCall and a
// function without `->` gets the empty tuple as its return type.
package lower

import (
	"ferrite/internal/ast"
	"ferrite/internal/cst"
	"ferrite/internal/source"
)

// File lowers every top-level item of one file into b and returns the new
// file node. text must be the contents the CST was parsed from.
func File(b *ast.Builder, text string, file source.FileID, items []*cst.TopLevel) ast.FileID {
	l := New(b, text)
	end := uint32(len(text)) // #nosec G115 -- source files are bounded by uint32 offsets
	fileID := b.NewFile(file, source.SpanOf(file, 0, end))
	for _, top := range items {
		b.PushItem(fileID, l.Item(top))
	}
	return fileID
}

// Lowerer lowers individual CST nodes into a shared builder.
type Lowerer struct {
	b    *ast.Builder
	text string
}

func New(b *ast.Builder, text string) *Lowerer {
	return &Lowerer{b: b, text: text}
}

// Builder returns the builder nodes are allocated in.
func (l *Lowerer) Builder() *ast.Builder {
	return l.b
}

func (l *Lowerer) symbol(sp source.Span) ast.Symbol {
	return ast.NewSymbol(l.text, sp)
}

func (l *Lowerer) path(p *cst.Path) ast.Path {
	out := ast.Path{
		Span:     p.Span(),
		Global:   p.Leading != nil,
		Segments: make([]ast.Symbol, 0, len(p.Segments)),
	}
	for _, seg := range p.Segments {
		out.Segments = append(out.Segments, l.symbol(seg))
	}
	return out
}

func (l *Lowerer) visibility(vis cst.Visibility) ast.Visibility {
	switch v := vis.(type) {
	case *cst.VisPublic:
		return ast.Visibility{Kind: ast.VisPublic, Span: v.Span()}
	case *cst.VisPath:
		p := l.path(v.Path)
		return ast.Visibility{Kind: ast.VisRestricted, Span: v.Span(), Path: &p}
	case *cst.VisPrivate:
		return ast.Visibility{Kind: ast.VisPrivate, Span: v.At}
	default:
		return ast.Visibility{Kind: ast.VisPrivate}
	}
}
