package cst

import (
	"ferrite/internal/source"
)

// Type is a type expression.
type Type interface {
	Node
	typeNode()
}

// TypeNamed is a bare label such as `i32`.
type TypeNamed struct{ Name source.Span }

// TypeRef is `&T`.
type TypeRef struct {
	Amp   source.Span
	Inner Type
}

// TypeRefMut is `&mut T`.
type TypeRefMut struct {
	Amp, Mut source.Span
	Inner    Type
}

// TypePtrConst is `*const T`.
type TypePtrConst struct {
	Star, Const source.Span
	Inner       Type
}

// TypePtrMut is `*mut T`.
type TypePtrMut struct {
	Star, Mut source.Span
	Inner     Type
}

// TypeTuple is `()`, `(T,)` or `(T, U, ...)`.
type TypeTuple struct {
	Open   source.Span
	Elems  []Type
	Commas []source.Span
	Close  source.Span
}

// TypeParen is `(T)`.
type TypeParen struct {
	Open  source.Span
	Inner Type
	Close source.Span
}

// TypeHole is `_`.
type TypeHole struct{ Underscore source.Span }

func (*TypeNamed) typeNode()    {}
func (*TypeRef) typeNode()      {}
func (*TypeRefMut) typeNode()   {}
func (*TypePtrConst) typeNode() {}
func (*TypePtrMut) typeNode()   {}
func (*TypeTuple) typeNode()    {}
func (*TypeParen) typeNode()    {}
func (*TypeHole) typeNode()     {}

func (t *TypeNamed) Span() source.Span    { return t.Name }
func (t *TypeRef) Span() source.Span      { return cover(t.Amp, t.Inner.Span()) }
func (t *TypeRefMut) Span() source.Span   { return cover(t.Amp, t.Inner.Span()) }
func (t *TypePtrConst) Span() source.Span { return cover(t.Star, t.Inner.Span()) }
func (t *TypePtrMut) Span() source.Span   { return cover(t.Star, t.Inner.Span()) }
func (t *TypeTuple) Span() source.Span    { return cover(t.Open, t.Close) }
func (t *TypeParen) Span() source.Span    { return cover(t.Open, t.Close) }
func (t *TypeHole) Span() source.Span     { return t.Underscore }
