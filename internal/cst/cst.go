// Package cst holds the concrete parse tree produced by the parser.
//
// Every node keeps the spans of the tokens it was built from, so the
// source can be reconstructed down to delimiters and separators. Sum types
// are closed: each family is an interface with an unexported marker method
// and one pointer-to-struct variant per alternative.
package cst

import (
	"ferrite/internal/source"
)

// Node is anything with an encompassing span.
type Node interface {
	Span() source.Span
}

func cover(first, last source.Span) source.Span {
	return first.To(last)
}

// Path is `[::] a :: b :: c`.
type Path struct {
	Leading    *source.Span // optional leading `::`
	Segments   []source.Span
	Separators []source.Span // `::` between segments
}

func (p *Path) Span() source.Span {
	first := p.Segments[0]
	if p.Leading != nil {
		first = *p.Leading
	}
	return cover(first, p.Segments[len(p.Segments)-1])
}

// Visibility is the optional `pub` prefix of an item or field.
type Visibility interface {
	Node
	visibility()
}

// VisPrivate is the absence of `pub`. Its span is empty, at the item start.
type VisPrivate struct {
	At source.Span
}

// VisPublic is `pub` or `pub()`.
type VisPublic struct {
	Pub   source.Span
	Open  *source.Span
	Close *source.Span
}

// VisPath is `pub(path)`.
type VisPath struct {
	Pub   source.Span
	Open  source.Span
	Path  *Path
	Close source.Span
}

func (*VisPrivate) visibility() {}
func (*VisPublic) visibility()  {}
func (*VisPath) visibility()    {}

func (v *VisPrivate) Span() source.Span { return v.At }
func (v *VisPublic) Span() source.Span {
	if v.Close != nil {
		return cover(v.Pub, *v.Close)
	}
	return v.Pub
}
func (v *VisPath) Span() source.Span { return cover(v.Pub, v.Close) }

// IsPrivate reports whether vis is VisPrivate.
func IsPrivate(vis Visibility) bool {
	_, ok := vis.(*VisPrivate)
	return ok
}

// TopLevel is one item of a file with its visibility.
type TopLevel struct {
	Vis  Visibility
	Item Item
}

func (t *TopLevel) Span() source.Span {
	if IsPrivate(t.Vis) {
		return t.Item.Span()
	}
	return cover(t.Vis.Span(), t.Item.Span())
}

// Item is a top-level declaration.
type Item interface {
	Node
	item()
}

// Param is `name: Type` in a function signature.
type Param struct {
	Name  source.Span
	Colon source.Span
	Type  Type
}

func (p *Param) Span() source.Span { return cover(p.Name, p.Type.Span()) }

// Function is `fn name(params) [-> Type] { ... }`.
type Function struct {
	Fn         source.Span
	Name       source.Span
	Open       source.Span
	Params     []*Param
	Commas     []source.Span
	Close      source.Span
	Arrow      *source.Span
	ReturnType Type // nil when omitted
	Body       *Block
}

// Field is `[vis] name: Type` inside a struct.
type Field struct {
	Vis   Visibility
	Name  source.Span
	Colon source.Span
	Type  Type
}

func (f *Field) Span() source.Span {
	if IsPrivate(f.Vis) {
		return cover(f.Name, f.Type.Span())
	}
	return cover(f.Vis.Span(), f.Type.Span())
}

// Struct is `struct Name { fields }`.
type Struct struct {
	Struct source.Span
	Name   source.Span
	Open   source.Span
	Fields []*Field
	Commas []source.Span
	Close  source.Span
}

// Variant is `Name` or `Name(T, ...)` inside an enum.
type Variant struct {
	Name   source.Span
	Fields Type // nil, *TypeParen or *TypeTuple
}

func (v *Variant) Span() source.Span {
	if v.Fields == nil {
		return v.Name
	}
	return cover(v.Name, v.Fields.Span())
}

// Enum is `enum Name { variants }`.
type Enum struct {
	Enum     source.Span
	Name     source.Span
	Open     source.Span
	Variants []*Variant
	Commas   []source.Span
	Close    source.Span
}

// ModFile is `mod name;`.
type ModFile struct {
	Mod  source.Span
	Name source.Span
	Semi source.Span
}

// Use is `use path;`.
type Use struct {
	Use  source.Span
	Path *Path
	Semi source.Span
}

func (*Function) item() {}
func (*Struct) item()   {}
func (*Enum) item()     {}
func (*ModFile) item()  {}
func (*Use) item()      {}

func (f *Function) Span() source.Span { return cover(f.Fn, f.Body.Close) }
func (s *Struct) Span() source.Span   { return cover(s.Struct, s.Close) }
func (e *Enum) Span() source.Span     { return cover(e.Enum, e.Close) }
func (m *ModFile) Span() source.Span  { return cover(m.Mod, m.Semi) }
func (u *Use) Span() source.Span      { return cover(u.Use, u.Semi) }
