package ast

import (
	"ferrite/internal/source"
)

type TypeKind uint8

const (
	TypeNamed TypeKind = iota + 1
	TypeRef
	TypeRefMut
	TypePtrConst
	TypePtrMut
	TypeTuple
	TypeHole
)

func (k TypeKind) String() string {
	switch k {
	case TypeNamed:
		return "Named"
	case TypeRef:
		return "Ref"
	case TypeRefMut:
		return "RefMut"
	case TypePtrConst:
		return "PtrConst"
	case TypePtrMut:
		return "PtrMut"
	case TypeTuple:
		return "Tuple"
	case TypeHole:
		return "Hole"
	default:
		return "Type(?)"
	}
}

// Type is a type expression. Name is set for TypeNamed, Inner for the
// reference and pointer kinds, Elems for TypeTuple.
type Type struct {
	Kind  TypeKind
	Span  source.Span
	Name  Symbol
	Inner TypeID
	Elems []TypeID
}

// Types manages allocation of type expressions.
type Types struct {
	Arena *Arena[Type]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Types{Arena: NewArena[Type](capHint)}
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

func (t *Types) NewNamed(span source.Span, name Symbol) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: TypeNamed, Span: span, Name: name}))
}

// NewWrapped creates a reference or pointer type around inner.
func (t *Types) NewWrapped(kind TypeKind, span source.Span, inner TypeID) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: kind, Span: span, Inner: inner}))
}

func (t *Types) NewTuple(span source.Span, elems []TypeID) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: TypeTuple, Span: span, Elems: elems}))
}

func (t *Types) NewHole(span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: TypeHole, Span: span}))
}
