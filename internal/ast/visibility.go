package ast

import (
	"ferrite/internal/source"
)

// VisKind описывает доступность элемента.
type VisKind uint8

const (
	VisPrivate VisKind = iota
	VisPublic
	VisRestricted // pub(path)
)

func (v VisKind) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisRestricted:
		return "restricted"
	default:
		return "private"
	}
}

// Visibility of an item or field. Span is empty for private items.
type Visibility struct {
	Kind VisKind
	Span source.Span
	Path *Path // only for VisRestricted
}

// Path is `[::]a::b::c`. Global marks a leading `::`.
type Path struct {
	Span     source.Span
	Global   bool
	Segments []Symbol
}
