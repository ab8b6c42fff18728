package ast

import (
	"ferrite/internal/source"
)

type PatternKind uint8

const (
	PatNamed PatternKind = iota + 1
	PatHole
	PatTuple
	PatNamedTuple
)

func (k PatternKind) String() string {
	switch k {
	case PatNamed:
		return "Named"
	case PatHole:
		return "Hole"
	case PatTuple:
		return "Tuple"
	case PatNamedTuple:
		return "NamedTuple"
	default:
		return "Pattern(?)"
	}
}

// Pattern is a match-arm pattern. Name is set for PatNamed and
// PatNamedTuple; Elems for PatTuple and PatNamedTuple.
type Pattern struct {
	Kind  PatternKind
	Span  source.Span
	Name  Symbol
	Elems []PatternID
}

// Patterns manages allocation of patterns.
type Patterns struct {
	Arena *Arena[Pattern]
}

func NewPatterns(capHint uint) *Patterns {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &Patterns{Arena: NewArena[Pattern](capHint)}
}

func (p *Patterns) Get(id PatternID) *Pattern {
	return p.Arena.Get(uint32(id))
}

func (p *Patterns) New(pat Pattern) PatternID {
	return PatternID(p.Arena.Allocate(pat))
}
