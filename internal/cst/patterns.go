package cst

import (
	"ferrite/internal/source"
)

// Pattern appears in match arms.
type Pattern interface {
	Node
	pattern()
}

// PatNamed binds or matches a bare label.
type PatNamed struct{ Name source.Span }

// PatHole is `_`.
type PatHole struct{ Underscore source.Span }

// PatTuple is `()`, `(p,)` or `(p, q, ...)`.
type PatTuple struct {
	Open   source.Span
	Elems  []Pattern
	Commas []source.Span
	Close  source.Span
}

// PatParen is `(p)`.
type PatParen struct {
	Open  source.Span
	Inner Pattern
	Close source.Span
}

// PatNamedTuple is `Name(...)`; Inner is a *PatParen or *PatTuple.
type PatNamedTuple struct {
	Name  source.Span
	Inner Pattern
}

func (*PatNamed) pattern()      {}
func (*PatHole) pattern()       {}
func (*PatTuple) pattern()      {}
func (*PatParen) pattern()      {}
func (*PatNamedTuple) pattern() {}

func (p *PatNamed) Span() source.Span      { return p.Name }
func (p *PatHole) Span() source.Span       { return p.Underscore }
func (p *PatTuple) Span() source.Span      { return cover(p.Open, p.Close) }
func (p *PatParen) Span() source.Span      { return cover(p.Open, p.Close) }
func (p *PatNamedTuple) Span() source.Span { return cover(p.Name, p.Inner.Span()) }
