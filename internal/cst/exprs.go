package cst

import (
	"lukechampine.com/uint128"

	"ferrite/internal/source"
)

// Expr is an expression.
type Expr interface {
	Node
	expr()
}

// BinaryOp is an infix operator.
type BinaryOp uint8

const (
	OpMul BinaryOp = iota + 1 // *
	OpDiv                     // /
	OpAdd                     // +
	OpSub                     // -
	OpBitAnd                  // &
	OpBitOr                   // |
	OpEq                      // ==
	OpNe                      // !=
	OpAnd                     // &&
	OpOr                      // ||
	OpAssign                  // =
)

var binaryOpText = [...]string{
	OpMul:    "*",
	OpDiv:    "/",
	OpAdd:    "+",
	OpSub:    "-",
	OpBitAnd: "&",
	OpBitOr:  "|",
	OpEq:     "==",
	OpNe:     "!=",
	OpAnd:    "&&",
	OpOr:     "||",
	OpAssign: "=",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) && op != 0 {
		return binaryOpText[op]
	}
	return "?"
}

// ExprVariable is a label used as a value.
type ExprVariable struct{ Name source.Span }

// ExprBool is `true` or `false`.
type ExprBool struct {
	Value bool
	At    source.Span
}

// ExprInteger is a decimal literal that fits in 128 bits.
type ExprInteger struct {
	Value uint128.Uint128
	At    source.Span
}

// ExprParen is `(e)`.
type ExprParen struct {
	Open  source.Span
	Inner Expr
	Close source.Span
}

// ExprTuple is `()`, `(e,)` or `(a, b, ...)`.
type ExprTuple struct {
	Open   source.Span
	Elems  []Expr
	Commas []source.Span
	Close  source.Span
}

// ExprBlock wraps a block used as an expression.
type ExprBlock struct{ Block *Block }

// ExprIf is an if/else chain.
type ExprIf struct{ If *IfChain }

// IfChain is `if cond { ... } [else ...]`.
type IfChain struct {
	If   source.Span
	Cond Expr
	Then *Block
	Else *ElseBranch // nil when absent
}

func (c *IfChain) Span() source.Span {
	if c.Else != nil {
		return cover(c.If, c.Else.Span())
	}
	return cover(c.If, c.Then.Close)
}

// ElseBranch holds exactly one of ElseIf and Block.
type ElseBranch struct {
	Else   source.Span
	ElseIf *IfChain
	Block  *Block
}

func (e *ElseBranch) Span() source.Span {
	if e.ElseIf != nil {
		return cover(e.Else, e.ElseIf.Span())
	}
	return cover(e.Else, e.Block.Close)
}

// ExprWhile is `while cond { ... }`.
type ExprWhile struct {
	While source.Span
	Cond  Expr
	Body  *Block
}

// ExprLoop is `loop { ... }`.
type ExprLoop struct {
	Loop source.Span
	Body *Block
}

// ExprFor is `for name in iter { ... }`.
type ExprFor struct {
	For     source.Span
	Binding source.Span
	In      source.Span
	Iter    Expr
	Body    *Block
}

// MatchArm is `pattern => expr`.
type MatchArm struct {
	Pattern Pattern
	Arrow   source.Span
	Value   Expr
}

func (a *MatchArm) Span() source.Span { return cover(a.Pattern.Span(), a.Value.Span()) }

// ExprMatch is `match e { arms }`. Commas holds the separators actually written.
type ExprMatch struct {
	Match     source.Span
	Scrutinee Expr
	Open      source.Span
	Arms      []*MatchArm
	Commas    []source.Span
	Close     source.Span
}

// ExprBinary is `left op right`.
type ExprBinary struct {
	Left   Expr
	Op     BinaryOp
	OpSpan source.Span
	Right  Expr
}

// ExprCall is `callee(args)`.
type ExprCall struct {
	Callee Expr
	Open   source.Span
	Args   []Expr
	Commas []source.Span
	Close  source.Span
}

// ExprMember is `receiver.member`.
type ExprMember struct {
	Receiver Expr
	Dot      source.Span
	Member   source.Span
}

func (*ExprVariable) expr() {}
func (*ExprBool) expr()     {}
func (*ExprInteger) expr()  {}
func (*ExprParen) expr()    {}
func (*ExprTuple) expr()    {}
func (*ExprBlock) expr()    {}
func (*ExprIf) expr()       {}
func (*ExprWhile) expr()    {}
func (*ExprLoop) expr()     {}
func (*ExprFor) expr()      {}
func (*ExprMatch) expr()    {}
func (*ExprBinary) expr()   {}
func (*ExprCall) expr()     {}
func (*ExprMember) expr()   {}

func (e *ExprVariable) Span() source.Span { return e.Name }
func (e *ExprBool) Span() source.Span     { return e.At }
func (e *ExprInteger) Span() source.Span  { return e.At }
func (e *ExprParen) Span() source.Span    { return cover(e.Open, e.Close) }
func (e *ExprTuple) Span() source.Span    { return cover(e.Open, e.Close) }
func (e *ExprBlock) Span() source.Span    { return e.Block.Span() }
func (e *ExprIf) Span() source.Span       { return e.If.Span() }
func (e *ExprWhile) Span() source.Span    { return cover(e.While, e.Body.Close) }
func (e *ExprLoop) Span() source.Span     { return cover(e.Loop, e.Body.Close) }
func (e *ExprFor) Span() source.Span      { return cover(e.For, e.Body.Close) }
func (e *ExprMatch) Span() source.Span    { return cover(e.Match, e.Close) }
func (e *ExprBinary) Span() source.Span   { return cover(e.Left.Span(), e.Right.Span()) }
func (e *ExprCall) Span() source.Span     { return cover(e.Callee.Span(), e.Close) }
func (e *ExprMember) Span() source.Span   { return cover(e.Receiver.Span(), e.Member) }

// EndsWithBlock reports whether e is a block-like expression that may stand
// as a statement without a trailing `;`.
func EndsWithBlock(e Expr) bool {
	switch e.(type) {
	case *ExprBlock, *ExprIf, *ExprWhile, *ExprLoop, *ExprFor, *ExprMatch:
		return true
	default:
		return false
	}
}
