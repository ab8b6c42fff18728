package cst

import (
	"ferrite/internal/source"
)

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	stmt()
	// SemiSpan returns the trailing `;`, if any.
	SemiSpan() *source.Span
}

// StmtEmpty is a lone `;`.
type StmtEmpty struct{ Semi source.Span }

// StmtExpr is an expression statement. Block-like expressions never own
// a `;`; one written after them is a separate StmtEmpty.
type StmtExpr struct {
	Expr Expr
	Semi *source.Span
}

// StmtLet is `let name [: T] [= e];`. Name may be `_` (Hole == true).
type StmtLet struct {
	Let   source.Span
	Name  source.Span
	Hole  bool
	Colon *source.Span
	Type  Type // nil when absent
	Set   *source.Span
	Value Expr // nil when absent
	Semi  *source.Span
}

func (*StmtEmpty) stmt() {}
func (*StmtExpr) stmt()  {}
func (*StmtLet) stmt()   {}

func (s *StmtEmpty) SemiSpan() *source.Span { return &s.Semi }
func (s *StmtExpr) SemiSpan() *source.Span  { return s.Semi }
func (s *StmtLet) SemiSpan() *source.Span   { return s.Semi }

func (s *StmtEmpty) Span() source.Span { return s.Semi }
func (s *StmtExpr) Span() source.Span {
	if s.Semi != nil {
		return cover(s.Expr.Span(), *s.Semi)
	}
	return s.Expr.Span()
}
func (s *StmtLet) Span() source.Span {
	end := s.Name
	switch {
	case s.Semi != nil:
		end = *s.Semi
	case s.Value != nil:
		end = s.Value.Span()
	case s.Type != nil:
		end = s.Type.Span()
	}
	return cover(s.Let, end)
}

// Block is `{ stmts [tail] }`.
type Block struct {
	Open  source.Span
	Stmts []Stmt
	Tail  Expr // nil when the block ends with a statement
	Close source.Span
}

func (b *Block) Span() source.Span { return cover(b.Open, b.Close) }
