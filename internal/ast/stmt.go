package ast

import (
	"ferrite/internal/source"
)

type StmtKind uint8

const (
	StmtEmpty StmtKind = iota + 1
	StmtExpr
	StmtLet
)

func (k StmtKind) String() string {
	switch k {
	case StmtEmpty:
		return "Empty"
	case StmtExpr:
		return "Expr"
	case StmtLet:
		return "Let"
	default:
		return "Stmt(?)"
	}
}

// Stmt is a block statement. Expr is set for StmtExpr; let data lives in
// Stmts.Lets behind Payload.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Expr    ExprID
	Payload PayloadID
}

// LetStmt: Type and Value are NoTypeID / NoExprID when omitted.
type LetStmt struct {
	Name  LetName
	Type  TypeID
	Value ExprID
}

// Stmts manages allocation of statements.
type Stmts struct {
	Arena *Arena[Stmt]
	Lets  *Arena[LetStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena: NewArena[Stmt](capHint),
		Lets:  NewArena[LetStmt](capHint / 2),
	}
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtEmpty, Span: span}))
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtExpr, Span: span, Expr: expr}))
}

func (s *Stmts) NewLet(span source.Span, data LetStmt) StmtID {
	payload := s.Lets.Allocate(data)
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtLet, Span: span, Payload: PayloadID(payload)}))
}

// Let returns the let data for the given statement ID.
func (s *Stmts) Let(id StmtID) (*LetStmt, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(st.Payload)), true
}

// Block is `{ stmts [tail] }`; Tail is NoExprID when absent.
type Block struct {
	Span  source.Span
	Stmts []StmtID
	Tail  ExprID
}

type Blocks struct {
	Arena *Arena[Block]
}

func NewBlocks(capHint uint) *Blocks {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Blocks{Arena: NewArena[Block](capHint)}
}

func (b *Blocks) Get(id BlockID) *Block {
	return b.Arena.Get(uint32(id))
}

func (b *Blocks) New(block Block) BlockID {
	return BlockID(b.Arena.Allocate(block))
}
