package lower

import (
	"fmt"

	"ferrite/internal/ast"
	"ferrite/internal/cst"
)

// Block lowers `{ stmts [tail] }`.
func (l *Lowerer) Block(b *cst.Block) ast.BlockID {
	block := ast.Block{
		Span:  b.Span(),
		Stmts: make([]ast.StmtID, 0, len(b.Stmts)),
	}
	for _, st := range b.Stmts {
		block.Stmts = append(block.Stmts, l.stmt(st))
	}
	if b.Tail != nil {
		block.Tail = l.Expr(b.Tail)
	}
	return l.b.Blocks.New(block)
}

func (l *Lowerer) stmt(st cst.Stmt) ast.StmtID {
	stmts := l.b.Stmts
	switch s := st.(type) {
	case *cst.StmtEmpty:
		return stmts.NewEmpty(s.Span())
	case *cst.StmtExpr:
		return stmts.NewExpr(s.Span(), l.Expr(s.Expr))
	case *cst.StmtLet:
		let := ast.LetStmt{Name: ast.LetName{Span: s.Name}}
		if !s.Hole {
			let.Name.ID = ast.SymbolIDOf(s.Name.Text(l.text))
			let.Name.Named = true
		}
		if s.Type != nil {
			let.Type = l.Type(s.Type)
		}
		if s.Value != nil {
			let.Value = l.Expr(s.Value)
		}
		return stmts.NewLet(s.Span(), let)
	default:
		panic(fmt.Sprintf("lower: unexpected statement %T", st))
	}
}
