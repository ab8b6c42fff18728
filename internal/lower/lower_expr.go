package lower

import (
	"fmt"

	"ferrite/internal/ast"
	"ferrite/internal/cst"
)

var binaryOps = [...]ast.BinaryOp{
	cst.OpMul:    ast.BinMul,
	cst.OpDiv:    ast.BinDiv,
	cst.OpAdd:    ast.BinAdd,
	cst.OpSub:    ast.BinSub,
	cst.OpBitAnd: ast.BinBitAnd,
	cst.OpBitOr:  ast.BinBitOr,
	cst.OpEq:     ast.BinEq,
	cst.OpNe:     ast.BinNe,
	cst.OpAnd:    ast.BinAnd,
	cst.OpOr:     ast.BinOr,
	cst.OpAssign: ast.BinAssign,
}

// Expr lowers an expression.
func (l *Lowerer) Expr(e cst.Expr) ast.ExprID {
	exprs := l.b.Exprs
	switch ex := e.(type) {
	case *cst.ExprParen:
		return l.Expr(ex.Inner)
	case *cst.ExprVariable:
		return exprs.NewVariable(ex.Span(), l.symbol(ex.Name))
	case *cst.ExprBool:
		return exprs.NewBool(ex.Span(), ex.Value)
	case *cst.ExprInteger:
		return exprs.NewInteger(ex.Span(), ex.Value)
	case *cst.ExprTuple:
		return exprs.NewTuple(ex.Span(), l.exprs(ex.Elems))
	case *cst.ExprBlock:
		return exprs.NewBlock(ex.Span(), l.Block(ex.Block))
	case *cst.ExprIf:
		return l.ifChain(ex.If)
	case *cst.ExprWhile:
		return exprs.NewWhile(ex.Span(), l.Expr(ex.Cond), l.Block(ex.Body))
	case *cst.ExprLoop:
		return exprs.NewLoop(ex.Span(), l.Block(ex.Body))
	case *cst.ExprFor:
		return exprs.NewFor(ex.Span(), ast.ExprForData{
			Binding: l.symbol(ex.Binding),
			Iter:    l.Expr(ex.Iter),
			Body:    l.Block(ex.Body),
		})
	case *cst.ExprMatch:
		data := ast.ExprMatchData{
			Scrutinee: l.Expr(ex.Scrutinee),
			Arms:      make([]ast.MatchArm, 0, len(ex.Arms)),
		}
		for _, arm := range ex.Arms {
			data.Arms = append(data.Arms, ast.MatchArm{
				Span:    arm.Span(),
				Pattern: l.Pattern(arm.Pattern),
				Value:   l.Expr(arm.Value),
			})
		}
		return exprs.NewMatch(ex.Span(), data)
	case *cst.ExprBinary:
		return exprs.NewBinary(ex.Span(), binaryOps[ex.Op], l.Expr(ex.Left), l.Expr(ex.Right))
	case *cst.ExprCall:
		// `recv.m(args)` arrives as a call of a member access.
		if member, ok := ex.Callee.(*cst.ExprMember); ok {
			access := l.Expr(member)
			return exprs.NewMemberCall(ex.Span(), access, l.exprs(ex.Args))
		}
		return exprs.NewCall(ex.Span(), l.Expr(ex.Callee), l.exprs(ex.Args))
	case *cst.ExprMember:
		return exprs.NewMember(ex.Span(), l.Expr(ex.Receiver), l.symbol(ex.Member))
	default:
		panic(fmt.Sprintf("lower: unexpected expression %T", e))
	}
}

func (l *Lowerer) exprs(es []cst.Expr) []ast.ExprID {
	out := make([]ast.ExprID, 0, len(es))
	for _, e := range es {
		out = append(out, l.Expr(e))
	}
	return out
}

func (l *Lowerer) ifChain(c *cst.IfChain) ast.ExprID {
	data := ast.ExprIfData{
		Cond: l.Expr(c.Cond),
		Then: l.Block(c.Then),
	}
	if c.Else != nil {
		if c.Else.ElseIf != nil {
			data.Else = l.ifChain(c.Else.ElseIf)
		} else {
			data.Else = l.b.Exprs.NewBlock(c.Else.Block.Span(), l.Block(c.Else.Block))
		}
	}
	return l.b.Exprs.NewIf(c.Span(), data)
}
