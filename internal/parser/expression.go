package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/source"
)

type pendingOp struct {
	opInfo
	span source.Span
}

// parseExpr: выражение с бинарными операторами.
//
// Precedence climbing over an explicit operand/operator stack: before an
// operator is pushed, every stacked operator that binds at least as tightly
// (and associates to the left) is reduced. Two non-associative operators of
// the same level in a row are rejected.
func (p *Parser) parseExpr() (cst.Expr, error) {
	first, err := p.parsePostfixExpr()
	if err != nil {
		return nil, err
	}
	operands := []cst.Expr{first}
	var ops []pendingOp

	reduce := func() {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		n := len(operands)
		operands = append(operands[:n-2], &cst.ExprBinary{
			Left:   operands[n-2],
			Op:     top.op,
			OpSpan: top.span,
			Right:  operands[n-1],
		})
	}

	for {
		info, ok := binaryOperator(p.peek())
		if !ok {
			break
		}
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if top.prec == info.prec && info.assoc == assocNone {
				return nil, p.expected("parentheses around non-associative operator")
			}
			if top.prec < info.prec || (top.prec == info.prec && info.assoc == assocLeft) {
				reduce()
				continue
			}
			break
		}
		ops = append(ops, pendingOp{opInfo: info, span: p.advance()})

		rhs, err := p.parsePostfixExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, rhs)
	}

	for len(ops) > 0 {
		reduce()
	}
	return operands[0], nil
}
