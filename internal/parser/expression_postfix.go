package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/token"
)

// parsePostfixExpr разбирает базовое выражение и цепочку `.member` / `(args)`.
// `a.b(c)` остаётся вызовом доступа к члену; переписывание в вызов метода
// делает lowering.
func (p *Parser) parsePostfixExpr() (cst.Expr, error) {
	expr, err := p.parseBasicExpr()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek() {
		case token.Dot:
			dot := p.advance()
			member, err := p.expect(token.Label)
			if err != nil {
				return nil, err
			}
			expr = &cst.ExprMember{Receiver: expr, Dot: dot, Member: member}

		case token.OpenParen:
			open := p.advance()
			args, commas, err := manyCommaSeparated(p, p.parseExpr)
			if err != nil {
				return nil, err
			}
			closeSpan, err := p.expect(token.CloseParen)
			if err != nil {
				return nil, err
			}
			expr = &cst.ExprCall{Callee: expr, Open: open, Args: args, Commas: commas, Close: closeSpan}

		default:
			return expr, nil
		}
	}
}
