package parser

import (
	"lukechampine.com/uint128"

	"ferrite/internal/cst"
	"ferrite/internal/token"
)

// parseBasicExpr разбирает первичное выражение.
func (p *Parser) parseBasicExpr() (cst.Expr, error) {
	switch p.peek() {
	case token.Label:
		sp := p.curSpan()
		if text := sp.Text(p.text); text != "" && text[0] >= '0' && text[0] <= '9' {
			// слово вроде `1abc`: не идентификатор и не число
			return nil, p.expected("integer literal")
		}
		p.advance()
		return &cst.ExprVariable{Name: sp}, nil

	case token.Integer:
		sp := p.advance()
		v, err := uint128.FromString(sp.Text(p.text))
		if err != nil {
			return nil, &Error{Kind: IntegerOutOfRange, Span: sp}
		}
		return &cst.ExprInteger{Value: v, At: sp}, nil

	case token.KwTrue:
		return &cst.ExprBool{Value: true, At: p.advance()}, nil
	case token.KwFalse:
		return &cst.ExprBool{Value: false, At: p.advance()}, nil

	case token.OpenParen:
		return p.parseParenOrTupleExpr()

	case token.OpenCurly:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &cst.ExprBlock{Block: block}, nil

	case token.KwIf:
		chain, err := p.parseIfChain()
		if err != nil {
			return nil, err
		}
		return &cst.ExprIf{If: chain}, nil

	case token.KwWhile:
		return p.parseWhile()
	case token.KwLoop:
		return p.parseLoop()
	case token.KwFor:
		return p.parseFor()
	case token.KwMatch:
		return p.parseMatch()

	default:
		return nil, p.expected("expression")
	}
}

func (p *Parser) parseParenOrTupleExpr() (cst.Expr, error) {
	open, err := p.expect(token.OpenParen)
	if err != nil {
		return nil, err
	}
	elems, commas, err := manyCommaSeparated(p, p.parseExpr)
	if err != nil {
		return nil, err
	}
	closeSpan, err := p.expect(token.CloseParen)
	if err != nil {
		return nil, err
	}
	if len(elems) == 1 && len(commas) == 0 {
		return &cst.ExprParen{Open: open, Inner: elems[0], Close: closeSpan}, nil
	}
	return &cst.ExprTuple{Open: open, Elems: elems, Commas: commas, Close: closeSpan}, nil
}
