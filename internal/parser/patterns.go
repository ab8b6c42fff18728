package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/token"
)

// parsePattern разбирает образец ветки match:
//
//	Label | Label ( P,* ) | _ | ( P,* )
func (p *Parser) parsePattern() (cst.Pattern, error) {
	switch p.peek() {
	case token.Label:
		name := p.advance()
		if !p.at(token.OpenParen) {
			return &cst.PatNamed{Name: name}, nil
		}
		inner, err := p.parseParenOrTuplePattern()
		if err != nil {
			return nil, err
		}
		return &cst.PatNamedTuple{Name: name, Inner: inner}, nil

	case token.Underscore:
		return &cst.PatHole{Underscore: p.advance()}, nil

	case token.OpenParen:
		return p.parseParenOrTuplePattern()

	default:
		return nil, p.expected("pattern")
	}
}

func (p *Parser) parseParenOrTuplePattern() (cst.Pattern, error) {
	open, err := p.expect(token.OpenParen)
	if err != nil {
		return nil, err
	}
	elems, commas, err := manyCommaSeparated(p, p.parsePattern)
	if err != nil {
		return nil, err
	}
	closeSpan, err := p.expect(token.CloseParen)
	if err != nil {
		return nil, err
	}
	if len(elems) == 1 && len(commas) == 0 {
		return &cst.PatParen{Open: open, Inner: elems[0], Close: closeSpan}, nil
	}
	return &cst.PatTuple{Open: open, Elems: elems, Commas: commas, Close: closeSpan}, nil
}
