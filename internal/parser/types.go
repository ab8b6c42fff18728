package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// parseType разбирает тип:
//
//	& T | &mut T | && T | *const T | *mut T | ( T,* ) | _ | Label
func (p *Parser) parseType() (cst.Type, error) {
	switch p.peek() {
	case token.Ampersand:
		amp := p.advance()
		return p.parseRefTail(amp)

	case token.And:
		// `&&`: это две ссылки подряд, каждая со своим однобайтовым спаном
		both := p.advance()
		outer := source.Span{File: both.File, Start: both.Start, End: both.Start + 1}
		inner := source.Span{File: both.File, Start: both.Start + 1, End: both.End}
		ref, err := p.parseRefTail(inner)
		if err != nil {
			return nil, err
		}
		return &cst.TypeRef{Amp: outer, Inner: ref}, nil

	case token.Star:
		star := p.advance()
		switch p.peek() {
		case token.KwConst:
			kw := p.advance()
			inner, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &cst.TypePtrConst{Star: star, Const: kw, Inner: inner}, nil
		case token.KwMut:
			kw := p.advance()
			inner, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &cst.TypePtrMut{Star: star, Mut: kw, Inner: inner}, nil
		default:
			return nil, p.expected("`const` or `mut` after pointer")
		}

	case token.OpenParen:
		return p.parseParenOrTupleType()

	case token.Underscore:
		return &cst.TypeHole{Underscore: p.advance()}, nil

	case token.Label:
		return &cst.TypeNamed{Name: p.advance()}, nil

	default:
		return nil, p.expected("type")
	}
}

// parseRefTail разбирает всё после `&`: необязательный `mut` и внутренний тип.
func (p *Parser) parseRefTail(amp source.Span) (cst.Type, error) {
	if mut := p.eat(token.KwMut); mut != nil {
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &cst.TypeRefMut{Amp: amp, Mut: *mut, Inner: inner}, nil
	}
	inner, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &cst.TypeRef{Amp: amp, Inner: inner}, nil
}

// (T) is a parenthesised type; (), (T,) and (T, U) are tuples.
func (p *Parser) parseParenOrTupleType() (cst.Type, error) {
	open, err := p.expect(token.OpenParen)
	if err != nil {
		return nil, err
	}
	elems, commas, err := manyCommaSeparated(p, p.parseType)
	if err != nil {
		return nil, err
	}
	closeSpan, err := p.expect(token.CloseParen)
	if err != nil {
		return nil, err
	}
	if len(elems) == 1 && len(commas) == 0 {
		return &cst.TypeParen{Open: open, Inner: elems[0], Close: closeSpan}, nil
	}
	return &cst.TypeTuple{Open: open, Elems: elems, Commas: commas, Close: closeSpan}, nil
}
