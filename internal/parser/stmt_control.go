package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/token"
)

// parseIfChain: `if cond { } [else if ... | else { }]`.
func (p *Parser) parseIfChain() (*cst.IfChain, error) {
	ifSpan, err := p.expect(token.KwIf)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	chain := &cst.IfChain{If: ifSpan, Cond: cond, Then: then}

	elseSpan := p.eat(token.KwElse)
	if elseSpan == nil {
		return chain, nil
	}
	branch := &cst.ElseBranch{Else: *elseSpan}
	switch p.peek() {
	case token.KwIf:
		branch.ElseIf, err = p.parseIfChain()
	case token.OpenCurly:
		branch.Block, err = p.parseBlock()
	default:
		return nil, p.expected("`if` or block after `else`")
	}
	if err != nil {
		return nil, err
	}
	chain.Else = branch
	return chain, nil
}

func (p *Parser) parseWhile() (cst.Expr, error) {
	kw, err := p.expect(token.KwWhile)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &cst.ExprWhile{While: kw, Cond: cond, Body: body}, nil
}

func (p *Parser) parseLoop() (cst.Expr, error) {
	kw, err := p.expect(token.KwLoop)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &cst.ExprLoop{Loop: kw, Body: body}, nil
}

// parseFor: `for name in iter { }`. `in` не ключевое слово, это Label.
func (p *Parser) parseFor() (cst.Expr, error) {
	kw, err := p.expect(token.KwFor)
	if err != nil {
		return nil, err
	}
	binding, err := p.expect(token.Label)
	if err != nil {
		return nil, err
	}
	if !p.atWord("in") {
		return nil, p.expected("`in`")
	}
	in := p.advance()
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &cst.ExprFor{For: kw, Binding: binding, In: in, Iter: iter, Body: body}, nil
}

// parseMatch: `match e { pat => value, ... }`. The comma after an arm whose
// value ends with a block may be left out.
func (p *Parser) parseMatch() (cst.Expr, error) {
	kw, err := p.expect(token.KwMatch)
	if err != nil {
		return nil, err
	}
	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	open, err := p.expect(token.OpenCurly)
	if err != nil {
		return nil, err
	}
	m := &cst.ExprMatch{Match: kw, Scrutinee: scrutinee, Open: open}
	for !p.at(token.CloseCurly) {
		arm, ok, err := maybe(p, p.parseMatchArm)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		m.Arms = append(m.Arms, arm)
		if comma := p.eat(token.Comma); comma != nil {
			m.Commas = append(m.Commas, *comma)
			continue
		}
		if !cst.EndsWithBlock(arm.Value) {
			break
		}
	}
	if m.Close, err = p.expect(token.CloseCurly); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *Parser) parseMatchArm() (*cst.MatchArm, error) {
	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	arrow, err := p.expect(token.FatArrow)
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &cst.MatchArm{Pattern: pat, Arrow: arrow, Value: value}, nil
}
