package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/token"
)

// parseStmt разбирает один оператор блока.
//
//	let name [: T] [= e] ;
//	;
//	e ;          (no `;` after if/while/loop/for/match/block)
func (p *Parser) parseStmt() (cst.Stmt, error) {
	switch p.peek() {
	case token.KwLet:
		return p.parseLet()
	case token.Semicolon:
		return &cst.StmtEmpty{Semi: p.advance()}, nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	// `;` после блочного выражения остаётся блоку как пустой оператор
	if cst.EndsWithBlock(expr) {
		return &cst.StmtExpr{Expr: expr}, nil
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return &cst.StmtExpr{Expr: expr, Semi: &semi}, nil
}

func (p *Parser) parseLet() (cst.Stmt, error) {
	let, err := p.expect(token.KwLet)
	if err != nil {
		return nil, err
	}
	stmt := &cst.StmtLet{Let: let}
	switch p.peek() {
	case token.Label:
		stmt.Name = p.advance()
	case token.Underscore:
		stmt.Name = p.advance()
		stmt.Hole = true
	default:
		_, err = p.expect(token.Label)
		return nil, err
	}

	if stmt.Colon = p.eat(token.Colon); stmt.Colon != nil {
		if stmt.Type, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if stmt.Set = p.eat(token.Set); stmt.Set != nil {
		if stmt.Value, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	stmt.Semi = &semi
	return stmt, nil
}

// parseBlock: `{ stmt* [tail] }`.
//
// A statement that fails before consuming anything ends the statement list.
// One that fails after consuming tokens is retried from the same place as a
// tail expression; the tail is kept only if it gets further than the
// statement did, otherwise the statement's error stands.
func (p *Parser) parseBlock() (*cst.Block, error) {
	open, err := p.expect(token.OpenCurly)
	if err != nil {
		return nil, err
	}
	block := &cst.Block{Open: open}
	for {
		start := p.index
		stmt, stmtErr := p.parseStmt()
		if stmtErr == nil {
			block.Stmts = append(block.Stmts, stmt)
			continue
		}
		if p.index == start {
			break
		}

		p.index = start
		tail, exprErr := p.parseExpr()
		if exprErr != nil {
			if further(exprErr, stmtErr) {
				return nil, exprErr
			}
			return nil, stmtErr
		}
		if !p.at(token.CloseCurly) {
			closeErr := &Error{Kind: ExpectedToken, Token: token.CloseCurly, Span: p.curSpan()}
			if further(closeErr, stmtErr) {
				return nil, closeErr
			}
			return nil, stmtErr
		}
		block.Tail = tail
		break
	}
	if block.Close, err = p.expect(token.CloseCurly); err != nil {
		return nil, err
	}
	return block, nil
}
