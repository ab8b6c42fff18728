package parser

import (
	"ferrite/internal/source"
	"ferrite/internal/token"
)

func (p *Parser) atEOF() bool {
	return p.index >= len(p.toks)
}

// peek возвращает вид текущего токена; Invalid на конце файла.
func (p *Parser) peek() token.Kind {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) token.Kind {
	if p.index+n >= len(p.toks) {
		return token.Invalid
	}
	return p.toks[p.index+n].Kind
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek() == k
}

// atWord reports a Label whose text is word, e.g. the contextual `in`.
func (p *Parser) atWord(word string) bool {
	return p.at(token.Label) && p.toks[p.index].Span.Text(p.text) == word
}

// curSpan is the span of the current token, or (eof, eof+1) past the end.
func (p *Parser) curSpan() source.Span {
	if p.atEOF() {
		return p.eof.Span()
	}
	return p.toks[p.index].Span
}

// advance: съедает текущий токен и возвращает его span.
func (p *Parser) advance() source.Span {
	sp := p.curSpan()
	if !p.atEOF() {
		p.index++
	}
	return sp
}

// expect съедает токен вида k или возвращает ExpectedToken без продвижения.
func (p *Parser) expect(k token.Kind) (source.Span, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return source.Span{}, &Error{Kind: ExpectedToken, Token: k, Span: p.curSpan()}
}

// eat съедает необязательный токен.
func (p *Parser) eat(k token.Kind) *source.Span {
	if !p.at(k) {
		return nil
	}
	sp := p.advance()
	return &sp
}

func (p *Parser) expected(what string) *Error {
	return &Error{Kind: Expected, What: what, Span: p.curSpan()}
}

// further reports whether a got strictly further into the file than b.
func further(a, b error) bool {
	ea, okA := a.(*Error)
	eb, okB := b.(*Error)
	if !okA || !okB {
		return false
	}
	return ea.Span.Start > eb.Span.Start
}
