package lexer

import (
	"ferrite/internal/token"
)

// scanWord reads the maximal run of word characters and classifies it:
// keyword, lone `_`, all-digit Integer, or Label.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if !isWordRune(r) {
			break
		}
		lx.cursor.BumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	word := sp.Text(lx.cursor.Src)

	kind := token.Label
	switch {
	case word == "_":
		kind = token.Underscore
	case isAllDigits(word):
		kind = token.Integer
	default:
		if kw, ok := token.LookupKeyword(word); ok {
			kind = kw
		}
	}
	return token.Token{Kind: kind, Span: sp}
}
