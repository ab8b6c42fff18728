package lexer

import (
	"ferrite/internal/token"
)

// scanSymbol reads one symbol token. Two-byte forms win over their
// one-byte prefixes: != == => -> :: && ||.
func (lx *Lexer) scanSymbol() (token.Token, error) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, error) {
		return token.Token{Kind: k, Span: lx.cursor.SpanFrom(start)}, nil
	}

	switch {
	case lx.try2('!', '='):
		return emit(token.NotEquals)
	case lx.try2('=', '='):
		return emit(token.Equals)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	case lx.try2('-', '>'):
		return emit(token.ThinArrow)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('&', '&'):
		return emit(token.And)
	case lx.try2('|', '|'):
		return emit(token.Or)
	}

	// односимвольные
	pos := lx.cursor.Pos()
	ch := lx.cursor.Bump()
	switch ch {
	case '&':
		return emit(token.Ampersand)
	case '(':
		return emit(token.OpenParen)
	case ')':
		return emit(token.CloseParen)
	case '*':
		return emit(token.Star)
	case '+':
		return emit(token.Plus)
	case ',':
		return emit(token.Comma)
	case '-':
		return emit(token.Minus)
	case '.':
		return emit(token.Dot)
	case '/':
		return emit(token.ForwardSlash)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '=':
		return emit(token.Set)
	case '{':
		return emit(token.OpenCurly)
	case '|':
		return emit(token.Bar)
	case '}':
		return emit(token.CloseCurly)
	default:
		// '!' и '>' сами по себе токенами не являются
		return token.Token{}, &Error{Kind: UnrecognizedSymbol, Pos: pos, Char: rune(ch)}
	}
}

// try2 съедает два байта, если они совпадают.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
