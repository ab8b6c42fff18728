package lexer

import (
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// Lexer turns one file's text into tokens. It holds no state beyond the cursor.
type Lexer struct {
	cursor Cursor
}

// New creates a lexer positioned at the start of src.
func New(file source.FileID, src string) *Lexer {
	return &Lexer{cursor: NewCursor(file, src)}
}

// Next возвращает следующий значимый токен. ok == false означает конец входа.
func (lx *Lexer) Next() (tok token.Token, ok bool, err error) {
	if err = lx.skipTrivia(); err != nil {
		return token.Token{}, false, err
	}
	if lx.cursor.EOF() {
		return token.Token{}, false, nil
	}

	r, _ := lx.cursor.PeekRune()
	switch {
	case r < 0x80 && isSymbolByte(byte(r)):
		tok, err = lx.scanSymbol()
		if err != nil {
			return token.Token{}, false, err
		}
	case isControl(r):
		return token.Token{}, false, &Error{Kind: UnrecognizedControlChar, Pos: lx.cursor.Pos(), Char: r}
	default:
		tok = lx.scanWord()
	}
	return tok, true, nil
}

// Pos returns the current position; after the last token it is the EOF position.
func (lx *Lexer) Pos() source.Pos {
	return lx.cursor.Pos()
}

// ReadTokens lexes the whole text. On success it returns every token in
// source order and the past-the-end position of the file.
func ReadTokens(file source.FileID, src string) ([]token.Token, source.Pos, error) {
	lx := New(file, src)
	// грубая оценка: в среднем токен на 4 байта
	toks := make([]token.Token, 0, len(src)/4+1)
	for {
		tok, ok, err := lx.Next()
		if err != nil {
			return nil, source.Pos{}, err
		}
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, lx.Pos(), nil
}
