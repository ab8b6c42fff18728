package lexer

import (
	"unicode"
)

// skipTrivia пропускает пробельные символы Unicode, `//` и вложенные `/* */`.
// Комментарии не сохраняются.
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if unicode.IsSpace(r) {
			lx.cursor.BumpRune()
			continue
		}
		b0, b1, ok := lx.cursor.Peek2()
		if !ok || b0 != '/' {
			return nil
		}
		switch b1 {
		case '/':
			lx.skipLineComment()
		case '*':
			if err := lx.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// skipLineComment съедает `//...` вместе с завершающим '\n'.
func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '\n' {
			return
		}
	}
}

// skipBlockComment поддерживает вложенность; незакрытый комментарий
// сообщается по позиции самого внешнего `/*`.
func (lx *Lexer) skipBlockComment() error {
	start := lx.cursor.Pos()
	lx.cursor.Bump()
	lx.cursor.Bump()
	depth := 1
	for depth > 0 {
		if lx.cursor.EOF() {
			return &Error{Kind: UnterminatedBlockComment, Pos: start}
		}
		b0, b1, ok := lx.cursor.Peek2()
		switch {
		case ok && b0 == '/' && b1 == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		case ok && b0 == '*' && b1 == '/':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		default:
			lx.cursor.BumpRune()
		}
	}
	return nil
}
