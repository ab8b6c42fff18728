package lexer

import (
	"fmt"

	"ferrite/internal/source"
)

// ErrorKind classifies lexical errors.
type ErrorKind uint8

const (
	// UnterminatedBlockComment: a `/*` without its matching `*/`. Pos is the outermost opener.
	UnterminatedBlockComment ErrorKind = iota + 1
	// UnrecognizedControlChar: a C0 control character that is not whitespace.
	UnrecognizedControlChar
	// UnrecognizedSymbol: a symbol character with no token of its own (lone `!` or `>`).
	UnrecognizedSymbol
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedBlockComment:
		return "UnterminatedBlockComment"
	case UnrecognizedControlChar:
		return "UnrecognizedControlChar"
	case UnrecognizedSymbol:
		return "UnrecognizedSymbol"
	default:
		return "ErrorKind(?)"
	}
}

// Error is the single error a failed ReadTokens returns.
type Error struct {
	Kind ErrorKind
	Pos  source.Pos
	Char rune // offending character; zero for UnterminatedBlockComment
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnterminatedBlockComment:
		return fmt.Sprintf("unterminated block comment starting at %s", e.Pos)
	case UnrecognizedControlChar:
		return fmt.Sprintf("unrecognized control character %U at %s", e.Char, e.Pos)
	case UnrecognizedSymbol:
		return fmt.Sprintf("unrecognized symbol %q at %s", e.Char, e.Pos)
	default:
		return fmt.Sprintf("lex error at %s", e.Pos)
	}
}

// Span is the one-byte span at the error position.
func (e *Error) Span() source.Span {
	return e.Pos.Span()
}
