package diag

import (
	"errors"
	"fmt"

	"ferrite/internal/lexer"
	"ferrite/internal/parser"
)

// FromError converts a lexer or parser error into a diagnostic. Other
// errors are reported as false.
func FromError(err error) (Diagnostic, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return fromLexError(lexErr), true
	}
	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return fromParseError(parseErr), true
	}
	return Diagnostic{}, false
}

// Emit reports err through r; unknown errors are reported as UnknownCode
// without a span.
func Emit(r Reporter, err error) {
	if err == nil || r == nil {
		return
	}
	d, ok := FromError(err)
	if !ok {
		d = NewError(UnknownCode, d.Primary, err.Error())
	}
	r.Report(d)
}

func fromLexError(e *lexer.Error) Diagnostic {
	sp := e.Span()
	switch e.Kind {
	case lexer.UnterminatedBlockComment:
		return NewError(LexUnterminatedBlockComment, sp, "unterminated block comment")
	case lexer.UnrecognizedControlChar:
		return NewError(LexUnrecognizedControlChar, sp, fmt.Sprintf("unrecognized control character %U", e.Char))
	case lexer.UnrecognizedSymbol:
		return NewError(LexUnrecognizedSymbol, sp, fmt.Sprintf("unrecognized symbol %q", e.Char))
	default:
		return NewError(UnknownCode, sp, e.Error())
	}
}

func fromParseError(e *parser.Error) Diagnostic {
	switch e.Kind {
	case parser.ExpectedToken:
		return NewError(SynExpectedToken, e.Span, e.Message())
	case parser.Expected:
		return NewError(SynExpected, e.Span, e.Message())
	case parser.IntegerOutOfRange:
		return NewError(SynIntegerOutOfRange, e.Span, e.Message())
	default:
		return NewError(UnknownCode, e.Span, e.Error())
	}
}
