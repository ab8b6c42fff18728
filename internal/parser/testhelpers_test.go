package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"ferrite/internal/cst"
	"ferrite/internal/lexer"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

func newTestParser(t *testing.T, src string) *Parser {
	t.Helper()
	toks, eof := mustLex(t, src)
	return New(src, toks, eof)
}

func parseExprString(t *testing.T, src string) cst.Expr {
	t.Helper()
	p := newTestParser(t, src)
	e, err := p.parseExpr()
	if err != nil {
		t.Fatalf("parseExpr(%q): %v", src, err)
	}
	if !p.atEOF() {
		t.Fatalf("parseExpr(%q) stopped at token %d", src, p.index)
	}
	return e
}

func parseFileString(t *testing.T, src string) []*cst.TopLevel {
	t.Helper()
	toks, eof := mustLex(t, src)
	items, err := Parse(src, toks, eof)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return items
}

func mustLex(t *testing.T, src string) ([]token.Token, source.Pos) {
	t.Helper()
	toks, eof, err := lexer.ReadTokens(0, src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	return toks, eof
}

func expectParseError(t *testing.T, src string, kind ErrorKind, start, end uint32) *Error {
	t.Helper()
	toks, eof := mustLex(t, src)
	_, err := Parse(src, toks, eof)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Parse(%q): expected *parser.Error, got %v", src, err)
	}
	if perr.Kind != kind || perr.Span.Start != start || perr.Span.End != end {
		t.Fatalf("Parse(%q): got %v %q at %d-%d, want %v at %d-%d",
			src, perr.Kind, perr.Message(), perr.Span.Start, perr.Span.End, kind, start, end)
	}
	return perr
}

// sexpr рендерит выражение CST в компактную скобочную форму.
func sexpr(src string, e cst.Expr) string {
	switch e := e.(type) {
	case *cst.ExprVariable:
		return e.Name.Text(src)
	case *cst.ExprInteger:
		return e.Value.String()
	case *cst.ExprBool:
		return fmt.Sprint(e.Value)
	case *cst.ExprParen:
		return "paren(" + sexpr(src, e.Inner) + ")"
	case *cst.ExprTuple:
		return "tuple(" + joinExprs(src, e.Elems) + ")"
	case *cst.ExprBinary:
		return "(" + sexpr(src, e.Left) + " " + e.Op.String() + " " + sexpr(src, e.Right) + ")"
	case *cst.ExprMember:
		return sexpr(src, e.Receiver) + "." + e.Member.Text(src)
	case *cst.ExprCall:
		return "call(" + sexpr(src, e.Callee) + "; " + joinExprs(src, e.Args) + ")"
	case *cst.ExprBlock:
		return "block"
	case *cst.ExprIf:
		return "if"
	case *cst.ExprMatch:
		return "match"
	default:
		return fmt.Sprintf("%T", e)
	}
}

func joinExprs(src string, es []cst.Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = sexpr(src, e)
	}
	return strings.Join(parts, ", ")
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
