package token_test

import (
	"testing"

	"ferrite/internal/source"
	"ferrite/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.Integer, token.KwTrue, token.KwFalse} {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Label, token.KwLet, token.Plus, token.OpenParen} {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestKindClassification(t *testing.T) {
	for k := token.NotEquals; k <= token.Integer; k++ {
		if k.String() == "" || k.String() == "Kind(?)" {
			t.Fatalf("kind %d has no name", k)
		}
		if k.IsKeyword() && k.IsSymbol() {
			t.Fatalf("%v is both keyword and symbol", k)
		}
		if (k.IsKeyword() || k.IsSymbol()) && k.Symbol() == "" {
			t.Fatalf("%v has no source text", k)
		}
	}
	if !tok(token.Label).IsLabel() || tok(token.Integer).IsLabel() {
		t.Fatalf("IsLabel misclassifies")
	}
}

func TestDescribe(t *testing.T) {
	cases := map[token.Kind]string{
		token.CloseParen: "`)`",
		token.ColonColon: "`::`",
		token.KwFn:       "`fn`",
		token.Label:      "identifier",
		token.Integer:    "integer",
	}
	for k, want := range cases {
		if got := k.Describe(); got != want {
			t.Errorf("%v.Describe() = %q, want %q", k, got, want)
		}
	}
}

func TestTokenText(t *testing.T) {
	src := "let x = 1;"
	tk := token.Token{Kind: token.Label, Span: source.Span{Start: 4, End: 5}}
	if got := tk.Text(src); got != "x" {
		t.Fatalf("Text = %q", got)
	}
}
