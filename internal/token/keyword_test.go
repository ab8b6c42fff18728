package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	for lexeme, want := range keywords {
		got, ok := LookupKeyword(lexeme)
		if !ok || got != want {
			t.Fatalf("LookupKeyword(%q) = %v, %v; want %v", lexeme, got, ok, want)
		}
		if got.Symbol() != lexeme {
			t.Fatalf("%v.Symbol() = %q, want %q", got, got.Symbol(), lexeme)
		}
	}
	if len(keywords) != 17 {
		t.Fatalf("keyword table has %d entries, want 17", len(keywords))
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// регистр важен, `in` остаётся меткой
	notKw := []string{"Fn", "LET", "in", "return", "_", "self", "i32", ""}
	for _, s := range notKw {
		if k, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) = %v, want not a keyword", s, k)
		}
	}
}
