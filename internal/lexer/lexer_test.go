package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"ferrite/internal/lexer"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

type want struct {
	kind       token.Kind
	start, end uint32
}

func lex(t *testing.T, src string) ([]token.Token, source.Pos) {
	t.Helper()
	toks, eof, err := lexer.ReadTokens(0, src)
	if err != nil {
		t.Fatalf("ReadTokens(%q): unexpected error: %v", src, err)
	}
	return toks, eof
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}

func expectKinds(t *testing.T, src string, ks ...token.Kind) {
	t.Helper()
	toks, _ := lex(t, src)
	got := kinds(toks)
	if len(got) != len(ks) {
		t.Fatalf("%q: got %v, want %v", src, got, ks)
	}
	for i := range ks {
		if got[i] != ks[i] {
			t.Fatalf("%q: token %d = %v, want %v (all: %v)", src, i, got[i], ks[i], got)
		}
	}
}

func TestLetStatementSpans(t *testing.T) {
	src := "let x = 1 + 22;"
	toks, eof := lex(t, src)
	wants := []want{
		{token.KwLet, 0, 3},
		{token.Label, 4, 5},
		{token.Set, 6, 7},
		{token.Integer, 8, 9},
		{token.Plus, 10, 11},
		{token.Integer, 12, 14},
		{token.Semicolon, 14, 15},
	}
	if len(toks) != len(wants) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wants), kinds(toks))
	}
	for i, w := range wants {
		tk := toks[i]
		if tk.Kind != w.kind || tk.Span.Start != w.start || tk.Span.End != w.end {
			t.Errorf("token %d = %v %v, want %v %d-%d", i, tk.Kind, tk.Span, w.kind, w.start, w.end)
		}
	}
	if eof.Index != 15 {
		t.Errorf("eof = %d, want 15", eof.Index)
	}
}

func TestNestedBlockComment(t *testing.T) {
	src := "let/* /* inner */ */x"
	toks, eof := lex(t, src)
	if len(toks) != 2 {
		t.Fatalf("got %v", kinds(toks))
	}
	if toks[0].Kind != token.KwLet || toks[0].Span != (source.Span{Start: 0, End: 3}) {
		t.Errorf("first token = %v %v", toks[0].Kind, toks[0].Span)
	}
	x := strings.IndexByte(src, 'x')
	if toks[1].Kind != token.Label || int(toks[1].Span.Start) != x || int(toks[1].Span.End) != x+1 {
		t.Errorf("second token = %v %v", toks[1].Kind, toks[1].Span)
	}
	if int(eof.Index) != len(src) {
		t.Errorf("eof = %d, want %d", eof.Index, len(src))
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kind  lexer.ErrorKind
		index uint32
	}{
		{"unterminated nested comment", "let/* /* inner */ x", lexer.UnterminatedBlockComment, 3},
		{"unterminated simple comment", "a /* b", lexer.UnterminatedBlockComment, 2},
		{"bell character", "let \x07x", lexer.UnrecognizedControlChar, 4},
		{"nul after word", "ab\x00", lexer.UnrecognizedControlChar, 2},
		{"lone bang", "a ! b", lexer.UnrecognizedSymbol, 2},
		{"lone greater", "a > b", lexer.UnrecognizedSymbol, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := lexer.ReadTokens(3, tt.src)
			var lerr *lexer.Error
			if !errors.As(err, &lerr) {
				t.Fatalf("expected *lexer.Error, got %v", err)
			}
			if lerr.Kind != tt.kind || lerr.Pos.Index != tt.index || lerr.Pos.File != 3 {
				t.Fatalf("got %v at %v, want %v at %d", lerr.Kind, lerr.Pos, tt.kind, tt.index)
			}
			if lerr.Error() == "" {
				t.Fatalf("empty error message")
			}
		})
	}
}

func TestSymbolsMaximalMunch(t *testing.T) {
	expectKinds(t, "!= == => -> :: && ||",
		token.NotEquals, token.Equals, token.FatArrow, token.ThinArrow,
		token.ColonColon, token.And, token.Or)
	expectKinds(t, "&(),*+-./:;={|}",
		token.Ampersand, token.OpenParen, token.CloseParen, token.Comma, token.Star,
		token.Plus, token.Minus, token.Dot, token.ForwardSlash, token.Colon,
		token.Semicolon, token.Set, token.OpenCurly, token.Bar, token.CloseCurly)
	// `===` → `==` `=`, `:::` → `::` `:`
	expectKinds(t, "===", token.Equals, token.Set)
	expectKinds(t, ":::", token.ColonColon, token.Colon)
	expectKinds(t, "&&&", token.And, token.Ampersand)
	expectKinds(t, "a->b", token.Label, token.ThinArrow, token.Label)
}

func TestWords(t *testing.T) {
	expectKinds(t, "const else enum false fn for if let loop match mod mut pub struct true use while",
		token.KwConst, token.KwElse, token.KwEnum, token.KwFalse, token.KwFn, token.KwFor,
		token.KwIf, token.KwLet, token.KwLoop, token.KwMatch, token.KwMod, token.KwMut,
		token.KwPub, token.KwStruct, token.KwTrue, token.KwUse, token.KwWhile)
	expectKinds(t, "_ _x x_ __ in", token.Underscore, token.Label, token.Label, token.Label, token.Label)
	expectKinds(t, "0 123 1abc 12_3", token.Integer, token.Integer, token.Label, token.Label)
	expectKinds(t, "héllo wörld", token.Label, token.Label)
	expectKinds(t, "x.y(z)", token.Label, token.Dot, token.Label, token.OpenParen, token.Label, token.CloseParen)
	expectKinds(t, "a<b", token.Label)
}

func TestTriviaSkipped(t *testing.T) {
	expectKinds(t, "a // comment\nb", token.Label, token.Label)
	expectKinds(t, "a // comment at eof", token.Label)
	expectKinds(t, "a  \tb\r\n", token.Label, token.Label)
	expectKinds(t, "a/**/b/***/c", token.Label, token.Label, token.Label)
	expectKinds(t, "a / b", token.Label, token.ForwardSlash, token.Label)
	expectKinds(t, "", []token.Kind{}...)
}

func TestUnicodeSpansAreBytes(t *testing.T) {
	src := "é ü"
	toks, eof := lex(t, src)
	if toks[0].Span != (source.Span{Start: 0, End: 2}) || toks[1].Span != (source.Span{Start: 3, End: 5}) {
		t.Fatalf("spans = %v %v", toks[0].Span, toks[1].Span)
	}
	if eof.Index != 5 {
		t.Fatalf("eof = %d", eof.Index)
	}
}

// Токены идут по возрастанию, не пересекаются и лежат внутри файла.
func TestTokenOrdering(t *testing.T) {
	srcs := []string{
		"fn main() { let x: &mut i32 = 5; x.y(1, 2) }",
		"match a { X(b) => 1, _ => { c } }",
		"pub(crate::a) struct S { pub f: *const T, }",
		"/* x */ use ::a::b; // tail",
	}
	for _, src := range srcs {
		toks, eof := lex(t, src)
		var prev uint32
		for i, tk := range toks {
			if tk.Span.Start > tk.Span.End || tk.Span.End > eof.Index {
				t.Fatalf("%q: bad span %v", src, tk.Span)
			}
			if i > 0 && tk.Span.Start < prev {
				t.Fatalf("%q: token %d overlaps previous", src, i)
			}
			prev = tk.Span.End
		}
		if int(eof.Index) != len(src) {
			t.Fatalf("%q: eof %d", src, eof.Index)
		}
	}
}

// Дополнительные пробелы между токенами не меняют последовательность видов.
func TestWhitespaceInsensitivity(t *testing.T) {
	a, _ := lex(t, "fn f(a:T)->U{a.b(c)}")
	b, _ := lex(t, "fn  f ( a : T ) -> U {\n\ta . b ( c )\n}")
	ka, kb := kinds(a), kinds(b)
	if len(ka) != len(kb) {
		t.Fatalf("%v vs %v", ka, kb)
	}
	for i := range ka {
		if ka[i] != kb[i] {
			t.Fatalf("kind %d: %v vs %v", i, ka[i], kb[i])
		}
	}
}

func BenchmarkReadTokens(b *testing.B) {
	src := strings.Repeat("fn f(a: &mut T) -> U { let x = a.b(1) + 22; /* c */ x }\n", 200)
	b.SetBytes(int64(len(src)))
	for b.Loop() {
		if _, _, err := lexer.ReadTokens(0, src); err != nil {
			b.Fatal(err)
		}
	}
}
