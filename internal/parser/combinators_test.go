package parser

import (
	"testing"

	"ferrite/internal/cst"
	"ferrite/internal/token"
)

func labelItem(p *Parser) func() (string, error) {
	return func() (string, error) {
		sp, err := p.expect(token.Label)
		if err != nil {
			return "", err
		}
		return sp.Text(p.text), nil
	}
}

func TestManySeparatedTrailing(t *testing.T) {
	tests := []struct {
		input  string
		items  int
		seps   int
		stopAt int
	}{
		{"", 0, 0, 0},
		{"a", 1, 0, 1},
		{"a, b", 2, 1, 3},
		{"a, b,", 2, 2, 4},
		{"a, b, )", 2, 2, 4},
		{") a", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := newTestParser(t, tt.input)
			items, seps, err := manyCommaSeparated(p, labelItem(p))
			if err != nil {
				t.Fatal(err)
			}
			if len(items) != tt.items || len(seps) != tt.seps || p.index != tt.stopAt {
				t.Fatalf("items=%v seps=%d index=%d", items, len(seps), p.index)
			}
		})
	}
}

func TestManyPropagatesCommittedError(t *testing.T) {
	p := newTestParser(t, "a: b: ;")
	pair := func() (string, error) {
		name, err := labelItem(p)()
		if err != nil {
			return "", err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return "", err
		}
		return name, nil
	}
	got, err := many(p, pair)
	if err != nil || len(got) != 2 {
		t.Fatalf("many = %v, %v", got, err)
	}

	p = newTestParser(t, "a: b c")
	if _, err := many(p, pair); err == nil {
		t.Fatal("expected committed error from `b c`")
	}
}

func TestMaybeAndOneOf(t *testing.T) {
	p := newTestParser(t, "; x")
	if _, ok, err := maybe(p, labelItem(p)); ok || err != nil || p.index != 0 {
		t.Fatalf("maybe on mismatch: ok=%v err=%v index=%d", ok, err, p.index)
	}

	semi := func() (string, error) {
		_, err := p.expect(token.Semicolon)
		return ";", err
	}
	v, err := oneOf(p, "thing", labelItem(p), semi)
	if err != nil || v != ";" || p.index != 1 {
		t.Fatalf("oneOf = %q, %v, index %d", v, err, p.index)
	}
	v, err = oneOf(p, "thing", semi, labelItem(p))
	if err != nil || v != "x" {
		t.Fatalf("oneOf second = %q, %v", v, err)
	}
	_, err = oneOf(p, "thing", semi)
	perr, ok := err.(*Error)
	if !ok || perr.Kind != Expected || perr.What != "thing" {
		t.Fatalf("oneOf at eof = %v", err)
	}
}

// Продукция, упавшая на первом же токене, не двигает курсор.
func TestRecoverableFailuresDoNotAdvance(t *testing.T) {
	cases := []struct {
		input string
		run   func(p *Parser) error
	}{
		{")", func(p *Parser) error { _, err := p.parseType(); return err }},
		{"=>", func(p *Parser) error { _, err := p.parsePattern(); return err }},
		{"}", func(p *Parser) error { _, err := p.parseExpr(); return err }},
		{"let", func(p *Parser) error { _, err := p.parseBasicExpr(); return err }},
		{"}", func(p *Parser) error { _, err := p.parseStmt(); return err }},
		{"x", func(p *Parser) error { _, err := p.parseTopLevel(); return err }},
		{"x", func(p *Parser) error { _, err := p.parseBlock(); return err }},
		{"", func(p *Parser) error { _, err := p.parseField(); return err }},
		{"(", func(p *Parser) error { _, err := p.parseParam(); return err }},
	}
	for _, tc := range cases {
		p := newTestParser(t, tc.input)
		if err := tc.run(p); err == nil {
			t.Fatalf("%q: expected failure", tc.input)
		}
		if p.index != 0 {
			t.Fatalf("%q: recoverable failure advanced to %d", tc.input, p.index)
		}
	}
}

func TestParserEntryPoint(t *testing.T) {
	src := "fn a() {} fn b() {}"
	toks, eof := mustLex(t, src)
	items, err := Parse(src, toks, eof)
	if err != nil || len(items) != 2 {
		t.Fatalf("Parse = %d items, %v", len(items), err)
	}
	if _, ok := items[1].Item.(*cst.Function); !ok {
		t.Fatalf("second item = %T", items[1].Item)
	}
}
