package token

import (
	"ferrite/internal/source"
)

// Token is a kind plus the exact byte span it covers. Text is recovered
// from the file content on demand.
type Token struct {
	Kind Kind        `msgpack:"k"`
	Span source.Span `msgpack:"s"`
}

// Text returns the source bytes covered by the token.
func (t Token) Text(src string) string {
	return t.Span.Text(src)
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsLabel reports whether the token is a label (identifier).
func (t Token) IsLabel() bool { return t.Kind == Label }

// IsLiteral reports whether the token is an integer or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Integer, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}
