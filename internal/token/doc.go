// Package token defines lexical token kinds for ferrite.
// Invariants:
//   - Token.Span covers exactly the bytes of the token; text is never copied.
//   - Keywords are case-sensitive; `in` is not a keyword and lexes as Label.
//   - Comments and whitespace produce no tokens.
package token
