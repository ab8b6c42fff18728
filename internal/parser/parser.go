package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// Parser: состояние парсера на один файл.
//
// The cursor is a single index into toks. A production that fails without
// moving the index has failed recoverably and callers may try something
// else; once the index has moved the failure is committed.
type Parser struct {
	toks  []token.Token
	index int
	text  string
	eof   source.Pos
}

// New creates a parser over an already-lexed file.
func New(text string, toks []token.Token, eof source.Pos) *Parser {
	return &Parser{toks: toks, text: text, eof: eof}
}

// Parse builds the parse tree of a whole file or returns the first error.
func Parse(text string, toks []token.Token, eof source.Pos) ([]*cst.TopLevel, error) {
	return New(text, toks, eof).ParseFile()
}

// ParseFile parses top-level items until the tokens run out.
func (p *Parser) ParseFile() ([]*cst.TopLevel, error) {
	items, err := many(p, p.parseTopLevel)
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, p.expected("top level item")
	}
	return items, nil
}

// Index exposes the cursor for tests.
func (p *Parser) Index() int {
	return p.index
}
