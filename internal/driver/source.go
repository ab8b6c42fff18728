// Package driver runs the front end over files and directories: loading,
// lexing, parsing and lowering, with diagnostics, timings and progress.
package driver

import (
	"ferrite/internal/ast"
	"ferrite/internal/cst"
	"ferrite/internal/lexer"
	"ferrite/internal/lower"
	"ferrite/internal/parser"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

// SourceTree is everything the front end builds for one file.
type SourceTree struct {
	Tokens  []token.Token
	EOF     source.Pos
	CST     []*cst.TopLevel
	Builder *ast.Builder
	File    ast.FileID
}

// ParseSource lexes, parses and lowers text. The error, if any, is a
// *lexer.Error or *parser.Error; no partial tree is returned.
func ParseSource(file source.FileID, text string) (*SourceTree, error) {
	toks, eof, err := lexer.ReadTokens(file, text)
	if err != nil {
		return nil, err
	}
	return parseTokens(file, text, toks, eof)
}

func parseTokens(file source.FileID, text string, toks []token.Token, eof source.Pos) (*SourceTree, error) {
	items, err := parser.Parse(text, toks, eof)
	if err != nil {
		return nil, err
	}
	b := ast.NewBuilder(ast.HintsForTokens(len(toks)))
	return &SourceTree{
		Tokens:  toks,
		EOF:     eof,
		CST:     items,
		Builder: b,
		File:    lower.File(b, text, file, items),
	}, nil
}
