package driver

import (
	"context"

	"ferrite/internal/ast"
	"ferrite/internal/cst"
	"ferrite/internal/diag"
	"ferrite/internal/observ"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	CST     []*cst.TopLevel
	// Builder is nil when lexing or parsing failed.
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
	Timer   *observ.Timer
}

// Parse loads path and runs lex, parse and lower over it.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(ctx, fs, fs.Get(fileID), opts)
}

// ParseVirtual runs the front end over in-memory content.
func ParseVirtual(ctx context.Context, name string, content []byte, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(ctx, fs, fs.Get(fileID), opts)
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*ParseResult, error) {
	out, err := runFile(ctx, file, opts, StageLower)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tokens:  out.Tokens,
		CST:     out.CST,
		Builder: out.Builder,
		FileID:  out.FileID,
		Bag:     out.Bag,
		Timer:   out.Timer,
	}, nil
}
