package driver

import (
	"context"

	"ferrite/internal/diag"
	"ferrite/internal/observ"
	"ferrite/internal/source"
	"ferrite/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	EOF     source.Pos
	Bag     *diag.Bag
	Timer   *observ.Timer
}

// Tokenize loads path and lexes it. A lexer error ends up in Bag and leaves
// Tokens nil; the returned error covers I/O and cancellation only.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	out, err := runFile(ctx, file, opts, StageLex)
	if err != nil {
		return nil, err
	}
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  out.Tokens,
		EOF:     out.EOF,
		Bag:     out.Bag,
		Timer:   out.Timer,
	}, nil
}
