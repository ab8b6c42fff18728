package ast

import (
	"ferrite/internal/source"
)

// File is the root of one lowered source file.
type File struct {
	Source source.FileID
	Span   source.Span
	Items  []ItemID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{Arena: NewArena[File](capHint)}
}

func (f *Files) New(src source.FileID, sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{Source: src, Span: sp}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}

type Hints struct{ Files, Items, Types, Patterns, Exprs, Stmts, Blocks uint }

// Builder owns every arena of a tree; dropping it releases all nodes at once.
type Builder struct {
	Files    *Files
	Items    *Items
	Types    *Types
	Patterns *Patterns
	Exprs    *Exprs
	Stmts    *Stmts
	Blocks   *Blocks
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1
	}
	return &Builder{
		Files:    NewFiles(hints.Files),
		Items:    NewItems(hints.Items),
		Types:    NewTypes(hints.Types),
		Patterns: NewPatterns(hints.Patterns),
		Exprs:    NewExprs(hints.Exprs),
		Stmts:    NewStmts(hints.Stmts),
		Blocks:   NewBlocks(hints.Blocks),
	}
}

// HintsForTokens scales arena capacities to a token count.
func HintsForTokens(n int) Hints {
	if n <= 0 {
		return Hints{}
	}
	u := uint(n)
	return Hints{Items: u/32 + 1, Types: u/8 + 1, Patterns: u/32 + 1, Exprs: u/2 + 1, Stmts: u/6 + 1, Blocks: u/16 + 1}
}

func (b *Builder) NewFile(src source.FileID, sp source.Span) FileID {
	return b.Files.New(src, sp)
}

func (b *Builder) PushItem(file FileID, item ItemID) {
	f := b.Files.Get(file)
	f.Items = append(f.Items, item)
	f.Span = f.Span.Cover(b.Items.Get(item).Span)
}
