package ast

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"ferrite/internal/source"
)

// SymbolID is a stable 64-bit hash of a label's bytes. Equal bytes always
// give equal ids, across files and runs.
type SymbolID uint64

// SymbolIDOf hashes the label text with xxHash64.
func SymbolIDOf(label string) SymbolID {
	return SymbolID(xxhash.Sum64String(label))
}

func (id SymbolID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 16)
}

// Symbol is a label occurrence: where it is and what it names.
type Symbol struct {
	Span source.Span
	ID   SymbolID
}

// NewSymbol builds the symbol for the label at sp in text.
func NewSymbol(text string, sp source.Span) Symbol {
	return Symbol{Span: sp, ID: SymbolIDOf(sp.Text(text))}
}

// LetName is the binding of a let statement: a symbol, or no symbol for `_`.
type LetName struct {
	Span  source.Span
	ID    SymbolID
	Named bool
}

// Symbol returns the bound symbol, if any.
func (n LetName) Symbol() (Symbol, bool) {
	if !n.Named {
		return Symbol{}, false
	}
	return Symbol{Span: n.Span, ID: n.ID}, true
}
