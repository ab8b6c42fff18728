package lower

import (
	"fmt"

	"ferrite/internal/ast"
	"ferrite/internal/cst"
)

// Type lowers a type expression; `(T)` collapses to T.
func (l *Lowerer) Type(t cst.Type) ast.TypeID {
	switch ty := t.(type) {
	case *cst.TypeParen:
		return l.Type(ty.Inner)
	case *cst.TypeNamed:
		return l.b.Types.NewNamed(ty.Span(), l.symbol(ty.Name))
	case *cst.TypeRef:
		return l.b.Types.NewWrapped(ast.TypeRef, ty.Span(), l.Type(ty.Inner))
	case *cst.TypeRefMut:
		return l.b.Types.NewWrapped(ast.TypeRefMut, ty.Span(), l.Type(ty.Inner))
	case *cst.TypePtrConst:
		return l.b.Types.NewWrapped(ast.TypePtrConst, ty.Span(), l.Type(ty.Inner))
	case *cst.TypePtrMut:
		return l.b.Types.NewWrapped(ast.TypePtrMut, ty.Span(), l.Type(ty.Inner))
	case *cst.TypeTuple:
		elems := make([]ast.TypeID, 0, len(ty.Elems))
		for _, el := range ty.Elems {
			elems = append(elems, l.Type(el))
		}
		return l.b.Types.NewTuple(ty.Span(), elems)
	case *cst.TypeHole:
		return l.b.Types.NewHole(ty.Span())
	default:
		panic(fmt.Sprintf("lower: unexpected type %T", t))
	}
}

// Pattern lowers a match pattern; `(p)` collapses to p.
func (l *Lowerer) Pattern(p cst.Pattern) ast.PatternID {
	switch pat := p.(type) {
	case *cst.PatParen:
		return l.Pattern(pat.Inner)
	case *cst.PatNamed:
		return l.b.Patterns.New(ast.Pattern{Kind: ast.PatNamed, Span: pat.Span(), Name: l.symbol(pat.Name)})
	case *cst.PatHole:
		return l.b.Patterns.New(ast.Pattern{Kind: ast.PatHole, Span: pat.Span()})
	case *cst.PatTuple:
		return l.b.Patterns.New(ast.Pattern{Kind: ast.PatTuple, Span: pat.Span(), Elems: l.patterns(pat.Elems)})
	case *cst.PatNamedTuple:
		var elems []ast.PatternID
		switch inner := pat.Inner.(type) {
		case *cst.PatTuple:
			elems = l.patterns(inner.Elems)
		case *cst.PatParen:
			elems = []ast.PatternID{l.Pattern(inner.Inner)}
		default:
			elems = []ast.PatternID{l.Pattern(inner)}
		}
		return l.b.Patterns.New(ast.Pattern{
			Kind:  ast.PatNamedTuple,
			Span:  pat.Span(),
			Name:  l.symbol(pat.Name),
			Elems: elems,
		})
	default:
		panic(fmt.Sprintf("lower: unexpected pattern %T", p))
	}
}

func (l *Lowerer) patterns(ps []cst.Pattern) []ast.PatternID {
	out := make([]ast.PatternID, 0, len(ps))
	for _, p := range ps {
		out = append(out, l.Pattern(p))
	}
	return out
}
