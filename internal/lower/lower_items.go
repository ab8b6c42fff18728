package lower

import (
	"fmt"

	"ferrite/internal/ast"
	"ferrite/internal/cst"
	"ferrite/internal/source"
)

// Item lowers a top-level declaration; its span includes the visibility.
func (l *Lowerer) Item(top *cst.TopLevel) ast.ItemID {
	span := top.Span()
	vis := l.visibility(top.Vis)
	switch it := top.Item.(type) {
	case *cst.Function:
		return l.b.Items.NewFn(span, vis, l.function(it))
	case *cst.Struct:
		data := ast.StructItem{
			Name:   l.symbol(it.Name),
			Fields: make([]ast.StructField, 0, len(it.Fields)),
		}
		for _, f := range it.Fields {
			data.Fields = append(data.Fields, ast.StructField{
				Span: f.Span(),
				Vis:  l.visibility(f.Vis),
				Name: l.symbol(f.Name),
				Type: l.Type(f.Type),
			})
		}
		return l.b.Items.NewStruct(span, vis, data)
	case *cst.Enum:
		data := ast.EnumItem{
			Name:     l.symbol(it.Name),
			Variants: make([]ast.EnumVariant, 0, len(it.Variants)),
		}
		for _, v := range it.Variants {
			data.Variants = append(data.Variants, ast.EnumVariant{
				Span:   v.Span(),
				Name:   l.symbol(v.Name),
				Fields: l.variantFields(v.Fields),
			})
		}
		return l.b.Items.NewEnum(span, vis, data)
	case *cst.ModFile:
		return l.b.Items.NewMod(span, vis, ast.ModItem{Name: l.symbol(it.Name)})
	case *cst.Use:
		return l.b.Items.NewUse(span, vis, l.use(it))
	default:
		panic(fmt.Sprintf("lower: unexpected item %T", top.Item))
	}
}

func (l *Lowerer) function(fn *cst.Function) ast.FnItem {
	data := ast.FnItem{
		Name:   l.symbol(fn.Name),
		Params: make([]ast.FnParam, 0, len(fn.Params)),
	}
	for _, p := range fn.Params {
		data.Params = append(data.Params, ast.FnParam{
			Span: p.Span(),
			Name: l.symbol(p.Name),
			Type: l.Type(p.Type),
		})
	}
	if fn.ReturnType != nil {
		data.Result = l.Type(fn.ReturnType)
	} else {
		data.Result = l.b.Types.NewTuple(fn.Body.Open, nil)
	}
	data.Body = l.Block(fn.Body)
	return data
}

// variantFields flattens `V(T)` and `V(T, U)` into a list of field types.
func (l *Lowerer) variantFields(fields cst.Type) []ast.TypeID {
	switch f := fields.(type) {
	case nil:
		return nil
	case *cst.TypeParen:
		return []ast.TypeID{l.Type(f.Inner)}
	case *cst.TypeTuple:
		out := make([]ast.TypeID, 0, len(f.Elems))
		for _, el := range f.Elems {
			out = append(out, l.Type(el))
		}
		return out
	default:
		return []ast.TypeID{l.Type(f)}
	}
}

// use splits `a::b::c` into module `a::b` and item `c`.
func (l *Lowerer) use(u *cst.Use) ast.UseItem {
	full := l.path(u.Path)
	n := len(full.Segments)
	module := ast.Path{Global: full.Global, Segments: full.Segments[:n-1]}
	start := full.Span
	if n > 1 {
		module.Span = start.To(full.Segments[n-2].Span)
	} else if u.Path.Leading != nil {
		module.Span = *u.Path.Leading
	} else {
		module.Span = source.SpanOf(start.File, start.Start, start.Start)
	}
	return ast.UseItem{Module: module, Item: full.Segments[n-1]}
}
