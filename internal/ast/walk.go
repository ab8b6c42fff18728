package ast

import (
	"ferrite/internal/source"
)

type NodeKind uint8

const (
	NodeFile NodeKind = iota + 1
	NodeItem
	NodeType
	NodePattern
	NodeExpr
	NodeStmt
	NodeBlock
	NodeSymbol
)

// Node is a handle to any tree node; ID is interpreted according to Kind.
// Symbols carry their span inline since they are not arena-allocated.
type Node struct {
	Kind NodeKind
	ID   uint32
	Sym  Symbol
}

func FileNode(id FileID) Node       { return Node{Kind: NodeFile, ID: uint32(id)} }
func ItemNode(id ItemID) Node       { return Node{Kind: NodeItem, ID: uint32(id)} }
func TypeNode(id TypeID) Node       { return Node{Kind: NodeType, ID: uint32(id)} }
func PatternNode(id PatternID) Node { return Node{Kind: NodePattern, ID: uint32(id)} }
func ExprNode(id ExprID) Node       { return Node{Kind: NodeExpr, ID: uint32(id)} }
func StmtNode(id StmtID) Node       { return Node{Kind: NodeStmt, ID: uint32(id)} }
func BlockNode(id BlockID) Node     { return Node{Kind: NodeBlock, ID: uint32(id)} }
func SymbolNode(s Symbol) Node      { return Node{Kind: NodeSymbol, Sym: s} }

// Span returns the node's span, or an empty span for unknown ids.
func (b *Builder) Span(n Node) source.Span {
	switch n.Kind {
	case NodeFile:
		if f := b.Files.Get(FileID(n.ID)); f != nil {
			return f.Span
		}
	case NodeItem:
		if it := b.Items.Get(ItemID(n.ID)); it != nil {
			return it.Span
		}
	case NodeType:
		if t := b.Types.Get(TypeID(n.ID)); t != nil {
			return t.Span
		}
	case NodePattern:
		if p := b.Patterns.Get(PatternID(n.ID)); p != nil {
			return p.Span
		}
	case NodeExpr:
		if e := b.Exprs.Get(ExprID(n.ID)); e != nil {
			return e.Span
		}
	case NodeStmt:
		if s := b.Stmts.Get(StmtID(n.ID)); s != nil {
			return s.Span
		}
	case NodeBlock:
		if bl := b.Blocks.Get(BlockID(n.ID)); bl != nil {
			return bl.Span
		}
	case NodeSymbol:
		return n.Sym.Span
	}
	return source.Span{}
}

// Children lists the direct children of n in source order.
func (b *Builder) Children(n Node) []Node {
	var out []Node
	addType := func(id TypeID) {
		if id.IsValid() {
			out = append(out, TypeNode(id))
		}
	}
	addExpr := func(id ExprID) {
		if id.IsValid() {
			out = append(out, ExprNode(id))
		}
	}
	addBlock := func(id BlockID) {
		if id.IsValid() {
			out = append(out, BlockNode(id))
		}
	}
	addPath := func(p *Path) {
		if p == nil {
			return
		}
		for _, s := range p.Segments {
			out = append(out, SymbolNode(s))
		}
	}

	switch n.Kind {
	case NodeFile:
		if f := b.Files.Get(FileID(n.ID)); f != nil {
			for _, id := range f.Items {
				out = append(out, ItemNode(id))
			}
		}
	case NodeItem:
		out = b.itemChildren(ItemID(n.ID), out, addType, addBlock, addPath)
	case NodeType:
		if t := b.Types.Get(TypeID(n.ID)); t != nil {
			switch t.Kind {
			case TypeNamed:
				out = append(out, SymbolNode(t.Name))
			case TypeTuple:
				for _, e := range t.Elems {
					addType(e)
				}
			default:
				addType(t.Inner)
			}
		}
	case NodePattern:
		if p := b.Patterns.Get(PatternID(n.ID)); p != nil {
			if p.Kind == PatNamed || p.Kind == PatNamedTuple {
				out = append(out, SymbolNode(p.Name))
			}
			for _, e := range p.Elems {
				out = append(out, PatternNode(e))
			}
		}
	case NodeExpr:
		out = b.exprChildren(ExprID(n.ID), out, addExpr, addBlock)
	case NodeStmt:
		st := b.Stmts.Get(StmtID(n.ID))
		if st == nil {
			break
		}
		switch st.Kind {
		case StmtExpr:
			addExpr(st.Expr)
		case StmtLet:
			let, _ := b.Stmts.Let(StmtID(n.ID))
			if sym, ok := let.Name.Symbol(); ok {
				out = append(out, SymbolNode(sym))
			}
			addType(let.Type)
			addExpr(let.Value)
		}
	case NodeBlock:
		if bl := b.Blocks.Get(BlockID(n.ID)); bl != nil {
			for _, id := range bl.Stmts {
				out = append(out, StmtNode(id))
			}
			addExpr(bl.Tail)
		}
	}
	return out
}

func (b *Builder) itemChildren(id ItemID, out []Node, addType func(TypeID), addBlock func(BlockID), addPath func(*Path)) []Node {
	it := b.Items.Get(id)
	if it == nil {
		return out
	}
	addPath(it.Vis.Path)
	switch it.Kind {
	case ItemFn:
		fn, _ := b.Items.Fn(id)
		out = append(out, SymbolNode(fn.Name))
		for _, p := range fn.Params {
			out = append(out, SymbolNode(p.Name))
			addType(p.Type)
		}
		addType(fn.Result)
		addBlock(fn.Body)
	case ItemStruct:
		st, _ := b.Items.Struct(id)
		out = append(out, SymbolNode(st.Name))
		for _, f := range st.Fields {
			addPath(f.Vis.Path)
			out = append(out, SymbolNode(f.Name))
			addType(f.Type)
		}
	case ItemEnum:
		en, _ := b.Items.Enum(id)
		out = append(out, SymbolNode(en.Name))
		for _, v := range en.Variants {
			out = append(out, SymbolNode(v.Name))
			for _, t := range v.Fields {
				addType(t)
			}
		}
	case ItemMod:
		m, _ := b.Items.Mod(id)
		out = append(out, SymbolNode(m.Name))
	case ItemUse:
		u, _ := b.Items.Use(id)
		addPath(&u.Module)
		out = append(out, SymbolNode(u.Item))
	}
	return out
}

func (b *Builder) exprChildren(id ExprID, out []Node, addExpr func(ExprID), addBlock func(BlockID)) []Node {
	e := b.Exprs.Get(id)
	if e == nil {
		return out
	}
	switch e.Kind {
	case ExprVariable:
		v, _ := b.Exprs.Variable(id)
		out = append(out, SymbolNode(v.Name))
	case ExprTuple:
		t, _ := b.Exprs.Tuple(id)
		for _, el := range t.Elems {
			addExpr(el)
		}
	case ExprBlock:
		bl, _ := b.Exprs.Block(id)
		addBlock(bl.Block)
	case ExprIf:
		data, _ := b.Exprs.If(id)
		addExpr(data.Cond)
		addBlock(data.Then)
		addExpr(data.Else)
	case ExprWhile:
		data, _ := b.Exprs.While(id)
		addExpr(data.Cond)
		addBlock(data.Body)
	case ExprLoop:
		data, _ := b.Exprs.Loop(id)
		addBlock(data.Body)
	case ExprFor:
		data, _ := b.Exprs.For(id)
		out = append(out, SymbolNode(data.Binding))
		addExpr(data.Iter)
		addBlock(data.Body)
	case ExprMatch:
		data, _ := b.Exprs.Match(id)
		addExpr(data.Scrutinee)
		for _, arm := range data.Arms {
			out = append(out, PatternNode(arm.Pattern))
			addExpr(arm.Value)
		}
	case ExprBinary:
		data, _ := b.Exprs.Binary(id)
		addExpr(data.Left)
		addExpr(data.Right)
	case ExprCall:
		data, _ := b.Exprs.Call(id)
		addExpr(data.Callee)
		for _, a := range data.Args {
			addExpr(a)
		}
	case ExprMember:
		data, _ := b.Exprs.Member(id)
		addExpr(data.Receiver)
		out = append(out, SymbolNode(data.Member))
	case ExprMemberCall:
		data, _ := b.Exprs.MemberCall(id)
		addExpr(data.Access)
		for _, a := range data.Args {
			addExpr(a)
		}
	}
	return out
}

// Walk visits n and its descendants depth-first; returning false from fn
// skips the node's children.
func (b *Builder) Walk(n Node, fn func(parent, node Node) bool) {
	b.walk(Node{}, n, fn)
}

func (b *Builder) walk(parent, n Node, fn func(parent, node Node) bool) {
	if !fn(parent, n) {
		return
	}
	for _, c := range b.Children(n) {
		b.walk(n, c, fn)
	}
}
