package cst

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Children returns the direct child nodes of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *TopLevel:
		if !IsPrivate(n.Vis) {
			add(n.Vis)
		}
		add(n.Item)
	case *VisPath:
		add(n.Path)
	case *Function:
		for _, p := range n.Params {
			add(p)
		}
		if n.ReturnType != nil {
			add(n.ReturnType)
		}
		add(n.Body)
	case *Param:
		add(n.Type)
	case *Struct:
		for _, f := range n.Fields {
			add(f)
		}
	case *Field:
		if !IsPrivate(n.Vis) {
			add(n.Vis)
		}
		add(n.Type)
	case *Enum:
		for _, v := range n.Variants {
			add(v)
		}
	case *Variant:
		if n.Fields != nil {
			add(n.Fields)
		}
	case *Use:
		add(n.Path)

	case *TypeRef:
		add(n.Inner)
	case *TypeRefMut:
		add(n.Inner)
	case *TypePtrConst:
		add(n.Inner)
	case *TypePtrMut:
		add(n.Inner)
	case *TypeParen:
		add(n.Inner)
	case *TypeTuple:
		for _, e := range n.Elems {
			add(e)
		}

	case *PatParen:
		add(n.Inner)
	case *PatTuple:
		for _, e := range n.Elems {
			add(e)
		}
	case *PatNamedTuple:
		add(n.Inner)

	case *Block:
		for _, s := range n.Stmts {
			add(s)
		}
		if n.Tail != nil {
			add(n.Tail)
		}
	case *StmtExpr:
		add(n.Expr)
	case *StmtLet:
		if n.Type != nil {
			add(n.Type)
		}
		if n.Value != nil {
			add(n.Value)
		}

	case *ExprParen:
		add(n.Inner)
	case *ExprTuple:
		for _, e := range n.Elems {
			add(e)
		}
	case *ExprBlock:
		add(n.Block)
	case *ExprIf:
		add(n.If)
	case *IfChain:
		add(n.Cond)
		add(n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *ElseBranch:
		if n.ElseIf != nil {
			add(n.ElseIf)
		} else {
			add(n.Block)
		}
	case *ExprWhile:
		add(n.Cond)
		add(n.Body)
	case *ExprLoop:
		add(n.Body)
	case *ExprFor:
		add(n.Iter)
		add(n.Body)
	case *ExprMatch:
		add(n.Scrutinee)
		for _, a := range n.Arms {
			add(a)
		}
	case *MatchArm:
		add(n.Pattern)
		add(n.Value)
	case *ExprBinary:
		add(n.Left)
		add(n.Right)
	case *ExprCall:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
	case *ExprMember:
		add(n.Receiver)
	}
	return out
}
