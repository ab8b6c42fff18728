package lower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"ferrite/internal/ast"
	"ferrite/internal/lexer"
	"ferrite/internal/lower"
	"ferrite/internal/parser"
	"ferrite/internal/source"
	"ferrite/internal/testkit"
)

func lowerSource(t *testing.T, src string) (*ast.Builder, *ast.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fe", []byte(src))
	file := fs.Get(id)
	toks, eof, err := lexer.ReadTokens(id, file.Content)
	require.NoError(t, err)
	items, err := parser.Parse(file.Content, toks, eof)
	require.NoError(t, err)
	b := ast.NewBuilder(ast.HintsForTokens(len(toks)))
	fileID := lower.File(b, file.Content, id, items)
	require.NoError(t, testkit.CheckSpans(b, fileID, file))
	return b, b.Files.Get(fileID)
}

// bodyOf returns the body block of the only function in src.
func bodyOf(t *testing.T, src string) (*ast.Builder, *ast.Block) {
	t.Helper()
	b, f := lowerSource(t, src)
	require.Len(t, f.Items, 1)
	fn, ok := b.Items.Fn(f.Items[0])
	require.True(t, ok, "item is not a function")
	return b, b.Blocks.Get(fn.Body)
}

func stmtExprs(t *testing.T, b *ast.Builder, block *ast.Block) []ast.ExprID {
	t.Helper()
	out := make([]ast.ExprID, 0, len(block.Stmts))
	for _, id := range block.Stmts {
		st := b.Stmts.Get(id)
		require.Equal(t, ast.StmtExpr, st.Kind)
		out = append(out, st.Expr)
	}
	return out
}

func TestLowerParenCollapsesTuplesSurvive(t *testing.T) {
	b, block := bodyOf(t, "fn f() { (x); (x,); (); (x, y); }")
	exprs := stmtExprs(t, b, block)
	require.Len(t, exprs, 4)

	_, ok := b.Exprs.Variable(exprs[0])
	assert.True(t, ok, "(x) should collapse to a variable")

	for i, want := range map[int]int{1: 1, 2: 0, 3: 2} {
		tup, ok := b.Exprs.Tuple(exprs[i])
		require.True(t, ok, "expression %d should be a tuple", i)
		assert.Len(t, tup.Elems, want)
	}
}

func TestLowerNestedParensMatchBareExpr(t *testing.T) {
	b1, block1 := bodyOf(t, "fn f() { ((x)) }")
	b2, block2 := bodyOf(t, "fn f() { x }")

	v1, ok := b1.Exprs.Variable(block1.Tail)
	require.True(t, ok)
	v2, ok := b2.Exprs.Variable(block2.Tail)
	require.True(t, ok)
	assert.Equal(t, v2.Name.ID, v1.Name.ID)
	assert.Equal(t, uint32(11), v1.Name.Span.Start)
	assert.Equal(t, uint32(9), v2.Name.Span.Start)
}

func TestLowerMethodCall(t *testing.T) {
	b, block := bodyOf(t, "fn f() { a.b.c(1, 2) }")
	call, ok := b.Exprs.MemberCall(block.Tail)
	require.True(t, ok, "expected MemberCall, got %v", b.Exprs.Get(block.Tail).Kind)
	assert.Len(t, call.Args, 2)

	recv, ok := b.Exprs.Member(call.Receiver)
	require.True(t, ok, "receiver should be the member access a.b")
	inner, ok := b.Exprs.Variable(recv.Receiver)
	require.True(t, ok)
	assert.Equal(t, ast.SymbolIDOf("a"), inner.Name.ID)
	assert.Equal(t, ast.SymbolIDOf("b"), recv.Member.ID)
	assert.Equal(t, ast.SymbolIDOf("c"), call.Method.ID)

	access, ok := b.Exprs.Member(call.Access)
	require.True(t, ok)
	assert.Equal(t, call.Method, access.Member)

	lit, ok := b.Exprs.Integer(call.Args[1])
	require.True(t, ok)
	assert.Equal(t, uint128.From64(2), lit.Value)
}

func TestLowerParenthesisedCalleeStaysCall(t *testing.T) {
	b, block := bodyOf(t, "fn f() { (a.b)(c) }")
	call, ok := b.Exprs.Call(block.Tail)
	require.True(t, ok, "expected Call, got %v", b.Exprs.Get(block.Tail).Kind)
	_, ok = b.Exprs.Member(call.Callee)
	assert.True(t, ok)
}

func TestLowerDefaultReturnType(t *testing.T) {
	src := "fn main() {}"
	b, f := lowerSource(t, src)
	fn, ok := b.Items.Fn(f.Items[0])
	require.True(t, ok)
	result := b.Types.Get(fn.Result)
	require.NotNil(t, result)
	assert.Equal(t, ast.TypeTuple, result.Kind)
	assert.Empty(t, result.Elems)
	assert.Equal(t, uint32(10), result.Span.Start)
	assert.Equal(t, uint32(11), result.Span.End)
}

func TestLowerTypes(t *testing.T) {
	b, f := lowerSource(t, "fn f(a: &mut T, b: *const (u8), c: (i32,), d: &&mut _) -> *mut () {}")
	fn, _ := b.Items.Fn(f.Items[0])
	require.Len(t, fn.Params, 4)

	describe := func(id ast.TypeID) []ast.TypeKind {
		var kinds []ast.TypeKind
		for id.IsValid() {
			ty := b.Types.Get(id)
			kinds = append(kinds, ty.Kind)
			id = ty.Inner
		}
		return kinds
	}
	assert.Equal(t, []ast.TypeKind{ast.TypeRefMut, ast.TypeNamed}, describe(fn.Params[0].Type))
	assert.Equal(t, []ast.TypeKind{ast.TypePtrConst, ast.TypeNamed}, describe(fn.Params[1].Type))
	assert.Equal(t, []ast.TypeKind{ast.TypeTuple}, describe(fn.Params[2].Type))
	assert.Len(t, b.Types.Get(fn.Params[2].Type).Elems, 1)
	assert.Equal(t, []ast.TypeKind{ast.TypeRef, ast.TypeRefMut, ast.TypeHole}, describe(fn.Params[3].Type))
	assert.Equal(t, []ast.TypeKind{ast.TypePtrMut, ast.TypeTuple}, describe(fn.Result))
}

func TestLowerLetNames(t *testing.T) {
	src := "fn f() { let x: i32 = 1; let _ = 2; let y; }"
	b, block := bodyOf(t, src)
	require.Len(t, block.Stmts, 3)

	let, ok := b.Stmts.Let(block.Stmts[0])
	require.True(t, ok)
	sym, named := let.Name.Symbol()
	assert.True(t, named)
	assert.Equal(t, ast.SymbolIDOf("x"), sym.ID)
	assert.True(t, let.Type.IsValid())
	assert.True(t, let.Value.IsValid())

	hole, ok := b.Stmts.Let(block.Stmts[1])
	require.True(t, ok)
	_, named = hole.Name.Symbol()
	assert.False(t, named)
	assert.Equal(t, "_", hole.Name.Span.Text(src))
	assert.False(t, hole.Type.IsValid())

	bare, ok := b.Stmts.Let(block.Stmts[2])
	require.True(t, ok)
	assert.False(t, bare.Value.IsValid())
}

func TestLowerItemsAndVisibility(t *testing.T) {
	src := "pub(crate::a) struct S { pub x: i32, y: (u8) }\npub enum E { A, B(i32), C(i32, u8), D(()) }\nmod m;\nuse a::b::c;\nuse d;"
	b, f := lowerSource(t, src)
	require.Len(t, f.Items, 5)

	item := b.Items.Get(f.Items[0])
	assert.Equal(t, uint32(0), item.Span.Start)
	assert.Equal(t, ast.VisRestricted, item.Vis.Kind)
	require.NotNil(t, item.Vis.Path)
	require.Len(t, item.Vis.Path.Segments, 2)
	assert.Equal(t, ast.SymbolIDOf("crate"), item.Vis.Path.Segments[0].ID)

	st, ok := b.Items.Struct(f.Items[0])
	require.True(t, ok)
	require.Len(t, st.Fields, 2)
	assert.Equal(t, ast.VisPublic, st.Fields[0].Vis.Kind)
	assert.Equal(t, "pub x: i32", st.Fields[0].Span.Text(src))
	assert.Equal(t, ast.VisPrivate, st.Fields[1].Vis.Kind)
	assert.Equal(t, ast.TypeNamed, b.Types.Get(st.Fields[1].Type).Kind)

	en, ok := b.Items.Enum(f.Items[1])
	require.True(t, ok)
	var counts []int
	for _, v := range en.Variants {
		counts = append(counts, len(v.Fields))
	}
	assert.Equal(t, []int{0, 1, 2, 1}, counts)
	assert.Equal(t, ast.TypeTuple, b.Types.Get(en.Variants[3].Fields[0]).Kind)

	mod, ok := b.Items.Mod(f.Items[2])
	require.True(t, ok)
	assert.Equal(t, ast.SymbolIDOf("m"), mod.Name.ID)

	use, ok := b.Items.Use(f.Items[3])
	require.True(t, ok)
	require.Len(t, use.Module.Segments, 2)
	assert.Equal(t, "a::b", use.Module.Span.Text(src))
	assert.Equal(t, ast.SymbolIDOf("c"), use.Item.ID)

	single, ok := b.Items.Use(f.Items[4])
	require.True(t, ok)
	assert.Empty(t, single.Module.Segments)
	assert.Equal(t, ast.SymbolIDOf("d"), single.Item.ID)
}

func TestLowerPatterns(t *testing.T) {
	b, block := bodyOf(t, "fn f() { match v { Some((x)) => x, Pair(a, _) => a, ((y, z)) => y, _ => 0 } }")
	m, ok := b.Exprs.Match(stmtExprs(t, b, block)[0])
	require.True(t, ok)
	require.Len(t, m.Arms, 4)

	some := b.Patterns.Get(m.Arms[0].Pattern)
	assert.Equal(t, ast.PatNamedTuple, some.Kind)
	require.Len(t, some.Elems, 1)
	assert.Equal(t, ast.PatNamed, b.Patterns.Get(some.Elems[0]).Kind)

	pair := b.Patterns.Get(m.Arms[1].Pattern)
	assert.Equal(t, ast.PatNamedTuple, pair.Kind)
	require.Len(t, pair.Elems, 2)
	assert.Equal(t, ast.PatHole, b.Patterns.Get(pair.Elems[1]).Kind)

	tup := b.Patterns.Get(m.Arms[2].Pattern)
	assert.Equal(t, ast.PatTuple, tup.Kind)
	assert.Len(t, tup.Elems, 2)

	assert.Equal(t, ast.PatHole, b.Patterns.Get(m.Arms[3].Pattern).Kind)
}

func TestLowerIfChain(t *testing.T) {
	b, block := bodyOf(t, "fn f() { if a { 1 } else if b { 2 } else { 3 } }")
	require.False(t, block.Tail.IsValid(), "block-like expressions stay statements")
	first, ok := b.Exprs.If(stmtExprs(t, b, block)[0])
	require.True(t, ok)
	second, ok := b.Exprs.If(first.Else)
	require.True(t, ok, "else-if should lower to a nested if")
	last, ok := b.Exprs.Block(second.Else)
	require.True(t, ok, "final else should lower to a block expression")
	assert.True(t, b.Blocks.Get(last.Block).Tail.IsValid())
}

func TestLowerLoops(t *testing.T) {
	b, block := bodyOf(t, "fn f() { while x { } loop { } for i in xs { i; } }")
	require.Len(t, block.Stmts, 3)
	exprs := stmtExprs(t, b, block)

	_, ok := b.Exprs.While(exprs[0])
	assert.True(t, ok)
	_, ok = b.Exprs.Loop(exprs[1])
	assert.True(t, ok)
	loop, ok := b.Exprs.For(exprs[2])
	require.True(t, ok)
	assert.Equal(t, ast.SymbolIDOf("i"), loop.Binding.ID)
	assert.Len(t, b.Blocks.Get(loop.Body).Stmts, 1)
}

func TestLowerBinaryOperators(t *testing.T) {
	b, block := bodyOf(t, "fn f() { a = b + c * d }")
	assign, ok := b.Exprs.Binary(block.Tail)
	require.True(t, ok)
	assert.Equal(t, ast.BinAssign, assign.Op)
	sum, ok := b.Exprs.Binary(assign.Right)
	require.True(t, ok)
	assert.Equal(t, ast.BinAdd, sum.Op)
	prod, ok := b.Exprs.Binary(sum.Right)
	require.True(t, ok)
	assert.Equal(t, ast.BinMul, prod.Op)
}

func TestSymbolDeterminism(t *testing.T) {
	src := "fn foo(foo: foo) { foo; bar }"
	b, f := lowerSource(t, src)
	require.Len(t, f.Items, 1)

	ids := map[string]map[ast.SymbolID]bool{}
	b.Walk(ast.ItemNode(f.Items[0]), func(_, n ast.Node) bool {
		if n.Kind == ast.NodeSymbol {
			text := n.Sym.Span.Text(src)
			if ids[text] == nil {
				ids[text] = map[ast.SymbolID]bool{}
			}
			ids[text][n.Sym.ID] = true
		}
		return true
	})
	assert.Len(t, ids["foo"], 1, "equal bytes must hash equally")
	assert.Len(t, ids["bar"], 1)
	for id := range ids["foo"] {
		assert.False(t, ids["bar"][id])
	}
}

func TestLowerSpansOnLargerProgram(t *testing.T) {
	src := `
pub struct Point { pub x: i64, y: i64 }

enum Shape { Dot(Point), Line(Point, Point), Empty }

pub(self) fn area(s: &Shape) -> u128 {
    let mut_ref: &mut i32 = make();
    let _ = match s {
        Dot(_) => 0,
        Line((a), b) => { a.dist(b) }
        Empty => 340282366920938463463374607431768211455,
    };
    while running && ready != done {
        tick();
    }
    for p in points { p.move_by(1, 2); }
    if x == y { loop { } } else { () }
}
`
	lowerSource(t, src)
}
