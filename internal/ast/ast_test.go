package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"ferrite/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestArena(t *testing.T) {
	a := NewArena[int](0)
	assert.Nil(t, a.Get(0))
	assert.Nil(t, a.Get(1))

	first := a.Allocate(10)
	second := a.Allocate(20)
	assert.Equal(t, uint32(1), first)
	assert.Equal(t, uint32(2), second)
	assert.Equal(t, 20, *a.Get(second))
	assert.Nil(t, a.Get(3))
	assert.Equal(t, uint32(2), a.Len())
	assert.Equal(t, []int{10, 20}, a.Slice())
}

func TestSymbolIDs(t *testing.T) {
	text := "foo bar foo"
	a := NewSymbol(text, sp(0, 3))
	b := NewSymbol(text, sp(4, 7))
	c := NewSymbol(text, sp(8, 11))

	assert.Equal(t, a.ID, c.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, SymbolIDOf("foo"), a.ID)
	assert.Equal(t, "#", a.ID.String()[:1])
}

func TestBinaryOpString(t *testing.T) {
	cases := map[BinaryOp]string{
		BinMul:    "*",
		BinSub:    "-",
		BinBitOr:  "|",
		BinNe:     "!=",
		BinOr:     "||",
		BinAssign: "=",
		0:         "?",
	}
	for op, want := range cases {
		assert.Equal(t, want, op.String())
	}
}

func TestPayloadKindMismatch(t *testing.T) {
	e := NewExprs(0)
	id := e.NewBool(sp(0, 4), true)

	_, ok := e.Integer(id)
	assert.False(t, ok)
	data, ok := e.Bool(id)
	require.True(t, ok)
	assert.True(t, data.Value)

	_, ok = e.Bool(NoExprID)
	assert.False(t, ok)
}

func TestMemberCallCopiesAccess(t *testing.T) {
	text := "a.b()"
	e := NewExprs(0)
	recv := e.NewVariable(sp(0, 1), NewSymbol(text, sp(0, 1)))
	access := e.NewMember(sp(0, 3), recv, NewSymbol(text, sp(2, 3)))
	call := e.NewMemberCall(sp(0, 5), access, nil)

	data, ok := e.MemberCall(call)
	require.True(t, ok)
	assert.Equal(t, recv, data.Receiver)
	assert.Equal(t, SymbolIDOf("b"), data.Method.ID)
	assert.Equal(t, access, data.Access)
}

func TestWalkVisitsInOrder(t *testing.T) {
	// 1 + 2 * x
	text := "1 + 2 * x"
	b := NewBuilder(Hints{})
	one := b.Exprs.NewInteger(sp(0, 1), uint128.From64(1))
	two := b.Exprs.NewInteger(sp(4, 5), uint128.From64(2))
	x := b.Exprs.NewVariable(sp(8, 9), NewSymbol(text, sp(8, 9)))
	mul := b.Exprs.NewBinary(sp(4, 9), BinMul, two, x)
	add := b.Exprs.NewBinary(sp(0, 9), BinAdd, one, mul)

	var visited []Node
	b.Walk(ExprNode(add), func(_, n Node) bool {
		visited = append(visited, n)
		return true
	})
	require.Len(t, visited, 6)
	assert.Equal(t, ExprNode(add), visited[0])
	assert.Equal(t, ExprNode(one), visited[1])
	assert.Equal(t, ExprNode(mul), visited[2])
	assert.Equal(t, NodeSymbol, visited[5].Kind)
	assert.Equal(t, sp(8, 9), b.Span(visited[5]))

	// returning false prunes the subtree
	count := 0
	b.Walk(ExprNode(add), func(_, n Node) bool {
		count++
		return n != ExprNode(mul)
	})
	assert.Equal(t, 3, count)
}

func TestSpanOfUnknownNode(t *testing.T) {
	b := NewBuilder(Hints{})
	assert.Equal(t, source.Span{}, b.Span(ExprNode(42)))
	assert.Empty(t, b.Children(ExprNode(42)))
}

func TestHintsForTokens(t *testing.T) {
	assert.Equal(t, Hints{}, HintsForTokens(0))
	h := HintsForTokens(64)
	assert.Equal(t, uint(33), h.Exprs)
	assert.Equal(t, uint(3), h.Items)
}
