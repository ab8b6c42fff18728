package ast

import (
	"lukechampine.com/uint128"

	"ferrite/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena       *Arena[Expr]
	Variables   *Arena[ExprVariableData]
	Bools       *Arena[ExprBoolData]
	Integers    *Arena[ExprIntegerData]
	Tuples      *Arena[ExprTupleData]
	Blocks      *Arena[ExprBlockData]
	Ifs         *Arena[ExprIfData]
	Whiles      *Arena[ExprWhileData]
	Loops       *Arena[ExprLoopData]
	Fors        *Arena[ExprForData]
	Matches     *Arena[ExprMatchData]
	Binaries    *Arena[ExprBinaryData]
	Calls       *Arena[ExprCallData]
	Members     *Arena[ExprMemberData]
	MemberCalls *Arena[ExprMemberCallData]
}

// NewExprs creates per-kind expression arenas; capHint 0 means 1<<8.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint / 8
	return &Exprs{
		Arena:       NewArena[Expr](capHint),
		Variables:   NewArena[ExprVariableData](capHint),
		Bools:       NewArena[ExprBoolData](small),
		Integers:    NewArena[ExprIntegerData](small),
		Tuples:      NewArena[ExprTupleData](small),
		Blocks:      NewArena[ExprBlockData](small),
		Ifs:         NewArena[ExprIfData](small),
		Whiles:      NewArena[ExprWhileData](small),
		Loops:       NewArena[ExprLoopData](small),
		Fors:        NewArena[ExprForData](small),
		Matches:     NewArena[ExprMatchData](small),
		Binaries:    NewArena[ExprBinaryData](capHint / 2),
		Calls:       NewArena[ExprCallData](small),
		Members:     NewArena[ExprMemberData](small),
		MemberCalls: NewArena[ExprMemberCallData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

func (e *Exprs) NewVariable(span source.Span, name Symbol) ExprID {
	return e.new(ExprVariable, span, e.Variables.Allocate(ExprVariableData{Name: name}))
}

func (e *Exprs) Variable(id ExprID) (*ExprVariableData, bool) {
	p, ok := e.payload(id, ExprVariable)
	if !ok {
		return nil, false
	}
	return e.Variables.Get(p), true
}

func (e *Exprs) NewBool(span source.Span, value bool) ExprID {
	return e.new(ExprBool, span, e.Bools.Allocate(ExprBoolData{Value: value}))
}

func (e *Exprs) Bool(id ExprID) (*ExprBoolData, bool) {
	p, ok := e.payload(id, ExprBool)
	if !ok {
		return nil, false
	}
	return e.Bools.Get(p), true
}

func (e *Exprs) NewInteger(span source.Span, value uint128.Uint128) ExprID {
	return e.new(ExprInteger, span, e.Integers.Allocate(ExprIntegerData{Value: value}))
}

func (e *Exprs) Integer(id ExprID) (*ExprIntegerData, bool) {
	p, ok := e.payload(id, ExprInteger)
	if !ok {
		return nil, false
	}
	return e.Integers.Get(p), true
}

func (e *Exprs) NewTuple(span source.Span, elems []ExprID) ExprID {
	return e.new(ExprTuple, span, e.Tuples.Allocate(ExprTupleData{Elems: elems}))
}

func (e *Exprs) Tuple(id ExprID) (*ExprTupleData, bool) {
	p, ok := e.payload(id, ExprTuple)
	if !ok {
		return nil, false
	}
	return e.Tuples.Get(p), true
}

func (e *Exprs) NewBlock(span source.Span, block BlockID) ExprID {
	return e.new(ExprBlock, span, e.Blocks.Allocate(ExprBlockData{Block: block}))
}

func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	p, ok := e.payload(id, ExprBlock)
	if !ok {
		return nil, false
	}
	return e.Blocks.Get(p), true
}

func (e *Exprs) NewIf(span source.Span, data ExprIfData) ExprID {
	return e.new(ExprIf, span, e.Ifs.Allocate(data))
}

func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	p, ok := e.payload(id, ExprIf)
	if !ok {
		return nil, false
	}
	return e.Ifs.Get(p), true
}

func (e *Exprs) NewWhile(span source.Span, cond ExprID, body BlockID) ExprID {
	return e.new(ExprWhile, span, e.Whiles.Allocate(ExprWhileData{Cond: cond, Body: body}))
}

func (e *Exprs) While(id ExprID) (*ExprWhileData, bool) {
	p, ok := e.payload(id, ExprWhile)
	if !ok {
		return nil, false
	}
	return e.Whiles.Get(p), true
}

func (e *Exprs) NewLoop(span source.Span, body BlockID) ExprID {
	return e.new(ExprLoop, span, e.Loops.Allocate(ExprLoopData{Body: body}))
}

func (e *Exprs) Loop(id ExprID) (*ExprLoopData, bool) {
	p, ok := e.payload(id, ExprLoop)
	if !ok {
		return nil, false
	}
	return e.Loops.Get(p), true
}

func (e *Exprs) NewFor(span source.Span, data ExprForData) ExprID {
	return e.new(ExprFor, span, e.Fors.Allocate(data))
}

func (e *Exprs) For(id ExprID) (*ExprForData, bool) {
	p, ok := e.payload(id, ExprFor)
	if !ok {
		return nil, false
	}
	return e.Fors.Get(p), true
}

func (e *Exprs) NewMatch(span source.Span, data ExprMatchData) ExprID {
	return e.new(ExprMatch, span, e.Matches.Allocate(data))
}

func (e *Exprs) Match(id ExprID) (*ExprMatchData, bool) {
	p, ok := e.payload(id, ExprMatch)
	if !ok {
		return nil, false
	}
	return e.Matches.Get(p), true
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	return e.new(ExprCall, span, e.Calls.Allocate(ExprCallData{Callee: callee, Args: args}))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewMember(span source.Span, receiver ExprID, member Symbol) ExprID {
	return e.new(ExprMember, span, e.Members.Allocate(ExprMemberData{Receiver: receiver, Member: member}))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	p, ok := e.payload(id, ExprMember)
	if !ok {
		return nil, false
	}
	return e.Members.Get(p), true
}

// NewMemberCall wraps an existing member access into a method call.
func (e *Exprs) NewMemberCall(span source.Span, access ExprID, args []ExprID) ExprID {
	data := ExprMemberCallData{Access: access, Args: args}
	if m, ok := e.Member(access); ok {
		data.Receiver = m.Receiver
		data.Method = m.Member
	}
	return e.new(ExprMemberCall, span, e.MemberCalls.Allocate(data))
}

func (e *Exprs) MemberCall(id ExprID) (*ExprMemberCallData, bool) {
	p, ok := e.payload(id, ExprMemberCall)
	if !ok {
		return nil, false
	}
	return e.MemberCalls.Get(p), true
}
