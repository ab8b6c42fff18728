package ast

import (
	"lukechampine.com/uint128"

	"ferrite/internal/source"
)

type ExprKind uint8

const (
	ExprVariable ExprKind = iota + 1
	ExprBool
	ExprInteger
	ExprTuple
	ExprBlock
	ExprIf
	ExprWhile
	ExprLoop
	ExprFor
	ExprMatch
	ExprBinary
	ExprCall
	ExprMember
	ExprMemberCall
)

var exprKindNames = [...]string{
	ExprVariable:   "Variable",
	ExprBool:       "Bool",
	ExprInteger:    "Integer",
	ExprTuple:      "Tuple",
	ExprBlock:      "Block",
	ExprIf:         "If",
	ExprWhile:      "While",
	ExprLoop:       "Loop",
	ExprFor:        "For",
	ExprMatch:      "Match",
	ExprBinary:     "Binary",
	ExprCall:       "Call",
	ExprMember:     "Member",
	ExprMemberCall: "MemberCall",
}

func (k ExprKind) String() string {
	if k != 0 && int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

// Expr is the common header; kind-specific data lives in Exprs' payload arenas.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type BinaryOp uint8

const (
	BinMul BinaryOp = iota + 1
	BinDiv
	BinAdd
	BinSub
	BinBitAnd
	BinBitOr
	BinEq
	BinNe
	BinAnd
	BinOr
	BinAssign
)

var binaryOpText = [...]string{
	BinMul:    "*",
	BinDiv:    "/",
	BinAdd:    "+",
	BinSub:    "-",
	BinBitAnd: "&",
	BinBitOr:  "|",
	BinEq:     "==",
	BinNe:     "!=",
	BinAnd:    "&&",
	BinOr:     "||",
	BinAssign: "=",
}

func (op BinaryOp) String() string {
	if op != 0 && int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

type ExprVariableData struct{ Name Symbol }

type ExprBoolData struct{ Value bool }

type ExprIntegerData struct{ Value uint128.Uint128 }

type ExprTupleData struct{ Elems []ExprID }

type ExprBlockData struct{ Block BlockID }

// ExprIfData: Else is NoExprID, an ExprIf (else-if) or an ExprBlock.
type ExprIfData struct {
	Cond ExprID
	Then BlockID
	Else ExprID
}

type ExprWhileData struct {
	Cond ExprID
	Body BlockID
}

type ExprLoopData struct{ Body BlockID }

type ExprForData struct {
	Binding Symbol
	Iter    ExprID
	Body    BlockID
}

type MatchArm struct {
	Span    source.Span
	Pattern PatternID
	Value   ExprID
}

type ExprMatchData struct {
	Scrutinee ExprID
	Arms      []MatchArm
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprMemberData struct {
	Receiver ExprID
	Member   Symbol
}

// ExprMemberCallData is `receiver.method(args)`; Access is the member
// access node whose receiver and name are repeated here for convenience.
type ExprMemberCallData struct {
	Access   ExprID
	Receiver ExprID
	Method   Symbol
	Args     []ExprID
}
