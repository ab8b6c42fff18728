package parser

import (
	"ferrite/internal/cst"
	"ferrite/internal/token"
)

// Таблица приоритетов бинарных операторов.
// Чем меньше число, тем сильнее связывание.
const (
	precMultiplicative = 7  // * /
	precAdditive       = 8  // + -
	precBitwiseAnd     = 10 // &
	precBitwiseOr      = 12 // |
	precEquality       = 13 // == !=
	precLogical        = 14 // && ||
	precAssignment     = 17 // =
)

type assoc uint8

const (
	assocLeft assoc = iota
	assocRight
	assocNone
)

type opInfo struct {
	op    cst.BinaryOp
	prec  int
	assoc assoc
}

// binaryOperator returns the operator described by kind, if any.
func binaryOperator(kind token.Kind) (opInfo, bool) {
	switch kind {
	case token.Star:
		return opInfo{cst.OpMul, precMultiplicative, assocLeft}, true
	case token.ForwardSlash:
		return opInfo{cst.OpDiv, precMultiplicative, assocLeft}, true
	case token.Plus:
		return opInfo{cst.OpAdd, precAdditive, assocLeft}, true
	case token.Minus:
		return opInfo{cst.OpSub, precAdditive, assocLeft}, true
	case token.Ampersand:
		return opInfo{cst.OpBitAnd, precBitwiseAnd, assocLeft}, true
	case token.Bar:
		return opInfo{cst.OpBitOr, precBitwiseOr, assocLeft}, true
	case token.Equals:
		return opInfo{cst.OpEq, precEquality, assocNone}, true
	case token.NotEquals:
		return opInfo{cst.OpNe, precEquality, assocNone}, true
	case token.And:
		return opInfo{cst.OpAnd, precLogical, assocNone}, true
	case token.Or:
		return opInfo{cst.OpOr, precLogical, assocNone}, true
	case token.Set:
		return opInfo{cst.OpAssign, precAssignment, assocRight}, true
	default:
		return opInfo{}, false
	}
}
