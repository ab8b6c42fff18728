package parser

import (
	"fmt"

	"ferrite/internal/source"
	"ferrite/internal/token"
)

// ErrorKind classifies parse errors.
type ErrorKind uint8

const (
	// ExpectedToken: a specific token kind was required.
	ExpectedToken ErrorKind = iota + 1
	// Expected: a syntactic category was required; What names it.
	Expected
	// IntegerOutOfRange: an integer literal does not fit in 128 bits.
	IntegerOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedToken:
		return "ExpectedToken"
	case Expected:
		return "Expected"
	case IntegerOutOfRange:
		return "IntegerOutOfRange"
	default:
		return "ErrorKind(?)"
	}
}

// Error is the first structural error of a file.
type Error struct {
	Kind  ErrorKind
	Token token.Kind // for ExpectedToken
	What  string     // for Expected
	Span  source.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message(), e.Span)
}

// Message is the human-readable text without a location.
func (e *Error) Message() string {
	switch e.Kind {
	case ExpectedToken:
		return "expected " + e.Token.Describe()
	case Expected:
		return "expected " + e.What
	case IntegerOutOfRange:
		return "integer literal out of range"
	default:
		return "parse error"
	}
}
