package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnrecognizedControlChar  Code = 1001
	LexUnrecognizedSymbol       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Парсерные
	SynInfo              Code = 2000
	SynExpectedToken     Code = 2001
	SynExpected          Code = 2002
	SynIntegerOutOfRange Code = 2003

	// Ввод-вывод
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnrecognizedControlChar:  "Unrecognized control character",
	LexUnrecognizedSymbol:       "Unrecognized symbol",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynInfo:                     "Syntax information",
	SynExpectedToken:            "Expected token",
	SynExpected:                 "Expected syntax",
	SynIntegerOutOfRange:        "Integer literal out of range",
	IOInfo:                      "I/O information",
	IOLoadFileError:             "I/O load file error",
	IOCacheError:                "Token cache error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// HasSource reports whether diagnostics with this code point into a file.
// I/O diagnostics are raised before a file has content and carry no span.
func (c Code) HasSource() bool {
	ic := int(c)
	return ic >= 1000 && ic < 3000
}
