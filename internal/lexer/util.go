package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

// isSymbolByte is the fixed symbol alphabet: ! & ( ) * + , - . / : ; = > { | }
func isSymbolByte(b byte) bool {
	switch b {
	case '!', '&', '(', ')', '*', '+', ',', '-', '.', '/', ':', ';', '=', '>', '{', '|', '}':
		return true
	default:
		return false
	}
}

// isControl reports a C0 control character that is not whitespace.
func isControl(r rune) bool {
	return r < 0x20 && !unicode.IsSpace(r)
}

func isWordRune(r rune) bool {
	if r < 0x80 && isSymbolByte(byte(r)) {
		return false
	}
	return !unicode.IsSpace(r) && !isControl(r)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
