package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value; the lexer never produces it.
	Invalid Kind = iota

	// NotEquals represents the '!=' operator.
	NotEquals // !=
	// Ampersand represents the '&' operator.
	Ampersand // &
	// And represents the '&&' operator.
	And // &&
	// OpenParen represents '('.
	OpenParen // (
	// CloseParen represents ')'.
	CloseParen // )
	// Star represents '*'.
	Star // *
	// Plus represents '+'.
	Plus // +
	// Comma represents ','.
	Comma // ,
	// Minus represents '-'.
	Minus // -
	// ThinArrow represents '->'.
	ThinArrow // ->
	// Dot represents '.'.
	Dot // .
	// ForwardSlash represents '/'.
	ForwardSlash // /
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::'.
	ColonColon // ::
	// Semicolon represents ';'.
	Semicolon // ;
	// Set represents the assignment '='.
	Set // =
	// Equals represents '=='.
	Equals // ==
	// FatArrow represents '=>'.
	FatArrow // =>
	// OpenCurly represents '{'.
	OpenCurly // {
	// Bar represents '|'.
	Bar // |
	// Or represents '||'.
	Or // ||
	// CloseCurly represents '}'.
	CloseCurly // }
	// Underscore represents a lone '_'.
	Underscore // _

	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// Label is any other word: identifiers, and digit-led words that are not integers.
	Label
	// Integer is a word made only of ASCII digits.
	Integer
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	NotEquals:    "NotEquals",
	Ampersand:    "Ampersand",
	And:          "And",
	OpenParen:    "OpenParen",
	CloseParen:   "CloseParen",
	Star:         "Star",
	Plus:         "Plus",
	Comma:        "Comma",
	Minus:        "Minus",
	ThinArrow:    "ThinArrow",
	Dot:          "Dot",
	ForwardSlash: "ForwardSlash",
	Colon:        "Colon",
	ColonColon:   "ColonColon",
	Semicolon:    "Semicolon",
	Set:          "Set",
	Equals:       "Equals",
	FatArrow:     "FatArrow",
	OpenCurly:    "OpenCurly",
	Bar:          "Bar",
	Or:           "Or",
	CloseCurly:   "CloseCurly",
	Underscore:   "Underscore",
	KwConst:      "KwConst",
	KwElse:       "KwElse",
	KwEnum:       "KwEnum",
	KwFalse:      "KwFalse",
	KwFn:         "KwFn",
	KwFor:        "KwFor",
	KwIf:         "KwIf",
	KwLet:        "KwLet",
	KwLoop:       "KwLoop",
	KwMatch:      "KwMatch",
	KwMod:        "KwMod",
	KwMut:        "KwMut",
	KwPub:        "KwPub",
	KwStruct:     "KwStruct",
	KwTrue:       "KwTrue",
	KwUse:        "KwUse",
	KwWhile:      "KwWhile",
	Label:        "Label",
	Integer:      "Integer",
}

var kindSymbols = [...]string{
	NotEquals:    "!=",
	Ampersand:    "&",
	And:          "&&",
	OpenParen:    "(",
	CloseParen:   ")",
	Star:         "*",
	Plus:         "+",
	Comma:        ",",
	Minus:        "-",
	ThinArrow:    "->",
	Dot:          ".",
	ForwardSlash: "/",
	Colon:        ":",
	ColonColon:   "::",
	Semicolon:    ";",
	Set:          "=",
	Equals:       "==",
	FatArrow:     "=>",
	OpenCurly:    "{",
	Bar:          "|",
	Or:           "||",
	CloseCurly:   "}",
	Underscore:   "_",
	KwConst:      "const",
	KwElse:       "else",
	KwEnum:       "enum",
	KwFalse:      "false",
	KwFn:         "fn",
	KwFor:        "for",
	KwIf:         "if",
	KwLet:        "let",
	KwLoop:       "loop",
	KwMatch:      "match",
	KwMod:        "mod",
	KwMut:        "mut",
	KwPub:        "pub",
	KwStruct:     "struct",
	KwTrue:       "true",
	KwUse:        "use",
	KwWhile:      "while",
	Label:        "",
	Integer:      "",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Symbol returns the fixed source text of k, or "" for Label, Integer and Invalid.
func (k Kind) Symbol() string {
	if int(k) < len(kindSymbols) {
		return kindSymbols[k]
	}
	return ""
}

// Describe renders k for error messages: "`)`" for fixed tokens, "identifier"
// for Label and "integer" for Integer.
func (k Kind) Describe() string {
	switch k {
	case Label:
		return "identifier"
	case Integer:
		return "integer"
	case Invalid:
		return "invalid token"
	}
	return "`" + k.Symbol() + "`"
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KwConst && k <= KwWhile
}

// IsSymbol reports whether k is punctuation or an operator.
func (k Kind) IsSymbol() bool {
	return k >= NotEquals && k <= Underscore
}
