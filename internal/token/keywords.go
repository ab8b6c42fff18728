package token

var keywords = map[string]Kind{
	"const":  KwConst,
	"else":   KwElse,
	"enum":   KwEnum,
	"false":  KwFalse,
	"fn":     KwFn,
	"for":    KwFor,
	"if":     KwIf,
	"let":    KwLet,
	"loop":   KwLoop,
	"match":  KwMatch,
	"mod":    KwMod,
	"mut":    KwMut,
	"pub":    KwPub,
	"struct": KwStruct,
	"true":   KwTrue,
	"use":    KwUse,
	"while":  KwWhile,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}
