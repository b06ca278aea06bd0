package token

var keywords = map[string]Kind{
	"int":      KwInt,
	"float":    KwFloat,
	"char":     KwChar,
	"bool":     KwBool,
	"string":   KwString,
	"static":   KwStatic,
	"const":    KwConst,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"do":       KwDo,
	"for":      KwFor,
	"return":   KwReturn,
	"break":    KwBreak,
	"continue": KwContinue,
	"input":    KwInput,
	"output":   KwOutput,
	"true":     KwTrue,
	"false":    KwFalse,
}

// LookupKeyword reports whether ident is a keyword. Keywords are
// lowercase only.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
