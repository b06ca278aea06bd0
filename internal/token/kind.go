package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	Ident
	IntLit
	FloatLit
	CharLit
	StringLit

	// ключевые слова
	KwInt
	KwFloat
	KwChar
	KwBool
	KwString
	KwStatic
	KwConst
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwReturn
	KwBreak
	KwContinue
	KwInput
	KwOutput
	KwTrue
	KwFalse

	// операторы и пунктуация
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Caret     // ^
	Pipe      // |
	Amp       // &
	Bang      // !
	Question  // ?
	Hash      // #
	Colon     // :
	Semicolon // ;
	Comma     // ,
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Assign    // =
	EqEq      // ==
	BangEq    // !=
	Lt        // <
	Gt        // >
	LtEq      // <= (also initialization)
	GtEq      // >=
	Shl       // <<
	Shr       // >>
	AndAnd    // &&
	OrOr      // ||
)

var kindNames = [...]string{
	Invalid:    "invalid",
	EOF:        "EOF",
	Ident:      "identifier",
	IntLit:     "int literal",
	FloatLit:   "float literal",
	CharLit:    "char literal",
	StringLit:  "string literal",
	KwInt:      "int",
	KwFloat:    "float",
	KwChar:     "char",
	KwBool:     "bool",
	KwString:   "string",
	KwStatic:   "static",
	KwConst:    "const",
	KwIf:       "if",
	KwElse:     "else",
	KwWhile:    "while",
	KwDo:       "do",
	KwFor:      "for",
	KwReturn:   "return",
	KwBreak:    "break",
	KwContinue: "continue",
	KwInput:    "input",
	KwOutput:   "output",
	KwTrue:     "true",
	KwFalse:    "false",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Caret:      "^",
	Pipe:       "|",
	Amp:        "&",
	Bang:       "!",
	Question:   "?",
	Hash:       "#",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	LBrace:     "{",
	RBrace:     "}",
	Assign:     "=",
	EqEq:       "==",
	BangEq:     "!=",
	Lt:         "<",
	Gt:         ">",
	LtEq:       "<=",
	GtEq:       ">=",
	Shl:        "<<",
	Shr:        ">>",
	AndAnd:     "&&",
	OrOr:       "||",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}
