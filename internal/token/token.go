package token

import (
	"minic/internal/ast"
	"minic/internal/source"
)

// Token is one lexeme with its location. Lit is set for literal tokens
// (escapes already converted); Text is the source slice, NFC-normalized
// for identifiers.
type Token struct {
	Kind Kind
	Loc  source.Location
	Text string
	Lit  ast.Literal
}

// IsLiteral reports whether the token is a constant.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit, KwTrue, KwFalse:
		return true
	}
	return false
}

// IsType reports whether the token is a type keyword.
func (t Token) IsType() bool {
	switch t.Kind {
	case KwInt, KwFloat, KwChar, KwBool, KwString:
		return true
	}
	return false
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind >= KwInt && t.Kind <= KwFalse }

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool { return t.Kind >= Plus && t.Kind <= OrOr }

// Value converts an identifier or literal token into a lexic value.
func (t Token) Value() ast.LexicValue {
	if t.IsLiteral() {
		return ast.Lit(t.Lit, t.Loc)
	}
	return ast.Ident(t.Text, t.Loc)
}
