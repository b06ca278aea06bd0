package ast

import (
	"fmt"

	"minic/internal/source"
	"minic/internal/types"
)

// Kind selects which payload of a LexicValue is meaningful.
type Kind uint8

const (
	KindIdent   Kind = iota // Ident
	KindLiteral             // Lit
	KindExpr                // Expr
	KindCmd                 // Cmd
	KindFunc                // Ident: name of a function definition
	KindCall                // Ident: name of the called function
)

func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "ident"
	case KindLiteral:
		return "literal"
	case KindExpr:
		return "expr"
	case KindCmd:
		return "cmd"
	case KindFunc:
		return "func"
	case KindCall:
		return "call"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// LexicValue is a token's payload plus where it was matched. Build it with
// the constructors below so that only the payload of Kind is set.
type LexicValue struct {
	Kind  Kind
	Loc   source.Location
	Ident string
	Lit   Literal
	Expr  ExprOp
	Cmd   CmdOp
}

func Ident(name string, loc source.Location) LexicValue {
	return LexicValue{Kind: KindIdent, Loc: loc, Ident: name}
}

func Lit(lit Literal, loc source.Location) LexicValue {
	return LexicValue{Kind: KindLiteral, Loc: loc, Lit: lit}
}

func Expr(op ExprOp, loc source.Location) LexicValue {
	return LexicValue{Kind: KindExpr, Loc: loc, Expr: op}
}

func Cmd(op CmdOp, loc source.Location) LexicValue {
	return LexicValue{Kind: KindCmd, Loc: loc, Cmd: op}
}

func Func(name string, loc source.Location) LexicValue {
	return LexicValue{Kind: KindFunc, Loc: loc, Ident: name}
}

func Call(name string, loc source.Location) LexicValue {
	return LexicValue{Kind: KindCall, Loc: loc, Ident: name}
}

// Label is the text shown for the value in a tree export.
func (v LexicValue) Label() string {
	switch v.Kind {
	case KindIdent, KindFunc:
		return v.Ident
	case KindCall:
		return "call " + v.Ident
	case KindLiteral:
		return v.Lit.String()
	case KindExpr:
		return v.Expr.Symbol()
	case KindCmd:
		return v.Cmd.Symbol()
	}
	return ""
}

// ownsString reports whether the value carries an owned text buffer.
func (v LexicValue) ownsString() bool {
	switch v.Kind {
	case KindIdent, KindFunc, KindCall:
		return true
	case KindLiteral:
		return v.Lit.Type == types.String
	}
	return false
}
