package ast

import (
	"strconv"

	"minic/internal/types"
)

// Literal is a constant value. Only the field matching Type is meaningful.
type Literal struct {
	Type  types.Type
	Str   string
	Float float64
	Int   int32
	Char  byte
	Bool  bool
}

func IntLit(v int32) Literal     { return Literal{Type: types.Int, Int: v} }
func FloatLit(v float64) Literal { return Literal{Type: types.Float, Float: v} }
func CharLit(v byte) Literal     { return Literal{Type: types.Char, Char: v} }
func BoolLit(v bool) Literal     { return Literal{Type: types.Bool, Bool: v} }
func StringLit(v string) Literal { return Literal{Type: types.String, Str: v} }

// String renders the value the way the tree export labels it.
func (l Literal) String() string {
	switch l.Type {
	case types.String:
		return l.Str
	case types.Char:
		return string(rune(l.Char))
	case types.Int:
		return strconv.FormatInt(int64(l.Int), 10)
	case types.Float:
		return strconv.FormatFloat(l.Float, 'f', 5, 64)
	case types.Bool:
		return strconv.FormatBool(l.Bool)
	}
	return ""
}

// InvertNumericLiteral folds a unary minus into a numeric literal by
// flipping its sign in place. Any other operator or a non-numeric literal
// leaves lit untouched. It reports whether lit changed.
func InvertNumericLiteral(lit *Literal, op ExprOp) bool {
	if lit == nil || op != ExprSignNeg {
		return false
	}
	switch lit.Type {
	case types.Int:
		lit.Int = -lit.Int
	case types.Float:
		lit.Float = -lit.Float
	default:
		return false
	}
	return true
}
