// Package types enumerates the value types of the language and the
// relations between them.
package types

import "fmt"

// Type is a primitive value type.
type Type uint8

const (
	Undefined Type = iota // not settled yet
	String
	Float
	Int
	Char
	Bool
)

func (t Type) String() string {
	switch t {
	case Undefined:
		return "undefined"
	case String:
		return "string"
	case Float:
		return "float"
	case Int:
		return "int"
	case Char:
		return "char"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// Lookup maps a type keyword to its Type.
func Lookup(keyword string) (Type, bool) {
	switch keyword {
	case "string":
		return String, true
	case "float":
		return Float, true
	case "int":
		return Int, true
	case "char":
		return Char, true
	case "bool":
		return Bool, true
	}
	return Undefined, false
}

// IsNumeric reports whether t is int or float.
func (t Type) IsNumeric() bool { return t == Int || t == Float }

// IsDefined reports whether t is settled.
func (t Type) IsDefined() bool { return t != Undefined }
