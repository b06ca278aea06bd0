package symbols

import (
	"fmt"

	"minic/internal/ast"
	"minic/internal/source"
	"minic/internal/types"
)

// Kind is what a declared identifier names.
type Kind uint8

const (
	KindVariable Kind = iota
	KindArray
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindArray:
		return "vector"
	case KindFunction:
		return "function"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Flags carries declaration modifiers.
type Flags uint8

const (
	FlagStatic Flags = 1 << iota
	FlagConst
)

// Symbol describes one declared identifier. Count is meaningful for
// arrays only, Params for functions only.
type Symbol struct {
	Loc         source.Location
	Kind        Kind
	Type        types.Type
	Size        uint32
	Initialized bool
	Flags       Flags
	Count       uint32
	Params      []Pair
}

// Pair binds a name to a symbol while a declaration travels from the
// parser into a scope.
type Pair struct {
	Name   string
	Symbol *Symbol
}

// New creates a symbol of kind with an undefined type.
func New(loc source.Location, kind Kind) *Symbol {
	return &Symbol{Loc: loc, Kind: kind, Type: types.Undefined}
}

// NewPair turns an identifier lexic value into a named symbol.
func NewPair(v ast.LexicValue, kind Kind) Pair {
	return Pair{Name: v.Ident, Symbol: New(v.Loc, kind)}
}

// sizeOf is the storage size of one value of t; strings get theirs from
// the literal that initializes them.
func sizeOf(t types.Type) uint32 {
	switch t {
	case types.Bool, types.Char:
		return 1
	case types.Int:
		return 4
	case types.Float:
		return 8
	}
	return 0
}

// SetType settles the symbol's type. A symbol keeps the first type it is
// given: setting a different one fails and changes nothing.
func (s *Symbol) SetType(t types.Type) bool {
	if s.Type != types.Undefined && s.Type != t {
		return false
	}
	s.Type = t
	s.Size = sizeOf(t)
	return true
}

// SetTypeAll applies SetType to every pair, stopping at the first failure.
func SetTypeAll(pairs []Pair, t types.Type) bool {
	for _, p := range pairs {
		if !p.Symbol.SetType(t) {
			return false
		}
	}
	return true
}

// InitArray records the element count of an array symbol.
func (s *Symbol) InitArray(count uint32) bool {
	if s == nil || s.Kind != KindArray {
		return false
	}
	s.Count = count
	return true
}

// InitFunction stores the ordered parameter list of a function symbol.
func (s *Symbol) InitFunction(params []Pair) bool {
	if s == nil || s.Kind != KindFunction {
		return false
	}
	s.Params = params
	return true
}

// InitString sizes a string symbol by the literal assigned to it and marks
// it initialized.
func (s *Symbol) InitString(length uint32) bool {
	if s == nil || s.Type != types.String {
		return false
	}
	s.Size = length
	s.Initialized = true
	return true
}

// MatchesKind reports whether the symbol is of kind k.
func (s *Symbol) MatchesKind(k Kind) bool { return s.Kind == k }

// Is reports whether all of f are set.
func (s *Symbol) Is(f Flags) bool { return s.Flags&f == f }
