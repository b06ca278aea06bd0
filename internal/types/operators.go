package types

// Family groups types that convert into one another implicitly.
type Family uint8

const (
	FamilyNone Family = iota
	// FamilyArith holds int, float and bool.
	FamilyArith
	FamilyChar
	FamilyString
)

// FamilyOf returns the conversion family of t.
func FamilyOf(t Type) Family {
	switch t {
	case Int, Float, Bool:
		return FamilyArith
	case Char:
		return FamilyChar
	case String:
		return FamilyString
	}
	return FamilyNone
}

// Convertible reports whether a value of type from may be stored into, or
// combined with, a value of type to.
func Convertible(from, to Type) bool {
	if from == to {
		return from.IsDefined()
	}
	return FamilyOf(from) == FamilyArith && FamilyOf(to) == FamilyArith
}

// rank orders the arithmetic types for inference: float > int > bool.
func rank(t Type) int {
	switch t {
	case Float:
		return 3
	case Int:
		return 2
	case Bool:
		return 1
	}
	return 0
}

// Infer returns the type of an arithmetic expression over a and b: the
// wider of the two. Mixed families yield Undefined.
func Infer(a, b Type) Type {
	if a == b {
		return a
	}
	if !Convertible(a, b) {
		return Undefined
	}
	if rank(a) >= rank(b) {
		return a
	}
	return b
}
