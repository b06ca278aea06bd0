package diag

import "fmt"

// Code is the numeric identifier of an error. It doubles as the process
// exit status, so values are fixed.
type Code uint16

const (
	UnknownCode Code = 0
	// ErrUsage covers CLI misuse and I/O failures outside the analysis.
	ErrUsage Code = 1
	// ErrSyntax is raised by the lexer and the grammar engine.
	ErrSyntax Code = 2

	// Декларации
	ErrUndeclared Code = 10
	ErrDeclared   Code = 11

	// Несоответствие вида символа
	ErrVariable Code = 20
	ErrVector   Code = 21
	ErrFunction Code = 22

	// Типы
	ErrWrongType  Code = 30
	ErrStringToX  Code = 31
	ErrCharToX    Code = 32
	ErrStringSize Code = 33

	// Аргументы вызова (сигнатура хранится, проверка — уровнем выше)
	ErrMissingArgs   Code = 40
	ErrExcessArgs    Code = 41
	ErrWrongTypeArgs Code = 42

	// Операнды команд
	ErrWrongParInput  Code = 50
	ErrWrongParOutput Code = 51
	ErrWrongParReturn Code = 52
	ErrWrongParShift  Code = 53

	// Ресурсы
	ErrOutOfMemory Code = 64
	ErrHashKey     Code = 65
)

var codeTitles = map[Code]string{
	UnknownCode:       "unknown error",
	ErrUsage:          "invalid invocation",
	ErrSyntax:         "syntax error",
	ErrUndeclared:     "undeclared identifier symbol",
	ErrDeclared:       "symbol was already declared",
	ErrVariable:       "variable symbol used as one of another kind",
	ErrVector:         "vector symbol used as one of another kind",
	ErrFunction:       "function symbol used as one of another kind",
	ErrWrongType:      "value type incompatible to symbol type",
	ErrStringToX:      "conversion of string symbol",
	ErrCharToX:        "conversion of character symbol",
	ErrStringSize:     "receiving string symbol of incompatible size",
	ErrMissingArgs:    "function symbol received less arguments than expected",
	ErrExcessArgs:     "function symbol received more arguments than expected",
	ErrWrongTypeArgs:  "declared arguments of incompatible type to received symbols",
	ErrWrongParInput:  "parameter to input incompatible to int or float",
	ErrWrongParOutput: "parameter to output incompatible to int or float",
	ErrWrongParReturn: "return statement type incompatible to the function's type",
	ErrWrongParShift:  "shift parameter greater than 16",
	ErrOutOfMemory:    "out of memory",
	ErrHashKey:        "invalid hash map key",
}

// ID returns a short stable identifier such as "TYP0030".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1 && ic < 10:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 10 && ic < 20:
		return fmt.Sprintf("DCL%04d", ic)
	case ic >= 20 && ic < 30:
		return fmt.Sprintf("KND%04d", ic)
	case ic >= 30 && ic < 40:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 40 && ic < 50:
		return fmt.Sprintf("ARG%04d", ic)
	case ic >= 50 && ic < 60:
		return fmt.Sprintf("PAR%04d", ic)
	case ic >= 64 && ic < 70:
		return fmt.Sprintf("RES%04d", ic)
	}
	return "E0000"
}

// Title returns the fixed message of the code.
func (c Code) Title() string {
	if title, ok := codeTitles[c]; ok {
		return title
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s] %s", c.ID(), c.Title())
}

// ExitStatus is the process exit status for the code.
func (c Code) ExitStatus() int {
	if c == UnknownCode {
		return int(ErrUsage)
	}
	return int(c)
}

// IsResource reports whether the code belongs to the resource range.
func (c Code) IsResource() bool {
	return c == ErrOutOfMemory || c == ErrHashKey
}
