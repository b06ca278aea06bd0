package ast

import "fmt"

// ExprOp tags an expression node.
type ExprOp uint8

const (
	ExprTernary ExprOp = iota
	ExprAdd
	ExprSub
	ExprMul
	ExprDiv
	ExprExp
	ExprRem
	ExprBitAnd
	ExprBitOr
	ExprLogAnd
	ExprLogOr
	ExprGe
	ExprLe
	ExprGt
	ExprLt
	ExprEq
	ExprNe
	// унарные
	ExprDeref
	ExprAddr
	ExprHash
	ExprSignPos
	ExprSignNeg
	ExprNegate
	ExprLogic
	ExprIndex
)

// Symbol is the operator as written in source; "?:" for the ternary and
// "[]" for indexing.
func (op ExprOp) Symbol() string {
	switch op {
	case ExprTernary:
		return "?:"
	case ExprAdd, ExprSignPos:
		return "+"
	case ExprSub, ExprSignNeg:
		return "-"
	case ExprMul, ExprDeref:
		return "*"
	case ExprDiv:
		return "/"
	case ExprExp:
		return "^"
	case ExprRem:
		return "%"
	case ExprBitAnd, ExprAddr:
		return "&"
	case ExprBitOr:
		return "|"
	case ExprLogAnd:
		return "&&"
	case ExprLogOr:
		return "||"
	case ExprGe:
		return ">="
	case ExprLe:
		return "<="
	case ExprGt:
		return ">"
	case ExprLt:
		return "<"
	case ExprEq:
		return "=="
	case ExprNe:
		return "!="
	case ExprHash:
		return "#"
	case ExprNegate:
		return "!"
	case ExprLogic:
		return "?"
	case ExprIndex:
		return "[]"
	}
	return fmt.Sprintf("ExprOp(%d)", op)
}

// IsUnary reports whether op takes a single operand.
func (op ExprOp) IsUnary() bool { return op >= ExprDeref && op <= ExprLogic }

// IsLogical reports whether op yields a bool.
func (op ExprOp) IsLogical() bool {
	switch op {
	case ExprLogAnd, ExprLogOr, ExprGe, ExprLe, ExprGt, ExprLt, ExprEq, ExprNe, ExprNegate, ExprLogic:
		return true
	}
	return false
}

// CmdOp tags a command node.
type CmdOp uint8

const (
	CmdReturn CmdOp = iota
	CmdContinue
	CmdBreak
	CmdFor
	CmdWhile
	CmdInput
	CmdOutput
	CmdIf
	CmdShiftLeft
	CmdShiftRight
	CmdAssign
	CmdDecl
	CmdInit
)

// Symbol is the command label: the keyword, or the operator for
// assignment, initialization and shifts.
func (op CmdOp) Symbol() string {
	switch op {
	case CmdReturn:
		return "return"
	case CmdContinue:
		return "continue"
	case CmdBreak:
		return "break"
	case CmdFor:
		return "for"
	case CmdWhile:
		return "while"
	case CmdInput:
		return "input"
	case CmdOutput:
		return "output"
	case CmdIf:
		return "if"
	case CmdShiftLeft:
		return "<<"
	case CmdShiftRight:
		return ">>"
	case CmdAssign:
		return "="
	case CmdDecl:
		return "decl"
	case CmdInit:
		return "<="
	}
	return fmt.Sprintf("CmdOp(%d)", op)
}
