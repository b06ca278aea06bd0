package parser

import (
	"minic/internal/ast"
	"minic/internal/token"
)

// Уровни приоритета бинарных операторов, от слабого к сильному.
// Тернарный оператор разбирается отдельно, ниже всех.
const (
	precNone = iota
	precLogOr
	precLogAnd
	precBitOr
	precBitAnd
	precEquality
	precCompare
	precAdditive
	precMultiplicative
	precPower
)

type binaryInfo struct {
	prec  int
	op    ast.ExprOp
	right bool // правоассоциативный
}

var binaryOps = map[token.Kind]binaryInfo{
	token.OrOr:    {prec: precLogOr, op: ast.ExprLogOr},
	token.AndAnd:  {prec: precLogAnd, op: ast.ExprLogAnd},
	token.Pipe:    {prec: precBitOr, op: ast.ExprBitOr},
	token.Amp:     {prec: precBitAnd, op: ast.ExprBitAnd},
	token.EqEq:    {prec: precEquality, op: ast.ExprEq},
	token.BangEq:  {prec: precEquality, op: ast.ExprNe},
	token.Lt:      {prec: precCompare, op: ast.ExprLt},
	token.Gt:      {prec: precCompare, op: ast.ExprGt},
	token.LtEq:    {prec: precCompare, op: ast.ExprLe},
	token.GtEq:    {prec: precCompare, op: ast.ExprGe},
	token.Plus:    {prec: precAdditive, op: ast.ExprAdd},
	token.Minus:   {prec: precAdditive, op: ast.ExprSub},
	token.Star:    {prec: precMultiplicative, op: ast.ExprMul},
	token.Slash:   {prec: precMultiplicative, op: ast.ExprDiv},
	token.Percent: {prec: precMultiplicative, op: ast.ExprRem},
	token.Caret:   {prec: precPower, op: ast.ExprExp, right: true},
}

var unaryOps = map[token.Kind]ast.ExprOp{
	token.Plus:     ast.ExprSignPos,
	token.Minus:    ast.ExprSignNeg,
	token.Bang:     ast.ExprNegate,
	token.Amp:      ast.ExprAddr,
	token.Star:     ast.ExprDeref,
	token.Question: ast.ExprLogic,
	token.Hash:     ast.ExprHash,
}

func binaryOp(k token.Kind) (binaryInfo, bool) {
	info, ok := binaryOps[k]
	return info, ok
}

func unaryOp(tok token.Token) ast.LexicValue {
	return ast.Expr(unaryOps[tok.Kind], tok.Loc)
}
