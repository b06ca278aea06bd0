package sema

import (
	"fmt"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/symbols"
	"minic/internal/types"
)

// Literal builds a literal leaf.
func (tc *Checker) Literal(v ast.LexicValue) *ast.Node {
	return tc.typed(ast.NewNode(v, nil), v.Lit.Type)
}

// Variable resolves a scalar use.
func (tc *Checker) Variable(v ast.LexicValue) (*ast.Node, error) {
	sym, err := tc.scopes.CheckUsage(v.Ident, symbols.KindVariable, v.Loc)
	if err != nil {
		return nil, err
	}
	n := ast.NewNode(v, nil)
	tc.syms[n] = sym
	return tc.typed(n, sym.Type), nil
}

// Index resolves name[index].
func (tc *Checker) Index(v ast.LexicValue, bracket ast.LexicValue, index *ast.Node) (*ast.Node, error) {
	sym, err := tc.scopes.CheckUsage(v.Ident, symbols.KindArray, v.Loc)
	if err != nil {
		return nil, err
	}
	if err := tc.requireArith(index); err != nil {
		return nil, err
	}
	id := ast.NewNode(v, nil)
	tc.syms[id] = sym
	tc.typed(id, sym.Type)
	n := ast.NewNode(ast.Expr(ast.ExprIndex, bracket.Loc), nil, id, index)
	tc.syms[n] = sym
	return tc.typed(n, sym.Type), nil
}

// Call resolves name(args...). args is the head of the argument chain.
// Arity and argument types are not checked.
func (tc *Checker) Call(v ast.LexicValue, args *ast.Node) (*ast.Node, error) {
	sym, err := tc.scopes.CheckUsage(v.Ident, symbols.KindFunction, v.Loc)
	if err != nil {
		return nil, err
	}
	n := ast.NewNode(ast.Call(v.Ident, v.Loc), nil, args)
	tc.syms[n] = sym
	if ret, ok := tc.returns[sym]; ok && ret.known {
		tc.sizes[n] = ret.size
	}
	return tc.typed(n, sym.Type), nil
}

// Unary builds op operand. A sign in front of a numeric literal is folded
// into the literal.
func (tc *Checker) Unary(op ast.LexicValue, operand *ast.Node) (*ast.Node, error) {
	if (op.Expr == ast.ExprSignNeg || op.Expr == ast.ExprSignPos) &&
		operand.Content.Kind == ast.KindLiteral && operand.Content.Lit.Type.IsNumeric() {
		ast.InvertNumericLiteral(&operand.Content.Lit, op.Expr)
		operand.Content.Loc = spanLoc(op.Loc, operand.Content.Loc)
		return operand, nil
	}
	if err := tc.requireArith(operand); err != nil {
		return nil, err
	}
	t := tc.TypeOf(operand)
	if op.Expr.IsLogical() {
		t = types.Bool
	}
	return tc.typed(ast.NewNode(op, nil, operand), t), nil
}

// Binary builds lhs op rhs. Strings and chars only compare for equality
// with their own type; everything else needs arithmetic operands and
// yields the wider type, or bool for logical operators.
func (tc *Checker) Binary(op ast.LexicValue, lhs, rhs *ast.Node) (*ast.Node, error) {
	lt, rt := tc.TypeOf(lhs), tc.TypeOf(rhs)
	n := ast.NewNode(op, nil, lhs, rhs)

	if (op.Expr == ast.ExprEq || op.Expr == ast.ExprNe) && lt == rt && lt.IsDefined() {
		return tc.typed(n, types.Bool), nil
	}
	for _, side := range []*ast.Node{lhs, rhs} {
		if t := tc.TypeOf(side); types.FamilyOf(t) != types.FamilyArith {
			other := rhs
			if side == rhs {
				other = lhs
			}
			return nil, diag.New(operandError(t),
				fmt.Sprintf("%s %s %s", lt, op.Expr.Symbol(), rt),
				side.Content.Loc).With(other.Content.Loc)
		}
	}
	if op.Expr.IsLogical() {
		return tc.typed(n, types.Bool), nil
	}
	return tc.typed(n, types.Infer(lt, rt)), nil
}

// Ternary builds cond ? a : b.
func (tc *Checker) Ternary(op ast.LexicValue, cond, a, b *ast.Node) (*ast.Node, error) {
	if err := tc.requireArith(cond); err != nil {
		return nil, err
	}
	at, bt := tc.TypeOf(a), tc.TypeOf(b)
	t := types.Infer(at, bt)
	if !t.IsDefined() {
		return nil, diag.New(conversionError(bt, at), fmt.Sprintf("%s : %s", at, bt),
			b.Content.Loc).With(a.Content.Loc)
	}
	n := ast.NewNode(op, nil, cond, a, b)
	if t == types.String {
		as, bs := tc.stringSize(a), tc.stringSize(b)
		if as.known && bs.known {
			tc.sizes[n] = max(as.size, bs.size)
		}
	}
	return tc.typed(n, t), nil
}
