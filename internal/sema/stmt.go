package sema

import (
	"fmt"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/symbols"
	"minic/internal/types"
)

// Assign builds lhs = rhs. lhs is a variable or an indexed array.
func (tc *Checker) Assign(op ast.LexicValue, lhs, rhs *ast.Node) (*ast.Node, error) {
	lt, rt := tc.TypeOf(lhs), tc.TypeOf(rhs)
	if !types.Convertible(rt, lt) {
		return nil, diag.New(conversionError(rt, lt), fmt.Sprintf("%s = %s", lt, rt),
			rhs.Content.Loc).With(lhs.Content.Loc)
	}
	if sym := tc.syms[lhs]; sym != nil {
		if lt == types.String && sym.Kind == symbols.KindVariable {
			// размер сверяется, только когда известны оба
			sz := tc.stringSize(rhs)
			switch {
			case !sz.known:
			case !sym.Initialized:
				sym.InitString(sz.size)
			case sz.size > sym.Size:
				return nil, diag.New(diag.ErrStringSize,
					fmt.Sprintf("%d bytes into %d", sz.size, sym.Size), rhs.Content.Loc).With(lhs.Content.Loc, sym.Loc)
			}
		} else {
			sym.Initialized = true
		}
	}
	return ast.NewNode(ast.Cmd(ast.CmdAssign, op.Loc), nil, lhs, rhs), nil
}

// Input builds input operand; the operand must be int or float.
func (tc *Checker) Input(kw ast.LexicValue, operand *ast.Node) (*ast.Node, error) {
	if !tc.TypeOf(operand).IsNumeric() {
		return nil, diag.New(diag.ErrWrongParInput, tc.TypeOf(operand).String(), operand.Content.Loc)
	}
	if sym := tc.syms[operand]; sym != nil {
		sym.Initialized = true
	}
	return ast.NewNode(ast.Cmd(ast.CmdInput, kw.Loc), nil, operand), nil
}

// Output builds output operand; the operand must be int or float.
func (tc *Checker) Output(kw ast.LexicValue, operand *ast.Node) (*ast.Node, error) {
	if !tc.TypeOf(operand).IsNumeric() {
		return nil, diag.New(diag.ErrWrongParOutput, tc.TypeOf(operand).String(), operand.Content.Loc)
	}
	return ast.NewNode(ast.Cmd(ast.CmdOutput, kw.Loc), nil, operand), nil
}

// Return builds return value; value must convert to the function's type.
func (tc *Checker) Return(kw ast.LexicValue, value *ast.Node) (*ast.Node, error) {
	if tc.fn == nil {
		return nil, diag.New(diag.ErrSyntax, "return outside of a function", kw.Loc)
	}
	vt := tc.TypeOf(value)
	if !types.Convertible(vt, tc.fn.Type) {
		return nil, diag.New(diag.ErrWrongParReturn, fmt.Sprintf("%s returned from %s function", vt, tc.fn.Type),
			value.Content.Loc).With(tc.fn.Loc)
	}
	if tc.fn.Type == types.String {
		tc.noteReturn(tc.fn, tc.stringSize(value))
	}
	return ast.NewNode(ast.Cmd(ast.CmdReturn, kw.Loc), nil, value), nil
}

// noteReturn folds one returned string size into what calls of fn see:
// the largest size, known only while every return is known.
func (tc *Checker) noteReturn(fn *symbols.Symbol, sz strSize) {
	prev, seen := tc.returns[fn]
	if seen {
		sz = strSize{size: max(prev.size, sz.size), known: prev.known && sz.known}
	}
	tc.returns[fn] = sz
}

// Shift builds lhs << amount or lhs >> amount. amount is an int literal
// no greater than the shift limit.
func (tc *Checker) Shift(op ast.LexicValue, lhs *ast.Node, amount ast.LexicValue) (*ast.Node, error) {
	if err := tc.requireArith(lhs); err != nil {
		return nil, err
	}
	if amount.Lit.Int > tc.shiftLimit {
		return nil, diag.New(diag.ErrWrongParShift, fmt.Sprintf("%d > %d", amount.Lit.Int, tc.shiftLimit), amount.Loc)
	}
	return ast.NewNode(op, nil, lhs, tc.Literal(amount)), nil
}

// If builds if (cond) then [else]. Empty branches are nil; an empty then
// followed by an else keeps a nil slot so the else stays the third child.
func (tc *Checker) If(kw ast.LexicValue, cond, then, els *ast.Node) (*ast.Node, error) {
	if err := tc.requireArith(cond); err != nil {
		return nil, err
	}
	content := ast.Cmd(ast.CmdIf, kw.Loc)
	if then == nil && els != nil {
		return &ast.Node{Content: content, Children: []*ast.Node{cond, nil, els}}, nil
	}
	return ast.NewNode(content, nil, cond, then, els), nil
}

// While builds while (cond) do body.
func (tc *Checker) While(kw ast.LexicValue, cond, body *ast.Node) (*ast.Node, error) {
	if err := tc.requireArith(cond); err != nil {
		return nil, err
	}
	return ast.NewNode(ast.Cmd(ast.CmdWhile, kw.Loc), nil, cond, body), nil
}

// For builds for (init : cond : step) body.
func (tc *Checker) For(kw ast.LexicValue, init, cond, step, body *ast.Node) (*ast.Node, error) {
	if err := tc.requireArith(cond); err != nil {
		return nil, err
	}
	return ast.NewNode(ast.Cmd(ast.CmdFor, kw.Loc), nil, init, cond, step, body), nil
}

// Jump builds break or continue.
func (tc *Checker) Jump(kw ast.LexicValue) *ast.Node {
	return ast.NewNode(kw, nil)
}
