// Package sema builds the syntax tree from grammar reductions and checks
// each reduction against the scope stack as it happens. The first
// violation is returned as a *diag.Error and the unit stops there.
package sema

import (
	"math"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/source"
	"minic/internal/symbols"
	"minic/internal/trace"
	"minic/internal/types"
)

// DefaultShiftLimit is the largest shift amount accepted.
const DefaultShiftLimit = 16

// Options configures a Checker.
type Options struct {
	Scopes     symbols.Options
	ShiftLimit int32 // DefaultShiftLimit when 0
	Tracer     trace.Tracer
}

// Checker is the tree builder plus the semantic rules. Its methods are
// called by the parser in reduction order.
type Checker struct {
	scopes     *symbols.Manager
	types      map[*ast.Node]types.Type
	syms       map[*ast.Node]*symbols.Symbol
	sizes      map[*ast.Node]uint32 // длина строкового значения, если известна
	returns    map[*symbols.Symbol]strSize
	fn         *symbols.Symbol // enclosing function, nil at top level
	shiftLimit int32
	tracer     trace.Tracer
	stats      Stats
}

// Stats summarizes a checked unit.
type Stats struct {
	Globals   int
	Functions int
	Locals    int
	MaxDepth  int
}

// NewChecker creates a checker with only the global scope active.
func NewChecker(opts Options) *Checker {
	if opts.ShiftLimit <= 0 {
		opts.ShiftLimit = DefaultShiftLimit
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	if opts.Scopes.Tracer == nil {
		opts.Scopes.Tracer = opts.Tracer
	}
	return &Checker{
		scopes:     symbols.NewManager(opts.Scopes),
		types:      make(map[*ast.Node]types.Type),
		syms:       make(map[*ast.Node]*symbols.Symbol),
		sizes:      make(map[*ast.Node]uint32),
		returns:    make(map[*symbols.Symbol]strSize),
		shiftLimit: opts.ShiftLimit,
		tracer:     opts.Tracer,
		stats:      Stats{MaxDepth: 1},
	}
}

// Scopes exposes the scope manager.
func (tc *Checker) Scopes() *symbols.Manager { return tc.scopes }

// Stats returns the counters collected so far.
func (tc *Checker) Stats() Stats { return tc.stats }

// TypeOf returns the type inferred for n, Undefined for commands.
func (tc *Checker) TypeOf(n *ast.Node) types.Type { return tc.types[n] }

// SymbolOf returns the symbol an identifier node refers to.
func (tc *Checker) SymbolOf(n *ast.Node) *symbols.Symbol { return tc.syms[n] }

func (tc *Checker) typed(n *ast.Node, t types.Type) *ast.Node {
	tc.types[n] = t
	return n
}

// EnterBlock opens a nested block scope.
func (tc *Checker) EnterBlock() {
	tc.scopes.PushScope()
	tc.stats.MaxDepth = max(tc.stats.MaxDepth, tc.scopes.Depth())
}

// LeaveBlock closes the innermost block scope.
func (tc *Checker) LeaveBlock() error {
	return tc.scopes.PopScope()
}

// conversionError picks the code for storing or combining a value of type
// from where to is expected.
func conversionError(from, to types.Type) diag.Code {
	switch {
	case from == types.String && to != types.String:
		return diag.ErrStringToX
	case from == types.Char && to != types.Char:
		return diag.ErrCharToX
	}
	return diag.ErrWrongType
}

// operandError picks the code for using a value of type t as an
// arithmetic operand.
func operandError(t types.Type) diag.Code {
	switch t {
	case types.String:
		return diag.ErrStringToX
	case types.Char:
		return diag.ErrCharToX
	}
	return diag.ErrWrongType
}

// requireArith checks that n can stand where an int, float or bool is
// expected (conditions, operands, indices).
func (tc *Checker) requireArith(n *ast.Node) error {
	t := tc.TypeOf(n)
	if types.FamilyOf(t) == types.FamilyArith {
		return nil
	}
	return diag.New(operandError(t), t.String(), n.Content.Loc)
}

// spanLoc covers from..to when both sit on one line, otherwise from.
func spanLoc(from, to source.Location) source.Location {
	if from.Line != to.Line || to.End() < from.Column {
		return from
	}
	width := to.End() - from.Column
	if width > math.MaxUint16 {
		width = math.MaxUint16
	}
	from.Length = uint16(width)
	return from
}
