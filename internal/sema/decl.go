package sema

import (
	"fmt"

	"fortio.org/safecast"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/symbols"
	"minic/internal/trace"
	"minic/internal/types"
)

// Decl is one declared name as the parser saw it.
type Decl struct {
	Pair symbols.Pair
	// Init is the initializer of a local declaration, nil when absent.
	Init *ast.Node
}

// Variable makes a pair for a scalar declaration.
func Variable(v ast.LexicValue) symbols.Pair {
	return symbols.NewPair(v, symbols.KindVariable)
}

// Array makes a pair for name[count], count being an int literal. The
// count must fit the symbol's element counter.
func Array(v, count ast.LexicValue) (symbols.Pair, error) {
	p := symbols.NewPair(v, symbols.KindArray)
	n, err := safecast.Conv[uint32](count.Lit.Int)
	if err != nil {
		return p, diag.Resource(diag.ErrOutOfMemory, fmt.Errorf("array %s: %w", v.Ident, err)).With(count.Loc)
	}
	p.Symbol.InitArray(n)
	return p, nil
}

// declare puts p into the current scope after the redeclaration check.
func (tc *Checker) declare(p symbols.Pair) error {
	if q := tc.scopes.Lookup(p.Name); q.State == symbols.DeclaredCurrent {
		return diag.New(diag.ErrDeclared, p.Name, p.Symbol.Loc).With(q.Symbol.Loc)
	}
	if !tc.scopes.DeclarePair(p) {
		return diag.New(diag.ErrOutOfMemory, "scope is full: "+p.Name, p.Symbol.Loc)
	}
	trace.Point(tc.tracer, trace.ScopeNode, "declare", fmt.Sprintf("%s %s %s depth=%d",
		p.Symbol.Kind, p.Symbol.Type, p.Name, tc.scopes.Depth()))
	return nil
}

// setType settles the declared type of every pair.
func setType(pairs []symbols.Pair, t types.Type, flags symbols.Flags) {
	for _, p := range pairs {
		p.Symbol.Flags |= flags
	}
	symbols.SetTypeAll(pairs, t)
}

// DeclareGlobals declares a global declaration list of type t.
func (tc *Checker) DeclareGlobals(pairs []symbols.Pair, t types.Type, flags symbols.Flags) error {
	setType(pairs, t, flags)
	for _, p := range pairs {
		if err := tc.declare(p); err != nil {
			return err
		}
		tc.stats.Globals++
	}
	return nil
}

// DeclareLocals declares a local declaration list of type t and returns
// the chain of "<=" nodes for the initialized names. Uninitialized names
// produce no nodes.
func (tc *Checker) DeclareLocals(decls []Decl, t types.Type, flags symbols.Flags) (*ast.Node, error) {
	pairs := make([]symbols.Pair, len(decls))
	for i, d := range decls {
		pairs[i] = d.Pair
	}
	setType(pairs, t, flags)

	var inits ast.Chain
	for _, d := range decls {
		if d.Init != nil {
			if err := tc.initialize(d.Pair.Symbol, d.Init); err != nil {
				return nil, err
			}
		}
		if err := tc.declare(d.Pair); err != nil {
			return nil, err
		}
		tc.stats.Locals++
		if d.Init == nil {
			continue
		}
		id := ast.NewNode(ast.Ident(d.Pair.Name, d.Pair.Symbol.Loc), nil)
		tc.syms[id] = d.Pair.Symbol
		tc.typed(id, t)
		initNode := ast.NewNode(ast.Cmd(ast.CmdInit, d.Pair.Symbol.Loc), nil, id, d.Init)
		inits.Add(initNode)
	}
	return inits.Head(), nil
}

// initialize checks an initializer against the declared symbol. A string
// whose initializer has no known size stays unsized.
func (tc *Checker) initialize(sym *symbols.Symbol, value *ast.Node) error {
	vt := tc.TypeOf(value)
	if !types.Convertible(vt, sym.Type) {
		return diag.New(conversionError(vt, sym.Type), fmt.Sprintf("%s <= %s", sym.Type, vt),
			value.Content.Loc).With(sym.Loc)
	}
	if sym.Type == types.String {
		if sz := tc.stringSize(value); sz.known {
			sym.InitString(sz.size)
		}
		return nil
	}
	sym.Initialized = true
	return nil
}

// strSize is the length of a string value; known is false when it can
// only be found at run time.
type strSize struct {
	size  uint32
	known bool
}

// stringSize is the length of a string literal, the size recorded for a
// call or ternary, or the size of an initialized string variable.
func (tc *Checker) stringSize(n *ast.Node) strSize {
	if n.Content.Kind == ast.KindLiteral {
		size, err := safecast.Conv[uint32](len(n.Content.Lit.Str))
		if err != nil {
			return strSize{size: ^uint32(0), known: true}
		}
		return strSize{size: size, known: true}
	}
	if size, ok := tc.sizes[n]; ok {
		return strSize{size: size, known: true}
	}
	if sym := tc.syms[n]; sym != nil && sym.Kind == symbols.KindVariable && sym.Initialized {
		return strSize{size: sym.Size, known: true}
	}
	return strSize{}
}

// BeginFunction declares a function in the global scope, opens its scope
// and declares the parameters there. The body shares that scope.
func (tc *Checker) BeginFunction(name ast.LexicValue, ret types.Type, flags symbols.Flags, params []symbols.Pair) error {
	fn := symbols.NewPair(name, symbols.KindFunction)
	fn.Symbol.SetType(ret)
	fn.Symbol.Flags = flags
	fn.Symbol.InitFunction(params)
	if err := tc.declare(fn); err != nil {
		return err
	}
	tc.stats.Functions++
	tc.fn = fn.Symbol

	// в области видимости живут копии: сигнатура в Params не меняется
	// присваиваниями в теле
	tc.EnterBlock()
	for _, p := range params {
		local := *p.Symbol
		local.Initialized = local.Type != types.String
		if err := tc.declare(symbols.Pair{Name: p.Name, Symbol: &local}); err != nil {
			return err
		}
	}
	return nil
}

// EndFunction closes the function scope and builds the function node.
func (tc *Checker) EndFunction(name ast.LexicValue, body *ast.Node) (*ast.Node, error) {
	if err := tc.LeaveBlock(); err != nil {
		return nil, err
	}
	tc.fn = nil
	return ast.NewNode(ast.Func(name.Ident, name.Loc), nil, body), nil
}
