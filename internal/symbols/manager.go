package symbols

import (
	"errors"
	"fmt"

	"minic/internal/diag"
	"minic/internal/hashmap"
	"minic/internal/source"
	"minic/internal/stack"
	"minic/internal/trace"
)

// DefaultStackCap is the initial capacity of the scope stack.
const DefaultStackCap = 128

// ErrGlobalScope is returned when the caller tries to pop the global scope.
var ErrGlobalScope = errors.New("symbols: the global scope cannot be popped")

// Scope is one nesting level's symbol store.
type Scope = hashmap.Map[*Symbol]

// Options configures a Manager.
type Options struct {
	Buckets  int // per-scope map size, hashmap.DefaultSize when 0
	StackCap int // DefaultStackCap when 0
	Tracer   trace.Tracer
}

// DeclState classifies where a name is declared relative to the current
// scope.
type DeclState uint8

const (
	Undeclared DeclState = iota
	DeclaredCurrent
	DeclaredEnclosing
)

func (s DeclState) String() string {
	switch s {
	case DeclaredCurrent:
		return "declared-current"
	case DeclaredEnclosing:
		return "declared-enclosing"
	}
	return "undeclared"
}

// Query is the outcome of Lookup. Depth is the index of the scope the
// symbol was found in, 0 being the global scope.
type Query struct {
	State  DeclState
	Symbol *Symbol
	Depth  int
}

// Found reports whether the name resolved to a symbol.
func (q Query) Found() bool { return q.State != Undeclared }

// Manager owns the scope stack of one compilation unit. The global scope
// is pushed on creation and stays at the bottom for the Manager's life.
type Manager struct {
	scopes  *stack.Stack[*Scope]
	buckets int
	tracer  trace.Tracer
}

// NewManager creates a manager with the global scope active.
func NewManager(opts Options) *Manager {
	if opts.Buckets <= 0 {
		opts.Buckets = hashmap.DefaultSize
	}
	if opts.StackCap <= 0 {
		opts.StackCap = DefaultStackCap
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	m := &Manager{
		scopes:  stack.New[*Scope](opts.StackCap).WithTracer(opts.Tracer),
		buckets: opts.Buckets,
		tracer:  opts.Tracer,
	}
	m.scopes.Push(m.newScope())
	return m
}

func (m *Manager) newScope() *Scope {
	return hashmap.New[*Symbol](m.buckets).WithTracer(m.tracer)
}

// Depth returns the number of active scopes, 1 when only the global scope
// is active.
func (m *Manager) Depth() int { return m.scopes.Len() }

// PushScope opens a new innermost scope.
func (m *Manager) PushScope() {
	m.scopes.Push(m.newScope())
	trace.Point(m.tracer, trace.ScopeNode, "scope.push", fmt.Sprintf("depth=%d", m.scopes.Len()))
}

// PopScope discards the innermost scope with every symbol it holds.
func (m *Manager) PopScope() error {
	if m.scopes.Len() <= 1 {
		return ErrGlobalScope
	}
	top, _ := m.scopes.Pop()
	trace.Point(m.tracer, trace.ScopeNode, "scope.pop", fmt.Sprintf("depth=%d symbols=%d", m.scopes.Len()+1, top.Len()))
	if m.tracer.Level().ShouldEmit(trace.ScopeNode) {
		top.Range(func(name string, sym *Symbol) bool {
			trace.Point(m.tracer, trace.ScopeNode, "scope.release", fmt.Sprintf("%s %s", sym.Kind, name))
			return true
		})
	}
	return nil
}

func (m *Manager) current() *Scope {
	top, _ := m.scopes.Peek()
	return top
}

// Declare inserts sym under name into the current scope. It does not look
// for an existing declaration; use Lookup first when redeclaration must be
// rejected. It returns false only when the scope is full.
func (m *Manager) Declare(name string, sym *Symbol) bool {
	return m.current().Insert(name, sym)
}

// DeclarePair declares p in the current scope.
func (m *Manager) DeclarePair(p Pair) bool {
	return m.Declare(p.Name, p.Symbol)
}

// Lookup resolves name from the innermost scope outwards.
func (m *Manager) Lookup(name string) Query {
	top := m.scopes.Len() - 1
	for i := top; i >= 0; i-- {
		scope, _ := m.scopes.At(i)
		if sym, ok := scope.Lookup(name); ok {
			state := DeclaredEnclosing
			if i == top {
				state = DeclaredCurrent
			}
			return Query{State: state, Symbol: sym, Depth: i}
		}
	}
	return Query{State: Undeclared, Depth: -1}
}

// CheckUsage resolves name used as kind at loc. An undeclared name yields
// ErrUndeclared; a symbol of another kind yields the mismatch code of the
// symbol's own kind, pointing at both the use and the declaration.
func (m *Manager) CheckUsage(name string, kind Kind, loc source.Location) (*Symbol, error) {
	q := m.Lookup(name)
	if !q.Found() {
		return nil, diag.New(diag.ErrUndeclared, name, loc)
	}
	if !q.Symbol.MatchesKind(kind) {
		return nil, diag.New(kindMismatch(q.Symbol.Kind), name, loc).With(q.Symbol.Loc)
	}
	return q.Symbol, nil
}

func kindMismatch(k Kind) diag.Code {
	switch k {
	case KindArray:
		return diag.ErrVector
	case KindFunction:
		return diag.ErrFunction
	}
	return diag.ErrVariable
}
