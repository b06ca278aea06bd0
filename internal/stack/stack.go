// Package stack is a growable LIFO used for the scope stack and for the
// iterative tree walks.
package stack

import (
	"fmt"

	"minic/internal/trace"
)

// Stack is a LIFO over a slice whose capacity grows as cap*2+1.
type Stack[T any] struct {
	items  []T
	tracer trace.Tracer
}

// New creates an empty stack with the given initial capacity.
func New[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(capacity, 0)), tracer: trace.Nop}
}

// WithTracer routes growth events to t.
func (s *Stack[T]) WithTracer(t trace.Tracer) *Stack[T] {
	if t == nil {
		t = trace.Nop
	}
	s.tracer = t
	return s
}

// Push adds v on top.
func (s *Stack[T]) Push(v T) {
	if len(s.items) == cap(s.items) {
		grown := make([]T, len(s.items), cap(s.items)*2+1)
		copy(grown, s.items)
		trace.Point(s.tracer, trace.ScopeNode, "stack.grow", fmt.Sprintf("%d -> %d", cap(s.items), cap(grown)))
		s.items = grown
	}
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// At returns the i-th element counting from the bottom (0).
func (s *Stack[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) Cap() int { return cap(s.items) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
