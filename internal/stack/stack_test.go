package stack

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"minic/internal/trace"
)

func TestPushPopOrder(t *testing.T) {
	s := New[int](2)
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	be.Equal(t, s.Len(), 3)

	for want := 3; want >= 1; want-- {
		got, ok := s.Pop()
		be.True(t, ok)
		be.Equal(t, got, want)
	}
	_, ok := s.Pop()
	be.Equal(t, ok, false)
	be.True(t, s.IsEmpty())
}

func TestGrowth(t *testing.T) {
	s := New[string](0)
	be.Equal(t, s.Cap(), 0)
	s.Push("a")
	be.Equal(t, s.Cap(), 1)
	s.Push("b")
	be.Equal(t, s.Cap(), 3)
	s.Push("c")
	s.Push("d")
	be.Equal(t, s.Cap(), 7)
}

func TestPeekAndAt(t *testing.T) {
	s := New[int](4)
	_, ok := s.Peek()
	be.Equal(t, ok, false)

	s.Push(10)
	s.Push(20)
	top, ok := s.Peek()
	be.True(t, ok)
	be.Equal(t, top, 20)
	be.Equal(t, s.Len(), 2)

	bottom, ok := s.At(0)
	be.True(t, ok)
	be.Equal(t, bottom, 10)
	_, ok = s.At(2)
	be.Equal(t, ok, false)
	_, ok = s.At(-1)
	be.Equal(t, ok, false)
}

func TestGrowthIsTraced(t *testing.T) {
	var buf bytes.Buffer
	s := New[int](1).WithTracer(trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText))
	s.Push(1)
	s.Push(2)
	be.True(t, strings.Contains(buf.String(), "stack.grow (1 -> 3)"))
}
