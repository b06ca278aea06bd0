package ast

import "minic/internal/stack"

// Node is one tree node. Children is fixed when the node is built; Next
// threads statement, function and argument sequences.
type Node struct {
	Content  LexicValue
	Children []*Node
	Next     *Node
}

// NewNode builds a node over content. Children are taken up to the first
// nil, so optional trailing children can be passed unconditionally.
func NewNode(content LexicValue, next *Node, children ...*Node) *Node {
	n := 0
	for n < len(children) && children[n] != nil {
		n++
	}
	var kids []*Node
	if n > 0 {
		kids = make([]*Node, n)
		copy(kids, children[:n])
	}
	return &Node{Content: content, Children: kids, Next: next}
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Chain builds a Next-linked sequence, keeping its last node so an
// append costs only the length of the appended piece.
type Chain struct {
	head, tail *Node
}

// Add links seq (itself possibly a chain) at the end. nil is ignored.
func (c *Chain) Add(seq *Node) {
	if seq == nil {
		return
	}
	if c.head == nil {
		c.head = seq
	} else {
		c.tail.Next = seq
	}
	c.tail = seq
	for c.tail.Next != nil {
		c.tail = c.tail.Next
	}
}

// Head returns the first node, nil for an empty chain.
func (c *Chain) Head() *Node { return c.head }

// FreeStats counts what Free released.
type FreeStats struct {
	Nodes    int
	Literals int // literal payloads
	Strings  int // identifier and string-literal buffers
}

// Free tears a tree down: content first, then the children in order, then
// the Next chain. It runs on an explicit stack and releases every node
// once even if the tree shares a subtree.
func Free(root *Node) FreeStats {
	var stats FreeStats
	if root == nil {
		return stats
	}
	seen := make(map[*Node]struct{})
	work := stack.New[*Node](16)
	work.Push(root)
	for !work.IsEmpty() {
		n, _ := work.Pop()
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		if n.Content.Kind == KindLiteral {
			stats.Literals++
		}
		if n.Content.ownsString() {
			stats.Strings++
		}
		n.Content = LexicValue{}

		// next уходит на стек первым, чтобы выйти после детей
		if n.Next != nil {
			work.Push(n.Next)
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			if n.Children[i] != nil {
				work.Push(n.Children[i])
			}
		}
		n.Children = nil
		n.Next = nil
		stats.Nodes++
	}
	return stats
}

// Walk visits the tree in pre-order: a node, its children, then its Next
// sibling. depth counts parent links; siblings share a depth. Returning
// false from fn skips the node's children but not its siblings.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	type frame struct {
		n     *Node
		depth int
	}
	if root == nil {
		return
	}
	work := stack.New[frame](16)
	work.Push(frame{root, 0})
	for !work.IsEmpty() {
		f, _ := work.Pop()
		descend := fn(f.n, f.depth)
		if f.n.Next != nil {
			work.Push(frame{f.n.Next, f.depth})
		}
		if !descend {
			continue
		}
		for i := len(f.n.Children) - 1; i >= 0; i-- {
			if c := f.n.Children[i]; c != nil {
				work.Push(frame{c, f.depth + 1})
			}
		}
	}
}
