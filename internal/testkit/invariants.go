package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"minic/internal/ast"
	"minic/internal/source"
)

// CheckTreeInvariants runs a minimal set of invariants on a checked tree:
// 1) every node has a location on an existing line of file
// 2) every match fits inside its line
// 3) the top-level chain holds functions only, and functions appear nowhere else
// 4) no node is reachable twice
func CheckTreeInvariants(root *ast.Node, file *source.File) error {
	if file == nil {
		return fmt.Errorf("nil file")
	}
	for fn := root; fn != nil; fn = fn.Next {
		if fn.Content.Kind != ast.KindFunc {
			return fmt.Errorf("%s: top-level node %q is %s, not a function",
				fn.Content.Loc, fn.Content.Label(), fn.Content.Kind)
		}
	}

	lines := file.LineCount()
	seen := make(map[*ast.Node]struct{})
	type item struct {
		n   *ast.Node
		top bool
	}
	work := []item{{root, true}}
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		n := it.n
		if n == nil {
			continue
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%s: node %q reachable twice", n.Content.Loc, n.Content.Label())
		}
		seen[n] = struct{}{}

		loc := n.Content.Loc
		if !loc.IsValid() || loc.Line > lines {
			return fmt.Errorf("node %q has location %s outside the file (%d lines)", n.Content.Label(), loc, lines)
		}
		lineLen, err := safecast.Conv[uint32](len(file.Line(loc.Line)))
		if err != nil {
			return fmt.Errorf("line length overflow: %w", err)
		}
		if loc.End() > lineLen+1 {
			return fmt.Errorf("%s: match of %d bytes runs past the line end (%d bytes)", loc, loc.Length, lineLen)
		}
		if !it.top && n.Content.Kind == ast.KindFunc {
			return fmt.Errorf("%s: nested function node %q", loc, n.Content.Label())
		}

		work = append(work, item{n.Next, it.top})
		for i := len(n.Children) - 1; i >= 0; i-- {
			work = append(work, item{n.Children[i], false})
		}
	}
	return nil
}
