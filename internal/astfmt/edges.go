package astfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"minic/internal/ast"
	"minic/internal/stack"
)

// WriteEdges writes the edge list: for every node its "id, child" lines
// (children in order, then next), then the same for each child and for
// next, and finally the node's own `id [label="..."]` line. Ids are
// 0x%04x sequence numbers.
func WriteEdges(w io.Writer, root *ast.Node) error {
	type frame struct {
		n     *ast.Node
		label bool // пора печатать метку
	}
	bw := bufio.NewWriter(w)
	ids := make(idTable)
	work := stack.New[frame](16)
	work.Push(frame{n: root})
	for !work.IsEmpty() {
		f, _ := work.Pop()
		if f.n == nil {
			continue
		}
		id, err := ids.id(f.n)
		if err != nil {
			return err
		}
		if f.label {
			fmt.Fprintf(bw, "0x%04x [label=\"%s\"]\n", id, escapeLabel(f.n.Content.Label()))
			continue
		}

		for _, c := range f.n.Children {
			if c == nil {
				continue
			}
			if err := writeEdge(bw, ids, id, c); err != nil {
				return err
			}
		}
		if f.n.Next != nil {
			if err := writeEdge(bw, ids, id, f.n.Next); err != nil {
				return err
			}
		}

		// LIFO: дети по порядку, затем next, затем своя метка
		work.Push(frame{n: f.n, label: true})
		work.Push(frame{n: f.n.Next})
		for i := len(f.n.Children) - 1; i >= 0; i-- {
			work.Push(frame{n: f.n.Children[i]})
		}
	}
	return bw.Flush()
}

func writeEdge(w io.Writer, ids idTable, from uint32, to *ast.Node) error {
	toID, err := ids.id(to)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "0x%04x, 0x%04x\n", from, toID)
	return err
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeLabel(s string) string { return labelEscaper.Replace(s) }
