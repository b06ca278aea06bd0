package astfmt

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"minic/internal/ast"
)

// SchemaVersion is bumped whenever Table changes shape.
const SchemaVersion uint16 = 1

// Table is the msgpack export: every node once, in pre-order, linked by
// id. Id 0 means "none".
type Table struct {
	Version uint16   `msgpack:"version"`
	File    string   `msgpack:"file"`
	Root    uint32   `msgpack:"root"`
	Nodes   []Record `msgpack:"nodes"`
}

// Record is one node of a Table.
type Record struct {
	ID       uint32   `msgpack:"id"`
	Kind     string   `msgpack:"kind"`
	Label    string   `msgpack:"label"`
	Type     string   `msgpack:"type,omitempty"`
	Line     uint32   `msgpack:"line"`
	Column   uint32   `msgpack:"col"`
	Children []uint32 `msgpack:"children,omitempty"` // 0 для пустого слота
	Next     uint32   `msgpack:"next,omitempty"`
}

// BuildTable flattens the tree rooted at root.
func BuildTable(root *ast.Node, file string, typer Typer) (*Table, error) {
	tbl := &Table{Version: SchemaVersion, File: file}
	ids := make(idTable)
	var err error
	ast.Walk(root, func(n *ast.Node, _ int) bool {
		if err != nil {
			return false
		}
		var rec Record
		if rec, err = record(ids, n, typer); err != nil {
			return false
		}
		tbl.Nodes = append(tbl.Nodes, rec)
		return true
	})
	if err != nil {
		return nil, err
	}
	if root != nil {
		tbl.Root = ids[root]
	}
	return tbl, nil
}

func record(ids idTable, n *ast.Node, typer Typer) (Record, error) {
	id, err := ids.id(n)
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:     id,
		Kind:   n.Content.Kind.String(),
		Label:  n.Content.Label(),
		Line:   n.Content.Loc.Line,
		Column: n.Content.Loc.Column,
	}
	if t := typeOf(typer, n); t.IsDefined() {
		rec.Type = t.String()
	}
	for _, c := range n.Children {
		var cid uint32
		if c != nil {
			if cid, err = ids.id(c); err != nil {
				return Record{}, err
			}
		}
		rec.Children = append(rec.Children, cid)
	}
	if n.Next != nil {
		if rec.Next, err = ids.id(n.Next); err != nil {
			return Record{}, err
		}
	}
	return rec, nil
}

// WriteMsgpack encodes the node table of root to w.
func WriteMsgpack(w io.Writer, root *ast.Node, file string, typer Typer) error {
	tbl, err := BuildTable(root, file, typer)
	if err != nil {
		return err
	}
	return writeTable(w, tbl)
}

func writeTable(w io.Writer, tbl *Table) error {
	if err := msgpack.NewEncoder(w).Encode(tbl); err != nil {
		return fmt.Errorf("encode export table: %w", err)
	}
	return nil
}

// ReadMsgpack decodes a table written by WriteMsgpack.
func ReadMsgpack(r io.Reader) (*Table, error) {
	var tbl Table
	if err := msgpack.NewDecoder(r).Decode(&tbl); err != nil {
		return nil, fmt.Errorf("decode export table: %w", err)
	}
	if tbl.Version != SchemaVersion {
		return nil, fmt.Errorf("export table version %d, want %d", tbl.Version, SchemaVersion)
	}
	return &tbl, nil
}
