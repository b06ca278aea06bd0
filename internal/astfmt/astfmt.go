// Package astfmt writes a syntax tree in one of the export formats: the
// edge list consumed by graph tools, an indented tree for people, or a
// msgpack node table for other programs.
package astfmt

import (
	"fmt"
	"io"
	"strings"

	"minic/internal/ast"
	"minic/internal/types"
)

// Format selects the export encoding.
type Format uint8

const (
	FormatEdges Format = iota
	FormatTree
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatEdges:
		return "edges"
	case FormatTree:
		return "tree"
	case FormatMsgpack:
		return "msgpack"
	}
	return fmt.Sprintf("Format(%d)", f)
}

// ParseFormat parses a format name. The empty string means edges.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "edges":
		return FormatEdges, nil
	case "tree":
		return FormatTree, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	}
	return FormatEdges, fmt.Errorf("unknown export format %q (want edges, tree or msgpack)", s)
}

// Typer reports the type the checker inferred for a node.
type Typer interface {
	TypeOf(n *ast.Node) types.Type
}

// Options configures Write.
type Options struct {
	Format Format
	Color  bool   // tree only
	Types  Typer  // optional; tree and msgpack annotate types when set
	File   string // msgpack only
}

// Write encodes the tree rooted at root (the head of the function chain)
// to w. A nil root writes nothing for edges and tree, and an empty table
// for msgpack.
func Write(w io.Writer, root *ast.Node, opts Options) error {
	switch opts.Format {
	case FormatEdges:
		return WriteEdges(w, root)
	case FormatTree:
		return WriteTree(w, root, opts.Types, opts.Color)
	case FormatMsgpack:
		return WriteMsgpack(w, root, opts.File, opts.Types)
	}
	return fmt.Errorf("unknown export format %v", opts.Format)
}

func typeOf(t Typer, n *ast.Node) types.Type {
	if t == nil {
		return types.Undefined
	}
	return t.TypeOf(n)
}
