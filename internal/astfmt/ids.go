package astfmt

import (
	"fmt"

	"fortio.org/safecast"

	"minic/internal/ast"
	"minic/internal/diag"
)

// idTable numbers nodes in the order they are first seen, from 1.
type idTable map[*ast.Node]uint32

func (t idTable) id(n *ast.Node) (uint32, error) {
	if id, ok := t[n]; ok {
		return id, nil
	}
	id, err := safecast.Conv[uint32](len(t) + 1)
	if err != nil {
		return 0, diag.Resource(diag.ErrOutOfMemory, fmt.Errorf("export ids: %w", err))
	}
	t[n] = id
	return id, nil
}
