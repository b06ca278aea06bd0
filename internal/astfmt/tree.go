package astfmt

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"minic/internal/ast"
	"minic/internal/types"
)

type treeStyles struct {
	fn, cmd, expr, lit, call, typ lipgloss.Style
}

func newTreeStyles(w io.Writer) treeStyles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)
	return treeStyles{
		fn:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		cmd:  r.NewStyle().Foreground(lipgloss.Color("5")),
		expr: r.NewStyle().Foreground(lipgloss.Color("6")),
		lit:  r.NewStyle().Foreground(lipgloss.Color("2")),
		call: r.NewStyle().Foreground(lipgloss.Color("3")),
		typ:  r.NewStyle().Faint(true),
	}
}

func (s *treeStyles) label(v ast.LexicValue) string {
	text := v.Label()
	if s == nil {
		return text
	}
	switch v.Kind {
	case ast.KindFunc:
		return s.fn.Render(text)
	case ast.KindCmd:
		return s.cmd.Render(text)
	case ast.KindExpr:
		return s.expr.Render(text)
	case ast.KindLiteral:
		return s.lit.Render(text)
	case ast.KindCall:
		return s.call.Render(text)
	}
	return text
}

func (s *treeStyles) typeName(t types.Type) string {
	if s == nil {
		return t.String()
	}
	return s.typ.Render(t.String())
}

// WriteTree writes one line per node, indented two spaces per level;
// chained siblings share the indentation of the first. Nodes with a known
// type get a ": type" suffix.
func WriteTree(w io.Writer, root *ast.Node, typer Typer, color bool) error {
	bw := bufio.NewWriter(w)
	var styles *treeStyles
	if color {
		s := newTreeStyles(w)
		styles = &s
	}
	var sb strings.Builder
	ast.Walk(root, func(n *ast.Node, depth int) bool {
		sb.Reset()
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(styles.label(n.Content))
		if t := typeOf(typer, n); t.IsDefined() {
			sb.WriteString(" : ")
			sb.WriteString(styles.typeName(t))
		}
		sb.WriteByte('\n')
		bw.WriteString(sb.String()) //nolint:errcheck // ошибка вернётся из Flush
		return true
	})
	return bw.Flush()
}
