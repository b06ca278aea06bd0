package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/sema"
	"minic/internal/source"
	"minic/internal/types"
)

func parse(t *testing.T, src string) (*Result, error) {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.mc", []byte(src))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	return Parse(fs.Get(id), sema.Options{})
}

func mustParse(t *testing.T, src string) *Result {
	t.Helper()
	res, err := parse(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return res
}

// shape renders a chain as label(child, child); next ... with "_" for an
// empty child slot.
func shape(n *ast.Node) string {
	var parts []string
	for ; n != nil; n = n.Next {
		s := n.Content.Label()
		if len(n.Children) > 0 {
			kids := make([]string, len(n.Children))
			for i, c := range n.Children {
				if c == nil {
					kids[i] = "_"
				} else {
					kids[i] = shape(c)
				}
			}
			s += "(" + strings.Join(kids, ", ") + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"precedence", "a = 1 + 2 * 3;", "=(a, +(1, *(2, 3)))"},
		{"left assoc", "a = 1 - 2 - 3;", "=(a, -(-(1, 2), 3))"},
		{"power right assoc", "a = 2 ^ 3 ^ 2;", "=(a, ^(2, ^(3, 2)))"},
		{"parens", "a = (1 + 2) * 3;", "=(a, *(+(1, 2), 3))"},
		{"logic below compare", "a = a < 1 || a > 2 && a != 3;", "=(a, ||(<(a, 1), &&(>(a, 2), !=(a, 3))))"},
		{"bitwise", "a = a | a & 1;", "=(a, |(a, &(a, 1)))"},
		{"sign folded", "a = -5;", "=(a, -5)"},
		{"unary kept", "a = -a;", "=(a, -(a))"},
		{"ternary", "a = a ? 1 : 2;", "=(a, ?:(a, 1, 2))"},
		{"index", "v[a + 1] = 3;", "=([](v, +(a, 1)), 3)"},
		{"call", "a = g(1, a);", "=(a, call g(1; a))"},
		{"call command", "g(a, 2);", "call g(a; 2)"},
		{"shift", "a << 3; v[0] >> 2;", "<<(a, 3); >>([](v, 0), 2)"},
		{"io", "input a; output a; output 7;", "input(a); output(a); output(7)"},
		{"if", "if (a) { a = 1; };", "if(a, =(a, 1))"},
		{"if else", "if (a) { a = 1; } else { a = 2; }", "if(a, =(a, 1), =(a, 2))"},
		{"empty then", "if (a) { } else { a = 2; }", "if(a, _, =(a, 2))"},
		{"while", "while (a > 0) do { a = a - 1; break; };", "while(>(a, 0), =(a, -(a, 1)); break)"},
		{"for", "for (a = 0 : a < 10 : a = a + 1) { output a; continue; }", "for(=(a, 0), <(a, 10), =(a, +(a, 1)), output(a); continue)"},
		{"return", "return a * 2;", "return(*(a, 2))"},
		{"decl chain", "int b <= 1, c, d <= b; a = d;", "<=(b, 1); <=(d, b); =(a, d)"},
		{"bare decl", "int b; float c;", ""},
		{"nested block", "{ int b <= 2; a = b; } a = 1;", "<=(b, 2); =(a, b); =(a, 1)"},
		{"negative init", "float f <= -1.5;", "<=(f, -1.50000)"},
	}
	const prelude = "int a, v[10];\nint g(int x, int y) { return x; }\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustParse(t, prelude+"int f() { "+tt.body+" }")
			f := res.Root.Next
			be.Equal(t, f.Content.Label(), "f")
			be.Equal(t, shape(f.Child(0)), tt.want)
		})
	}
}

func TestFunctionChain(t *testing.T) {
	res := mustParse(t, `
int x;
int one() { return 1; }
static float two(const int a) { return a; }
char three() { }
`)
	be.Equal(t, shape(res.Root), "one(return(1)); two(return(a)); three")
	be.Equal(t, res.Checker.Stats().Functions, 3)
	be.Equal(t, res.Checker.Stats().Globals, 1)
}

func TestLongSequencesKeepOrder(t *testing.T) {
	const blocks, params = 1000, 200
	var src, want strings.Builder
	src.WriteString("int g(")
	for i := range params {
		if i > 0 {
			src.WriteString(", ")
		}
		fmt.Fprintf(&src, "int x%d", i)
	}
	src.WriteString(") { return x0; }\nint f() { int a;\n")
	for i := range blocks {
		fmt.Fprintf(&src, "{ int b <= %d; a = b; }\n", i)
		fmt.Fprintf(&want, "<=(b, %d); =(a, b); ", i)
	}
	src.WriteString("a = g(")
	want.WriteString("=(a, call g(")
	for i := range params {
		if i > 0 {
			src.WriteString(", ")
			want.WriteString("; ")
		}
		fmt.Fprintf(&src, "%d", i)
		fmt.Fprintf(&want, "%d", i)
	}
	src.WriteString("); }\n")
	want.WriteString("))")

	res := mustParse(t, src.String())
	f := res.Root.Next
	be.Equal(t, f.Content.Label(), "f")
	be.Equal(t, shape(f.Child(0)), want.String())
}

func TestGlobalsOnly(t *testing.T) {
	res := mustParse(t, "int a; float b[3], c; // nothing else\n")
	be.True(t, res.Root == nil)
	be.Equal(t, res.Checker.Stats().Globals, 3)
	q := res.Checker.Scopes().Lookup("b")
	be.True(t, q.Found())
	be.Equal(t, q.Symbol.Count, uint32(3))
}

func TestTypesAreRecorded(t *testing.T) {
	res := mustParse(t, "int f() { float x; x = 1 + 2.0; return 1 < 2; }")
	assign := res.Root.Child(0)
	be.Equal(t, res.Checker.TypeOf(assign.Child(1)), types.Float)
	ret := assign.Next
	be.Equal(t, res.Checker.TypeOf(ret.Child(0)), types.Bool)
}

func TestBlockScopeEnds(t *testing.T) {
	_, err := parse(t, "int f() { { int b; } b = 1; }")
	be.Equal(t, diag.CodeOf(err), diag.ErrUndeclared)
}

func TestEarlierNamesVisibleInInitializers(t *testing.T) {
	res := mustParse(t, "int f() { int a <= 1, b <= a; }")
	be.Equal(t, shape(res.Root.Child(0)), "<=(a, 1); <=(b, a)")
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		src string
		msg string
		loc source.Location
	}{
		{"int f() { int a; a = 1 }", "expected ';', found '}'", source.Location{Line: 1, Column: 24, Length: 1}},
		{"int f() { return 1;", "expected '}', found end of file", source.Location{Line: 1, Column: 20, Length: 1}},
		{"int a", "expected ';', found end of file", source.Location{Line: 1, Column: 6, Length: 1}},
		{"foo a;", "expected a type, found 'foo'", source.Location{Line: 1, Column: 1, Length: 3}},
		{"int f() { while (1) { } }", "expected 'do', found '{'", source.Location{Line: 1, Column: 21, Length: 1}},
		{"int f() { int a; a = ; }", "expected an expression, found ';'", source.Location{Line: 1, Column: 22, Length: 1}},
		{"int a[x];", "expected an array size, found 'x'", source.Location{Line: 1, Column: 7, Length: 1}},
	}
	for _, tt := range tests {
		_, err := parse(t, tt.src)
		de, ok := diag.As(err)
		if !ok {
			t.Errorf("%q: expected diagnostic, got %v", tt.src, err)
			continue
		}
		be.Equal(t, de.Code, diag.ErrSyntax)
		be.Equal(t, de.Message, "syntax error: "+tt.msg)
		be.Equal(t, de.Locations[0], tt.loc)
	}
}

func TestLexicalErrorWins(t *testing.T) {
	_, err := parse(t, "int f() { int a; a = 'xy'; }")
	de, ok := diag.As(err)
	be.True(t, ok)
	be.Equal(t, de.Code, diag.ErrSyntax)
	be.True(t, strings.Contains(de.Message, "char literal"))
}
