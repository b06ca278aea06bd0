package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"minic/internal/lexer"
	"minic/internal/source"
	"minic/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("tokens.mc", []byte(src))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	toks, err := lexer.Tokenize(fs.Get(id))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return toks
}

func TestFormatTokensPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, lex(t, "char c <= '\\n';")); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	checks := []string{
		`  1: char         "char" at 1:1-4`,
		`  2: identifier   "c" at 1:6-6`,
		`  3: <=           "<=" at 1:8-9`,
		`  4: char literal "'\\n'" at 1:11-14 = "\n"`,
		`  5: ;            ";" at 1:15-15`,
		`  6: EOF          at 1:16-16`,
	}
	for i, want := range checks {
		if lines[i] != want {
			t.Errorf("line %d:\n got %q\nwant %q", i+1, lines[i], want)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, lex(t, "x = 2.5;")); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(out))
	}
	lit := out[2]
	if lit.Kind != "float literal" || lit.Value != "2.50000" || lit.Column != 5 || lit.Length != 3 {
		t.Errorf("literal = %+v", lit)
	}
	if out[4].Kind != "EOF" || out[4].Text != "" {
		t.Errorf("last = %+v", out[4])
	}
}
