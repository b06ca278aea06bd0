package lexer

import (
	"strings"
	"testing"

	"minic/internal/diag"
	"minic/internal/source"
	"minic/internal/token"
	"minic/internal/types"
)

func makeFile(t *testing.T, src string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	id, err := fs.AddVirtual("test.mc", []byte(src))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	return fs.Get(id)
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, err := Tokenize(makeFile(t, src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	got := kinds(toks)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q): got %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize(%q)[%d]: got %v, want %v (all: %v)", src, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestDeclarationTokens(t *testing.T) {
	expectKinds(t, "static int v[10], x;",
		token.KwStatic, token.KwInt, token.Ident, token.LBracket, token.IntLit,
		token.RBracket, token.Comma, token.Ident, token.Semicolon)
}

func TestOperatorsLongestMatch(t *testing.T) {
	expectKinds(t, "a <= b << 2 >= c >> 1 == d != e && f || !g",
		token.Ident, token.LtEq, token.Ident, token.Shl, token.IntLit, token.GtEq,
		token.Ident, token.Shr, token.IntLit, token.EqEq, token.Ident, token.BangEq,
		token.Ident, token.AndAnd, token.Ident, token.OrOr, token.Bang, token.Ident)
	expectKinds(t, "x ? #y : &z ^ 2 % 3 | 4",
		token.Ident, token.Question, token.Hash, token.Ident, token.Colon, token.Amp,
		token.Ident, token.Caret, token.IntLit, token.Percent, token.IntLit, token.Pipe, token.IntLit)
}

func TestCommentsAreSkipped(t *testing.T) {
	expectKinds(t, "// line\nint /* block\n spans */ x; // tail",
		token.KwInt, token.Ident, token.Semicolon)
}

func TestLiterals(t *testing.T) {
	toks := expectKinds(t, `12 3.5 1e3 'a' '\n' "hi\tyou\q" true false`,
		token.IntLit, token.FloatLit, token.FloatLit, token.CharLit, token.CharLit,
		token.StringLit, token.KwTrue, token.KwFalse)

	if toks[0].Lit.Type != types.Int || toks[0].Lit.Int != 12 {
		t.Errorf("int literal = %+v", toks[0].Lit)
	}
	if toks[1].Lit.Float != 3.5 || toks[2].Lit.Float != 1000 {
		t.Errorf("float literals = %v, %v", toks[1].Lit.Float, toks[2].Lit.Float)
	}
	if toks[3].Lit.Char != 'a' || toks[4].Lit.Char != '\n' {
		t.Errorf("char literals = %q, %q", toks[3].Lit.Char, toks[4].Lit.Char)
	}
	if toks[5].Lit.Str != "hi\tyouq" {
		t.Errorf("string literal = %q", toks[5].Lit.Str)
	}
	if !toks[6].Lit.Bool || toks[7].Lit.Bool || toks[7].Lit.Type != types.Bool {
		t.Errorf("bool literals = %+v, %+v", toks[6].Lit, toks[7].Lit)
	}
}

func TestUnescape(t *testing.T) {
	tests := map[string]string{
		`plain`:      "plain",
		`\a\b\f`:     "\a\b\f",
		`\n\r\t\v`:   "\n\r\t\v",
		`\"quoted\"`: `"quoted"`,
		`\\`:         `\`,
		`\z`:         "z",
		`end\`:       `end\`,
	}
	for in, want := range tests {
		if got := unescape(in); got != want {
			t.Errorf("unescape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocations(t *testing.T) {
	toks := expectKinds(t, "int x;\n  x = 10;\n",
		token.KwInt, token.Ident, token.Semicolon,
		token.Ident, token.Assign, token.IntLit, token.Semicolon)

	want := []source.Location{
		{Line: 1, Column: 1, Length: 3},
		{Line: 1, Column: 5, Length: 1},
		{Line: 1, Column: 6, Length: 1},
		{Line: 2, Column: 3, Length: 1},
		{Line: 2, Column: 5, Length: 1},
		{Line: 2, Column: 7, Length: 2},
		{Line: 2, Column: 9, Length: 1},
	}
	for i, w := range want {
		if toks[i].Loc != w {
			t.Errorf("token %d (%v) at %+v, want %+v", i, toks[i].Kind, toks[i].Loc, w)
		}
	}
}

func TestTrackerKeepsCurrentLine(t *testing.T) {
	f := makeFile(t, "int a;\nfloat b;\n")
	lx, err := New(f, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for lx.Next().Kind != token.KwFloat {
	}
	if got := lx.Tracker().CurrentLine(); got != "float b;" {
		t.Errorf("current line = %q", got)
	}
}

func TestUnicodeIdentifiersNormalized(t *testing.T) {
	// "é" составной и предкомпонованный
	toks := expectKinds(t, "cafe\u0301 caf\u00e9", token.Ident, token.Ident)
	if toks[0].Text != toks[1].Text {
		t.Errorf("identifiers differ after NFC: %q vs %q", toks[0].Text, toks[1].Text)
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		src  string
		loc  source.Location
		frag string
	}{
		{"int x = \"open;\n", source.Location{Line: 1, Column: 9, Length: 6}, "unterminated string literal"},
		{"x = 'ab';", source.Location{Line: 1, Column: 5, Length: 4}, "char literal must hold exactly one byte"},
		{"x = 1e;", source.Location{Line: 1, Column: 5, Length: 2}, "malformed exponent"},
		{"x = 12ab;", source.Location{Line: 1, Column: 5, Length: 4}, "invalid numeric literal"},
		{"x = 99999999999;", source.Location{Line: 1, Column: 5, Length: 11}, "int literal out of range"},
		{"x @ y", source.Location{Line: 1, Column: 3, Length: 1}, "unexpected character"},
		{"int /* never closed", source.Location{Line: 1, Column: 5, Length: 2}, "unterminated block comment"},
	}
	for _, tt := range tests {
		toks, err := Tokenize(makeFile(t, tt.src))
		if err == nil {
			t.Errorf("%q: expected error, got tokens %v", tt.src, kinds(toks))
			continue
		}
		de, ok := diag.As(err)
		if !ok || de.Code != diag.ErrSyntax {
			t.Errorf("%q: expected syntax error, got %v", tt.src, err)
			continue
		}
		if de.Locations[0] != tt.loc {
			t.Errorf("%q: location %+v, want %+v", tt.src, de.Locations[0], tt.loc)
		}
		if !strings.Contains(de.Message, tt.frag) {
			t.Errorf("%q: message %q lacks %q", tt.src, de.Message, tt.frag)
		}
	}
}

func TestErrorIsSticky(t *testing.T) {
	lx, err := New(makeFile(t, "@ int"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if lx.Next().Kind != token.Invalid {
		t.Fatalf("expected invalid token")
	}
	if lx.Next().Kind != token.Invalid || lx.Err() == nil {
		t.Errorf("lexer must stay failed")
	}
}
