package token

import "testing"

func TestKeywordsRoundTrip(t *testing.T) {
	for text, kind := range keywords {
		if kind.String() != text {
			t.Errorf("%v.String() = %q, want %q", kind, kind.String(), text)
		}
		tok := Token{Kind: kind}
		if !tok.IsKeyword() {
			t.Errorf("%q must be a keyword", text)
		}
	}
	if _, ok := LookupKeyword("Int"); ok {
		t.Errorf("keywords are case sensitive")
	}
}

func TestClassifiers(t *testing.T) {
	tests := []struct {
		kind               Kind
		literal, typ, punc bool
	}{
		{IntLit, true, false, false},
		{KwTrue, true, false, false},
		{KwString, false, true, false},
		{LtEq, false, false, true},
		{OrOr, false, false, true},
		{Ident, false, false, false},
	}
	for _, tt := range tests {
		tok := Token{Kind: tt.kind}
		if tok.IsLiteral() != tt.literal || tok.IsType() != tt.typ || tok.IsPunctOrOp() != tt.punc {
			t.Errorf("%v: literal=%v type=%v punct=%v", tt.kind, tok.IsLiteral(), tok.IsType(), tok.IsPunctOrOp())
		}
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Invalid; k <= OrOr; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
}
