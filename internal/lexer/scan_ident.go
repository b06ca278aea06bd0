package lexer

import (
	"golang.org/x/text/unicode/norm"

	"minic/internal/ast"
	"minic/internal/token"
)

// scanIdentOrKeyword reads an identifier. Non-ASCII identifiers are
// NFC-normalized so that canonically equal spellings name one symbol.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	ascii := true
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if r < utf8RuneSelf {
			b := byte(r)
			if (lx.cursor.Off == uint32(start) && !isIdentStartByte(b)) || !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if lx.cursor.Off == uint32(start) && !isIdentStartRune(r) {
			break
		}
		if !isIdentContinueRune(r) {
			break
		}
		ascii = false
		lx.bumpRune()
	}
	if lx.cursor.Len(start) == 0 {
		lx.bumpRune()
		return lx.fail(start, "unexpected character "+quoteFragment(lx.cursor.Text(start)))
	}

	loc := lx.match(start)
	text := lx.cursor.Text(start)
	if !ascii {
		text = norm.NFC.String(text)
	}
	if k, ok := token.LookupKeyword(text); ok {
		tok := token.Token{Kind: k, Loc: loc, Text: text}
		switch k {
		case token.KwTrue:
			tok.Lit = ast.BoolLit(true)
		case token.KwFalse:
			tok.Lit = ast.BoolLit(false)
		}
		return tok
	}
	return token.Token{Kind: token.Ident, Loc: loc, Text: text}
}
