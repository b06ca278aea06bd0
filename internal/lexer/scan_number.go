package lexer

import (
	"strconv"

	"minic/internal/ast"
	"minic/internal/token"
)

// scanNumber reads  digits [ '.' digits ] [ ('e'|'E') ['+'|'-'] digits ].
// A fraction or an exponent makes it a float.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.digits()

	isFloat := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		isFloat = true
		lx.cursor.Bump()
		lx.digits()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.fail(start, "malformed exponent in "+quoteFragment(lx.cursor.Text(start)))
		}
		isFloat = true
		lx.digits()
	}
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.fail(start, "invalid numeric literal "+quoteFragment(lx.cursor.Text(start)))
	}

	text := lx.cursor.Text(start)
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return lx.fail(start, "float literal out of range: "+text)
		}
		return token.Token{Kind: token.FloatLit, Loc: lx.match(start), Text: text, Lit: ast.FloatLit(v)}
	}
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return lx.fail(start, "int literal out of range: "+text)
	}
	return token.Token{Kind: token.IntLit, Loc: lx.match(start), Text: text, Lit: ast.IntLit(int32(v))}
}

func (lx *Lexer) digits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
