package lexer

import (
	"strconv"
	"strings"

	"minic/internal/ast"
	"minic/internal/token"
)

// unescape converts the escapes of a char or string literal body:
// \a \b \f \n \r \t \v map to their control characters and any other
// \x stands for x itself.
func unescape(body string) string {
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		default:
			sb.WriteByte(body[i])
		}
	}
	return sb.String()
}

// scanQuoted reads a literal delimited by quote on one line, honoring
// backslash escapes. It returns the raw body and whether it was closed.
func (lx *Lexer) scanQuoted(quote byte) (string, bool) {
	lx.cursor.Bump()
	bodyStart := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case quote:
			body := lx.cursor.Text(bodyStart)
			lx.cursor.Bump()
			return body, true
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '\n' {
				return "", false
			}
			lx.cursor.Bump()
		case '\n':
			return "", false
		default:
			lx.cursor.Bump()
		}
	}
	return "", false
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	body, ok := lx.scanQuoted('"')
	if !ok {
		return lx.fail(start, "unterminated string literal")
	}
	return token.Token{
		Kind: token.StringLit,
		Loc:  lx.match(start),
		Text: lx.cursor.Text(start),
		Lit:  ast.StringLit(unescape(body)),
	}
}

func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	body, ok := lx.scanQuoted('\'')
	if !ok {
		return lx.fail(start, "unterminated char literal")
	}
	val := unescape(body)
	if len(val) != 1 {
		return lx.fail(start, "char literal must hold exactly one byte: "+strconv.Quote(val))
	}
	return token.Token{
		Kind: token.CharLit,
		Loc:  lx.match(start),
		Text: lx.cursor.Text(start),
		Lit:  ast.CharLit(val[0]),
	}
}

func quoteFragment(s string) string {
	const maxFragment = 24
	if len(s) > maxFragment {
		s = s[:maxFragment] + "..."
	}
	return strconv.Quote(s)
}
