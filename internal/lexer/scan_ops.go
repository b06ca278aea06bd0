package lexer

import "minic/internal/token"

// scanOperatorOrPunct — жадный матч: сначала двухсимвольные операторы.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	var kind token.Kind
	switch {
	case lx.try2('=', '='):
		kind = token.EqEq
	case lx.try2('!', '='):
		kind = token.BangEq
	case lx.try2('<', '='):
		kind = token.LtEq
	case lx.try2('>', '='):
		kind = token.GtEq
	case lx.try2('<', '<'):
		kind = token.Shl
	case lx.try2('>', '>'):
		kind = token.Shr
	case lx.try2('&', '&'):
		kind = token.AndAnd
	case lx.try2('|', '|'):
		kind = token.OrOr
	default:
		kind = singleByteKind(lx.cursor.Bump())
	}
	if kind == token.Invalid {
		return lx.fail(start, "unexpected character "+quoteFragment(lx.cursor.Text(start)))
	}
	return token.Token{Kind: kind, Loc: lx.match(start), Text: lx.cursor.Text(start)}
}

func singleByteKind(b byte) token.Kind {
	switch b {
	case '+':
		return token.Plus
	case '-':
		return token.Minus
	case '*':
		return token.Star
	case '/':
		return token.Slash
	case '%':
		return token.Percent
	case '^':
		return token.Caret
	case '|':
		return token.Pipe
	case '&':
		return token.Amp
	case '!':
		return token.Bang
	case '?':
		return token.Question
	case '#':
		return token.Hash
	case ':':
		return token.Colon
	case ';':
		return token.Semicolon
	case ',':
		return token.Comma
	case '(':
		return token.LParen
	case ')':
		return token.RParen
	case '[':
		return token.LBracket
	case ']':
		return token.RBracket
	case '{':
		return token.LBrace
	case '}':
		return token.RBrace
	case '=':
		return token.Assign
	case '<':
		return token.Lt
	case '>':
		return token.Gt
	}
	return token.Invalid
}
