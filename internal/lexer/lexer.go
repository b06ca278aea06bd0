package lexer

import (
	"minic/internal/diag"
	"minic/internal/source"
	"minic/internal/token"
)

// Lexer turns a source file into tokens, recording every match in a
// source.Tracker. The first malformed lexeme yields an Invalid token and
// Err reports why; after that the lexer stays at EOF.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	tracker *source.Tracker
	look    *token.Token // 1 элементный буфер
	err     *diag.Error
}

// New creates a lexer over file. A nil tracker gets a fresh one.
func New(file *source.File, tracker *source.Tracker) (*Lexer, error) {
	cur, err := NewCursor(file)
	if err != nil {
		return nil, diag.Resource(diag.ErrOutOfMemory, err)
	}
	if tracker == nil {
		tracker = source.NewTracker(file)
	}
	return &Lexer{file: file, cursor: cur, tracker: tracker}, nil
}

// Tracker returns the location tracker the lexer feeds.
func (lx *Lexer) Tracker() *source.Tracker { return lx.tracker }

// Err returns the lexical error that produced the last Invalid token.
func (lx *Lexer) Err() *diag.Error { return lx.err }

// Next returns the next significant token. After EOF or an error it keeps
// returning the same terminal token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.err != nil {
		return token.Token{Kind: token.Invalid, Loc: lx.err.Locations[0]}
	}

	if !lx.skipTrivia() {
		return lx.invalid()
	}
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Loc: lx.match(lx.cursor.Mark())}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanChar()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// match records the fragment read since m.
func (lx *Lexer) match(m Mark) source.Location {
	return lx.tracker.Match(uint32(m), lx.cursor.Len(m))
}

// fail records a syntax error over the fragment read since m.
func (lx *Lexer) fail(m Mark, msg string) token.Token {
	loc := lx.match(m)
	lx.err = diag.New(diag.ErrSyntax, msg, loc)
	lx.cursor.Off = lx.cursor.Limit
	return token.Token{Kind: token.Invalid, Loc: loc, Text: msg}
}

func (lx *Lexer) invalid() token.Token {
	return token.Token{Kind: token.Invalid, Loc: lx.err.Locations[0]}
}

// Tokenize lexes the whole file, EOF token included.
func Tokenize(file *source.File) ([]token.Token, error) {
	lx, err := New(file, nil)
	if err != nil {
		return nil, err
	}
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.Invalid {
			return toks, lx.Err()
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}
