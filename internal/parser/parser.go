// Package parser is the grammar engine: a recursive-descent parser that
// issues the reductions of each production to a sema.Checker, which builds
// the tree and enforces the scope and type rules as it goes.
package parser

import (
	"fmt"
	"slices"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/lexer"
	"minic/internal/sema"
	"minic/internal/source"
	"minic/internal/token"
)

// Parser — состояние парсера на один файл.
type Parser struct {
	lx      *lexer.Lexer
	tc      *sema.Checker
	lastLoc source.Location // последний съеденный токен, для ошибок на EOF
}

// Result is a parsed and checked unit.
type Result struct {
	// Root is the head of the function chain, nil for a unit with only
	// globals.
	Root    *ast.Node
	Checker *sema.Checker
	Tracker *source.Tracker
}

// Parse lexes, parses and checks file with a fresh checker.
func Parse(file *source.File, opts sema.Options) (*Result, error) {
	lx, err := lexer.New(file, nil)
	if err != nil {
		return nil, err
	}
	tc := sema.NewChecker(opts)
	root, err := ParseFile(lx, tc)
	return &Result{Root: root, Checker: tc, Tracker: lx.Tracker()}, err
}

// ParseFile parses a whole unit. It returns the head of the function
// chain (nil for a unit with only globals) or the first error.
func ParseFile(lx *lexer.Lexer, tc *sema.Checker) (*ast.Node, error) {
	p := &Parser{lx: lx, tc: tc}
	return p.parseProgram()
}

func (p *Parser) peek() token.Token { return p.lx.Peek() }

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastLoc = tok.Loc
	}
	return tok
}

// expect consumes a token of kind k or fails with a syntax error naming
// what was wanted.
func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.unexpected(what)
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// unexpected builds the syntax error for the current token. A lexical
// error takes precedence.
func (p *Parser) unexpected(what string) error {
	tok := p.peek()
	if tok.Kind == token.Invalid {
		if err := p.lx.Err(); err != nil {
			return err
		}
	}
	loc := tok.Loc
	found := fmt.Sprintf("'%s'", tok.Text)
	if tok.Kind == token.EOF {
		found = "end of file"
		if p.lastLoc.IsValid() {
			loc = source.Location{Line: p.lastLoc.Line, Column: p.lastLoc.End(), Length: 1}
		}
	}
	return diag.New(diag.ErrSyntax, fmt.Sprintf("expected %s, found %s", what, found), loc)
}

// parseProgram := { global | function }
func (p *Parser) parseProgram() (*ast.Node, error) {
	var prog ast.Chain
	for !p.at(token.EOF) {
		fn, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		prog.Add(fn)
	}
	if p.lx.Err() != nil {
		return nil, p.lx.Err()
	}
	return prog.Head(), nil
}
