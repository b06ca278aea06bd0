package parser

import (
	"minic/internal/ast"
	"minic/internal/sema"
	"minic/internal/symbols"
	"minic/internal/token"
	"minic/internal/types"
)

func (p *Parser) parseModifiers(allowed ...token.Kind) symbols.Flags {
	var flags symbols.Flags
	for p.atAny(allowed...) {
		switch p.advance().Kind {
		case token.KwStatic:
			flags |= symbols.FlagStatic
		case token.KwConst:
			flags |= symbols.FlagConst
		}
	}
	return flags
}

func (p *Parser) parseType() (types.Type, error) {
	tok := p.peek()
	if !tok.IsType() {
		return types.Undefined, p.unexpected("a type")
	}
	p.advance()
	t, _ := types.Lookup(tok.Text)
	return t, nil
}

// parseTopLevel := [static] type ident ( '(' function | globals )
// Functions yield a node; global declarations yield nil.
func (p *Parser) parseTopLevel() (*ast.Node, error) {
	flags := p.parseModifiers(token.KwStatic)
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.Ident, "an identifier")
	if err != nil {
		return nil, err
	}
	if p.at(token.LParen) {
		return p.parseFunction(flags, t, name)
	}
	return nil, p.parseGlobals(flags, t, name)
}

// parseGlobals := gvar { ',' gvar } ';'    gvar := ident [ '[' int ']' ]
func (p *Parser) parseGlobals(flags symbols.Flags, t types.Type, first token.Token) error {
	var pairs []symbols.Pair
	name := first
	for {
		pair, err := p.parseGlobalVar(name)
		if err != nil {
			return err
		}
		pairs = append(pairs, pair)
		if !p.eat(token.Comma) {
			break
		}
		if name, err = p.expect(token.Ident, "an identifier"); err != nil {
			return err
		}
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return err
	}
	return p.tc.DeclareGlobals(pairs, t, flags)
}

func (p *Parser) parseGlobalVar(name token.Token) (symbols.Pair, error) {
	if !p.eat(token.LBracket) {
		return sema.Variable(name.Value()), nil
	}
	count, err := p.expect(token.IntLit, "an array size")
	if err != nil {
		return symbols.Pair{}, err
	}
	if _, err := p.expect(token.RBracket, "']'"); err != nil {
		return symbols.Pair{}, err
	}
	return sema.Array(name.Value(), count.Value())
}

// parseFunction := '(' [ param { ',' param } ] ')' body
func (p *Parser) parseFunction(flags symbols.Flags, ret types.Type, name token.Token) (*ast.Node, error) {
	p.advance() // (
	var params []symbols.Pair
	if !p.at(token.RParen) {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}

	nameVal := name.Value()
	if err := p.tc.BeginFunction(nameVal, ret, flags, params); err != nil {
		return nil, err
	}
	// тело разделяет scope с параметрами
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	return p.tc.EndFunction(nameVal, body)
}

// parseParam := [const] type ident
func (p *Parser) parseParam() (symbols.Pair, error) {
	flags := p.parseModifiers(token.KwConst)
	t, err := p.parseType()
	if err != nil {
		return symbols.Pair{}, err
	}
	name, err := p.expect(token.Ident, "a parameter name")
	if err != nil {
		return symbols.Pair{}, err
	}
	pair := sema.Variable(name.Value())
	pair.Symbol.Flags = flags
	pair.Symbol.SetType(t)
	return pair, nil
}

// parseLocalDecl := [static] [const] type lvar { ',' lvar }
// lvar := ident [ '<=' ( ident | literal ) ]
func (p *Parser) parseLocalDecl() (*ast.Node, error) {
	flags := p.parseModifiers(token.KwStatic, token.KwConst)
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	// каждое имя объявляется сразу, чтобы следующие инициализаторы его видели
	var inits ast.Chain
	for {
		name, err := p.expect(token.Ident, "an identifier")
		if err != nil {
			return nil, err
		}
		d := sema.Decl{Pair: sema.Variable(name.Value())}
		if p.eat(token.LtEq) {
			if d.Init, err = p.parseInitializer(); err != nil {
				return nil, err
			}
		}
		init, err := p.tc.DeclareLocals([]sema.Decl{d}, t, flags)
		if err != nil {
			return nil, err
		}
		inits.Add(init)
		if !p.eat(token.Comma) {
			return inits.Head(), nil
		}
	}
}

// parseInitializer := ident | [ '+' | '-' ] literal
func (p *Parser) parseInitializer() (*ast.Node, error) {
	tok := p.peek()
	switch {
	case tok.Kind == token.Ident:
		p.advance()
		return p.tc.Variable(tok.Value())
	case tok.IsLiteral():
		p.advance()
		return p.tc.Literal(tok.Value()), nil
	case tok.Kind == token.Minus || tok.Kind == token.Plus:
		p.advance()
		lit := p.peek()
		if lit.Kind != token.IntLit && lit.Kind != token.FloatLit {
			return nil, p.unexpected("a numeric literal")
		}
		p.advance()
		return p.tc.Unary(unaryOp(tok), p.tc.Literal(lit.Value()))
	}
	return nil, p.unexpected("an identifier or a literal")
}
