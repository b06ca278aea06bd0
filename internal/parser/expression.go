package parser

import (
	"minic/internal/ast"
	"minic/internal/token"
)

// parseExpr := ternary
func (p *Parser) parseExpr() (*ast.Node, error) {
	return p.parseTernary()
}

// parseTernary := binary [ '?' expr ':' expr ]
func (p *Parser) parseTernary() (*ast.Node, error) {
	cond, err := p.parseBinaryExpr(precLogOr)
	if err != nil {
		return nil, err
	}
	if !p.at(token.Question) {
		return cond, nil
	}
	q := p.advance()
	a, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	b, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return p.tc.Ternary(ast.Expr(ast.ExprTernary, q.Loc), cond, a, b)
}

// parseBinaryExpr — precedence climbing начиная с minPrec.
func (p *Parser) parseBinaryExpr(minPrec int) (*ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		info, ok := binaryOp(tok.Kind)
		if !ok || info.prec < minPrec {
			return left, nil
		}
		p.advance()
		next := info.prec + 1
		if info.right {
			next = info.prec
		}
		right, err := p.parseBinaryExpr(next)
		if err != nil {
			return nil, err
		}
		if left, err = p.tc.Binary(ast.Expr(info.op, tok.Loc), left, right); err != nil {
			return nil, err
		}
	}
}

// parseUnary := unop unary | primary
func (p *Parser) parseUnary() (*ast.Node, error) {
	tok := p.peek()
	if _, ok := unaryOps[tok.Kind]; !ok {
		return p.parsePrimary()
	}
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.tc.Unary(unaryOp(tok), operand)
}

// parsePrimary := literal | ident | ident '[' expr ']' | ident '(' args ')' | '(' expr ')'
func (p *Parser) parsePrimary() (*ast.Node, error) {
	tok := p.peek()
	switch {
	case tok.IsLiteral():
		p.advance()
		return p.tc.Literal(tok.Value()), nil
	case tok.Kind == token.Ident:
		p.advance()
		switch {
		case p.at(token.LBracket):
			return p.parseIndex(tok)
		case p.at(token.LParen):
			return p.parseCall(tok)
		}
		return p.tc.Variable(tok.Value())
	case tok.Kind == token.LParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, p.unexpected("an expression")
}

// parseIndex := '[' expr ']' after the array name.
func (p *Parser) parseIndex(name token.Token) (*ast.Node, error) {
	bracket := p.advance()
	index, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBracket, "']'"); err != nil {
		return nil, err
	}
	return p.tc.Index(name.Value(), bracket.Value(), index)
}

// parseCall := '(' [ expr { ',' expr } ] ')' after the function name.
func (p *Parser) parseCall(name token.Token) (*ast.Node, error) {
	p.advance() // (
	var args ast.Chain
	if !p.at(token.RParen) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args.Add(arg)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	return p.tc.Call(name.Value(), args.Head())
}
