package parser

import (
	"minic/internal/ast"
	"minic/internal/token"
)

// parseBlockBody := '{' { command } '}' in the current scope.
func (p *Parser) parseBlockBody() (*ast.Node, error) {
	if _, err := p.expect(token.LBrace, "'{'"); err != nil {
		return nil, err
	}
	var body ast.Chain
	for !p.at(token.RBrace) {
		if p.at(token.EOF) || p.at(token.Invalid) {
			return nil, p.unexpected("'}'")
		}
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		body.Add(cmd)
	}
	p.advance()
	return body.Head(), nil
}

// parseBlock — вложенный блок со своим scope.
func (p *Parser) parseBlock() (*ast.Node, error) {
	p.tc.EnterBlock()
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	if err := p.tc.LeaveBlock(); err != nil {
		return nil, err
	}
	return body, nil
}

// parseCommand parses one command with its terminator. The result is a
// chain: a declaration yields one node per initialized name, an empty
// block or a bare declaration yields nil.
func (p *Parser) parseCommand() (*ast.Node, error) {
	tok := p.peek()
	var (
		cmd      *ast.Node
		err      error
		compound bool
	)
	switch {
	case tok.IsType() || tok.Kind == token.KwStatic || tok.Kind == token.KwConst:
		cmd, err = p.parseLocalDecl()
	case tok.Kind == token.LBrace:
		cmd, err = p.parseBlock()
		compound = true
	case tok.Kind == token.KwIf:
		cmd, err = p.parseIf()
		compound = true
	case tok.Kind == token.KwWhile:
		cmd, err = p.parseWhile()
		compound = true
	case tok.Kind == token.KwFor:
		cmd, err = p.parseFor()
		compound = true
	case tok.Kind == token.KwInput:
		cmd, err = p.parseInput()
	case tok.Kind == token.KwOutput:
		cmd, err = p.parseOutput()
	case tok.Kind == token.KwReturn:
		cmd, err = p.parseReturn()
	case tok.Kind == token.KwBreak:
		p.advance()
		cmd = p.tc.Jump(ast.Cmd(ast.CmdBreak, tok.Loc))
	case tok.Kind == token.KwContinue:
		p.advance()
		cmd = p.tc.Jump(ast.Cmd(ast.CmdContinue, tok.Loc))
	case tok.Kind == token.Ident:
		cmd, err = p.parseIdentCommand()
	default:
		return nil, p.unexpected("a command")
	}
	if err != nil {
		return nil, err
	}
	// после составных команд ';' необязательна
	if compound {
		p.eat(token.Semicolon)
		return cmd, nil
	}
	if _, err := p.expect(token.Semicolon, "';'"); err != nil {
		return nil, err
	}
	return cmd, nil
}

// parseIdentCommand covers assignment, shift and call commands.
func (p *Parser) parseIdentCommand() (*ast.Node, error) {
	name := p.advance()
	if p.at(token.LParen) {
		return p.parseCall(name)
	}
	lhs, err := p.parseLValue(name)
	if err != nil {
		return nil, err
	}
	op := p.peek()
	switch op.Kind {
	case token.Assign:
		return p.finishAssign(lhs)
	case token.Shl, token.Shr:
		p.advance()
		amount, err := p.expect(token.IntLit, "a shift amount")
		if err != nil {
			return nil, err
		}
		kind := ast.CmdShiftLeft
		if op.Kind == token.Shr {
			kind = ast.CmdShiftRight
		}
		return p.tc.Shift(ast.Cmd(kind, op.Loc), lhs, amount.Value())
	}
	return nil, p.unexpected("'=', '<<', '>>' or '('")
}

// parseLValue := ident [ '[' expr ']' ] after the name.
func (p *Parser) parseLValue(name token.Token) (*ast.Node, error) {
	if p.at(token.LBracket) {
		return p.parseIndex(name)
	}
	return p.tc.Variable(name.Value())
}

// parseAssign := lvalue '=' expr
func (p *Parser) parseAssign() (*ast.Node, error) {
	name, err := p.expect(token.Ident, "an identifier")
	if err != nil {
		return nil, err
	}
	lhs, err := p.parseLValue(name)
	if err != nil {
		return nil, err
	}
	return p.finishAssign(lhs)
}

func (p *Parser) finishAssign(lhs *ast.Node) (*ast.Node, error) {
	op, err := p.expect(token.Assign, "'='")
	if err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return p.tc.Assign(ast.Cmd(ast.CmdAssign, op.Loc), lhs, rhs)
}

// parseInput := input ident
func (p *Parser) parseInput() (*ast.Node, error) {
	kw := p.advance()
	name, err := p.expect(token.Ident, "an identifier")
	if err != nil {
		return nil, err
	}
	operand, err := p.tc.Variable(name.Value())
	if err != nil {
		return nil, err
	}
	return p.tc.Input(ast.Cmd(ast.CmdInput, kw.Loc), operand)
}

// parseOutput := output ( ident | literal )
func (p *Parser) parseOutput() (*ast.Node, error) {
	kw := p.advance()
	tok := p.peek()
	var (
		operand *ast.Node
		err     error
	)
	switch {
	case tok.Kind == token.Ident:
		p.advance()
		operand, err = p.tc.Variable(tok.Value())
	case tok.IsLiteral():
		p.advance()
		operand = p.tc.Literal(tok.Value())
	default:
		return nil, p.unexpected("an identifier or a literal")
	}
	if err != nil {
		return nil, err
	}
	return p.tc.Output(ast.Cmd(ast.CmdOutput, kw.Loc), operand)
}

// parseReturn := return expr
func (p *Parser) parseReturn() (*ast.Node, error) {
	kw := p.advance()
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return p.tc.Return(ast.Cmd(ast.CmdReturn, kw.Loc), value)
}

func (p *Parser) parseCondition() (*ast.Node, error) {
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseIf := if '(' expr ')' block [ else block ]
func (p *Parser) parseIf() (*ast.Node, error) {
	kw := p.advance()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els *ast.Node
	if p.eat(token.KwElse) {
		if els, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return p.tc.If(ast.Cmd(ast.CmdIf, kw.Loc), cond, then, els)
}

// parseWhile := while '(' expr ')' do block
func (p *Parser) parseWhile() (*ast.Node, error) {
	kw := p.advance()
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwDo, "'do'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return p.tc.While(ast.Cmd(ast.CmdWhile, kw.Loc), cond, body)
}

// parseFor := for '(' assign ':' expr ':' assign ')' block
func (p *Parser) parseFor() (*ast.Node, error) {
	kw := p.advance()
	if _, err := p.expect(token.LParen, "'('"); err != nil {
		return nil, err
	}
	init, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Colon, "':'"); err != nil {
		return nil, err
	}
	step, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.RParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return p.tc.For(ast.Cmd(ast.CmdFor, kw.Loc), init, cond, step, body)
}
