package parser

import (
	"tinyjs/ast"
	"tinyjs/token"
)

// parseStatement dispatches on the current token to the statement form it
// introduces, falling back to an expression statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curr.Type {
	case token.LET, token.VAR:
		return p.parseLet()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.FUNCTION:
		return p.parseFunction()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		p.advance()
		p.skipSemi()
		return &ast.Break{}, nil
	case token.CONTINUE:
		p.advance()
		p.skipSemi()
		return &ast.Continue{}, nil
	case token.LBRACE:
		return p.parseScope()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLet handles both `let name [= expr];` and `var name [= expr];` — the
// language treats the two declaration keywords identically. The
// initializer is optional; `let x;` binds x to undefined, per spec.md
// §4.2.
func (p *Parser) parseLet() (ast.Statement, error) {
	p.advance() // consume 'let'/'var'
	decl, err := p.parseLetBody()
	if err != nil {
		return nil, err
	}
	p.skipSemi()
	return decl, nil
}

// parseLetBody parses the `name [= expr]` shared by a standalone
// declaration and a for-loop init clause, leaving semicolon handling to
// the caller.
func (p *Parser) parseLetBody() (*ast.Let, error) {
	if p.curr.Type != token.IDENT {
		return nil, p.errorf("expected identifier after declaration keyword, got %s", p.curr.Type)
	}
	name := p.curr.Literal
	p.advance()

	if p.curr.Type != token.ASSIGN {
		return &ast.Let{Name: name, Value: &ast.Identifier{Name: "undefined"}}, nil
	}
	p.advance() // consume '='
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Name: name, Value: value}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	p.advance() // consume 'return'
	if p.curr.Type == token.SEMI || p.curr.Type == token.RBRACE {
		p.skipSemi()
		return &ast.Return{}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipSemi()
	return &ast.Return{Value: value}, nil
}

func (p *Parser) parseScope() (*ast.Scope, error) {
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	scope := &ast.Scope{}
	for p.curr.Type != token.RBRACE {
		if p.curr.Type == token.EOF {
			return nil, p.errorf("unterminated block, expected %s", token.RBRACE)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		scope.Statements = append(scope.Statements, stmt)
	}
	p.advance() // consume '}'
	return scope, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	p.advance() // consume 'if'
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Condition: cond, Then: then}
	if p.curr.Type == token.ELSE {
		p.advance()
		if p.curr.Type == token.IF {
			elseIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			node.Else = elseIf
		} else {
			elseBlock, err := p.parseScope()
			if err != nil {
				return nil, err
			}
			node.Else = elseBlock
		}
	}
	return node, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	p.advance() // consume 'while'
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body}, nil
}

// parseFor handles the C-style `for (init; condition; update) { body }`.
// Any of the three header clauses may be empty.
func (p *Parser) parseFor() (ast.Statement, error) {
	p.advance() // consume 'for'
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var init ast.Statement
	var err error
	if p.curr.Type != token.SEMI {
		init, err = p.parseForClauseStatement()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.SEMI); err != nil {
		return nil, err
	}

	var cond ast.Expression
	if p.curr.Type != token.SEMI {
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.SEMI); err != nil {
		return nil, err
	}

	var update ast.Statement
	if p.curr.Type != token.RPAREN {
		updateExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		update = &ast.ExpressionStatement{Expr: updateExpr}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: init, Condition: cond, Update: update, Body: body}, nil
}

// parseForClauseStatement parses the init clause of a for-loop header: a
// `let`/`var` declaration without its own trailing semicolon consumption
// (the caller consumes the shared separator), or a bare expression.
func (p *Parser) parseForClauseStatement() (ast.Statement, error) {
	if p.curr.Type == token.LET || p.curr.Type == token.VAR {
		p.advance()
		return p.parseLetBody()
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expr: expr}, nil
}

func (p *Parser) parseFunction() (ast.Statement, error) {
	p.advance() // consume 'function'
	if p.curr.Type != token.IDENT {
		return nil, p.errorf("expected function name, got %s", p.curr.Type)
	}
	name := p.curr.Literal
	p.advance()

	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	for p.curr.Type != token.RPAREN {
		if p.curr.Type != token.IDENT {
			return nil, p.errorf("expected parameter name, got %s", p.curr.Type)
		}
		params = append(params, p.curr.Literal)
		p.advance()
		if p.curr.Type == token.COMMA {
			p.advance()
		}
	}
	p.advance() // consume ')'

	body, err := p.parseScope()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipSemi()
	return &ast.ExpressionStatement{Expr: expr}, nil
}
