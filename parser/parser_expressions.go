package parser

import (
	"tinyjs/ast"
	"tinyjs/tinyerr"
	"tinyjs/token"
)

var binaryOps = map[token.Type]ast.BinaryOperator{
	token.PLUS:    ast.OpAdd,
	token.MINUS:   ast.OpSub,
	token.STAR:    ast.OpMul,
	token.SLASH:   ast.OpDiv,
	token.PERCENT: ast.OpMod,
	token.AND:     ast.OpAnd,
	token.OR:      ast.OpOr,
	token.GT:      ast.OpGt,
	token.LT:      ast.OpLt,
	token.GTE:     ast.OpGte,
	token.LTE:     ast.OpLte,
	token.EQ:      ast.OpEq,
	token.NEQ:     ast.OpNeq,
}

var assignOps = map[token.Type]ast.AssignOperator{
	token.ASSIGN:   ast.AssignPlain,
	token.PLUS_EQ:  ast.AssignAdd,
	token.MINUS_EQ: ast.AssignSub,
	token.STAR_EQ:  ast.AssignMul,
	token.SLASH_EQ: ast.AssignDiv,
	token.PCT_EQ:   ast.AssignMod,
}

// parseExpression parses one full expression. The grammar has no
// precedence table: after parsing a left-hand operand, whatever binary or
// assignment operator follows takes the ENTIRE remaining expression as its
// right-hand side, via recursion back into parseExpression. This is what
// makes `a - b - c` parse as `a - (b - c)` rather than left-associatively.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	if op, ok := assignOps[p.curr.Type]; ok {
		if !isAssignable(left) {
			return nil, p.errorf("invalid assignment target %s", left.String())
		}
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Op: op, Target: left, Value: value}, nil
	}

	if op, ok := binaryOps[p.curr.Type]; ok {
		p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Op: op, Left: left, Right: right}, nil
	}

	return left, nil
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.Index, *ast.PropertyAccess:
		return true
	default:
		return false
	}
}

// parseUnary handles prefix `-` and `!`, then falls through to a postfix
// chain over a primary expression.
func (p *Parser) parseUnary() (ast.Expression, error) {
	switch p.curr.Type {
	case token.MINUS:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpNegate, Operand: operand}, nil
	case token.BANG:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpNot, Operand: operand}, nil
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a primary expression followed by any chain of calls,
// indexing, and property access, then an optional trailing ++ / --.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.curr.Type {
		case token.LPAREN:
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.FunctionCall{Callee: expr, Args: args}
		case token.LBRACKET:
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.Index{Target: expr, Index: index}
		case token.DOT:
			p.advance()
			if p.curr.Type != token.IDENT {
				return nil, p.errorf("expected property name after '.', got %s", p.curr.Type)
			}
			name := p.curr.Literal
			p.advance()
			expr = &ast.PropertyAccess{Target: expr, Name: name}
		case token.INCR, token.DECR:
			if !isAssignable(expr) {
				return expr, nil
			}
			op := ast.OpIncrement
			if p.curr.Type == token.DECR {
				op = ast.OpDecrement
			}
			p.advance()
			return &ast.Increment{Op: op, Target: expr}, nil
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]ast.Expression, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.curr.Type != token.RPAREN {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curr.Type == token.COMMA {
			p.advance()
		}
	}
	p.advance() // consume ')'
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.curr.Type {
	case token.NUMBER, token.STRING, token.TRUE, token.FALSE:
		lit := &ast.Literal{Token: p.curr}
		p.advance()
		return lit, nil
	case token.IDENT:
		id := &ast.Identifier{Name: p.curr.Literal}
		p.advance()
		return id, nil
	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	case token.INVALID:
		return nil, tinyerr.NewAt(tinyerr.LexError, p.curr.Line, p.curr.Column, "invalid token %q", p.curr.Literal)
	default:
		return nil, p.errorf("unexpected token %s in expression", p.curr.Type)
	}
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	p.advance() // consume '['
	arr := &ast.Array{}
	for p.curr.Type != token.RBRACKET {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, elem)
		if p.curr.Type == token.COMMA {
			p.advance()
		}
	}
	p.advance() // consume ']'
	return arr, nil
}

func (p *Parser) parseObjectLiteral() (ast.Expression, error) {
	p.advance() // consume '{'
	obj := &ast.Object{}
	for p.curr.Type != token.RBRACE {
		var key string
		switch p.curr.Type {
		case token.IDENT:
			key = p.curr.Literal
		case token.STRING:
			key = p.curr.Literal
		default:
			return nil, p.errorf("expected property key, got %s", p.curr.Type)
		}
		p.advance()
		if err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, ast.Property{Key: key, Value: value})
		if p.curr.Type == token.COMMA {
			p.advance()
		}
	}
	p.advance() // consume '}'
	return obj, nil
}
