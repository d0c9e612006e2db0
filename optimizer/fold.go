package optimizer

import (
	"strconv"
	"strings"

	"tinyjs/ast"
	"tinyjs/token"
)

// foldStatement recurses bottom-up through a statement's sub-expressions
// and sub-statements, replacing any BinaryOp/UnaryOp over two literal
// operands with the literal result.
func foldStatement(stmt ast.Statement) ast.Statement {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		s.Expr = foldExpr(s.Expr)
		return s
	case *ast.Return:
		if s.Value != nil {
			s.Value = foldExpr(s.Value)
		}
		return s
	case *ast.If:
		s.Condition = foldExpr(s.Condition)
		s.Then = foldStatement(s.Then)
		if s.Else != nil {
			s.Else = foldStatement(s.Else)
		}
		return s
	case *ast.While:
		s.Condition = foldExpr(s.Condition)
		s.Body = foldStatement(s.Body)
		return s
	case *ast.For:
		if s.Init != nil {
			s.Init = foldStatement(s.Init)
		}
		if s.Condition != nil {
			s.Condition = foldExpr(s.Condition)
		}
		if s.Update != nil {
			s.Update = foldStatement(s.Update)
		}
		s.Body = foldStatement(s.Body)
		return s
	case *ast.Function:
		s.Body = foldStatement(s.Body).(*ast.Scope)
		return s
	case *ast.Scope:
		for i, st := range s.Statements {
			s.Statements[i] = foldStatement(st)
		}
		return s
	case *ast.Let:
		s.Value = foldExpr(s.Value)
		return s
	default:
		return stmt
	}
}

func foldExpr(expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.Object:
		for i := range e.Properties {
			e.Properties[i].Value = foldExpr(e.Properties[i].Value)
		}
		return e
	case *ast.Array:
		for i := range e.Elements {
			e.Elements[i] = foldExpr(e.Elements[i])
		}
		return e
	case *ast.Assignment:
		e.Value = foldExpr(e.Value)
		return e
	case *ast.UnaryOp:
		e.Operand = foldExpr(e.Operand)
		if lit, ok := e.Operand.(*ast.Literal); ok {
			if folded, ok := foldUnary(e.Op, lit); ok {
				return folded
			}
		}
		return e
	case *ast.BinaryOp:
		e.Left = foldExpr(e.Left)
		e.Right = foldExpr(e.Right)
		leftLit, leftOK := e.Left.(*ast.Literal)
		rightLit, rightOK := e.Right.(*ast.Literal)
		if leftOK && rightOK {
			if folded, ok := foldBinary(e.Op, leftLit, rightLit); ok {
				return folded
			}
		}
		return e
	default:
		return e
	}
}

func foldUnary(op ast.UnaryOperator, operand *ast.Literal) (*ast.Literal, bool) {
	switch op {
	case ast.OpNegate:
		if operand.Token.Type != token.NUMBER {
			return nil, false
		}
		n, err := strconv.ParseFloat(operand.Token.Literal, 64)
		if err != nil {
			return nil, false
		}
		return &ast.Literal{Token: token.New(token.NUMBER, formatNumber(-n), 0, 0)}, true
	case ast.OpNot:
		b, ok := boolOf(operand)
		if !ok {
			return nil, false
		}
		return &ast.Literal{Token: token.New(boolType(!b), boolText(!b), 0, 0)}, true
	default:
		return nil, false
	}
}

func foldBinary(op ast.BinaryOperator, left, right *ast.Literal) (*ast.Literal, bool) {
	if op == ast.OpAdd && left.Token.Type == token.STRING && right.Token.Type == token.STRING {
		return &ast.Literal{Token: token.New(token.STRING, left.Token.Literal+right.Token.Literal, 0, 0)}, true
	}

	ln, lok := numberOf(left)
	rn, rok := numberOf(right)
	if !lok || !rok {
		return nil, false
	}

	switch op {
	case ast.OpAdd:
		return numLit(ln + rn), true
	case ast.OpSub:
		return numLit(ln - rn), true
	case ast.OpMul:
		return numLit(ln * rn), true
	case ast.OpDiv:
		return numLit(ln / rn), true
	case ast.OpMod:
		if int64(rn) == 0 {
			return nil, false
		}
		return numLit(float64(int64(ln) % int64(rn))), true
	default:
		return nil, false
	}
}

func numLit(n float64) *ast.Literal {
	return &ast.Literal{Token: token.New(token.NUMBER, formatNumber(n), 0, 0)}
}

func numberOf(lit *ast.Literal) (float64, bool) {
	if lit.Token.Type != token.NUMBER {
		return 0, false
	}
	n, err := strconv.ParseFloat(lit.Token.Literal, 64)
	return n, err == nil
}

func boolOf(lit *ast.Literal) (bool, bool) {
	switch lit.Token.Type {
	case token.TRUE:
		return true, true
	case token.FALSE:
		return false, true
	default:
		return false, false
	}
}

func boolType(b bool) token.Type {
	if b {
		return token.TRUE
	}
	return token.FALSE
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
