package optimizer

import (
	"tinyjs/ast"
	"tinyjs/token"
)

// propagateStatement recurses into a statement's sub-expressions and
// sub-statements, substituting identifiers for tracked constants and
// updating the constant table as Let/Assignment/Scope are encountered.
func (o *Optimizer) propagateStatement(stmt ast.Statement) ast.Statement {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		s.Expr = o.propagateExpr(s.Expr)
		return s
	case *ast.Return:
		if s.Value != nil {
			s.Value = o.propagateExpr(s.Value)
		}
		return s
	case *ast.If:
		s.Condition = o.propagateExpr(s.Condition)
		s.Then = o.propagateStatement(s.Then)
		if s.Else != nil {
			s.Else = o.propagateStatement(s.Else)
		}
		return s
	case *ast.While:
		s.Condition = o.propagateExpr(s.Condition)
		s.Body = o.propagateStatement(s.Body)
		return s
	case *ast.For:
		if s.Init != nil {
			s.Init = o.propagateStatement(s.Init)
		}
		if s.Condition != nil {
			s.Condition = o.propagateExpr(s.Condition)
		}
		if s.Update != nil {
			s.Update = o.propagateStatement(s.Update)
		}
		s.Body = o.propagateStatement(s.Body)
		return s
	case *ast.Function:
		o.enter()
		body := o.propagateStatement(s.Body)
		o.exit()
		s.Body = body.(*ast.Scope)
		return s
	case *ast.Scope:
		o.enter()
		for i, st := range s.Statements {
			s.Statements[i] = o.propagateStatement(st)
		}
		o.exit()
		return s
	case *ast.Let:
		s.Value = o.propagateExpr(s.Value)
		if cv, ok := literalConst(s.Value); ok {
			o.markConstant(s.Name, cv)
		}
		return s
	default:
		return stmt
	}
}

// propagateExpr substitutes any Identifier known to hold a constant value
// with a Literal carrying that value, and recurses into sub-expressions.
// FunctionCall, Index, PropertyAccess, and Increment are left as opaque
// leaves: their operands are not rewritten, since a call or index may have
// side effects or target runtime-only state the constant table can't see.
func (o *Optimizer) propagateExpr(expr ast.Expression) ast.Expression {
	switch e := expr.(type) {
	case *ast.Identifier:
		if cv, ok := o.lookup(e.Name); ok {
			return &ast.Literal{Token: token.New(cv.kind, cv.text, 0, 0)}
		}
		return e
	case *ast.Object:
		for i := range e.Properties {
			e.Properties[i].Value = o.propagateExpr(e.Properties[i].Value)
		}
		return e
	case *ast.Array:
		for i := range e.Elements {
			e.Elements[i] = o.propagateExpr(e.Elements[i])
		}
		return e
	case *ast.BinaryOp:
		e.Left = o.propagateExpr(e.Left)
		e.Right = o.propagateExpr(e.Right)
		return e
	case *ast.UnaryOp:
		e.Operand = o.propagateExpr(e.Operand)
		return e
	case *ast.Assignment:
		e.Value = o.propagateExpr(e.Value)
		if id, ok := e.Target.(*ast.Identifier); ok {
			o.invalidate(id.Name)
		}
		return e
	case *ast.FunctionCall, *ast.Index, *ast.PropertyAccess, *ast.Increment:
		return e
	default:
		return e
	}
}

// literalConst reports whether expr is already a Number/String/Boolean
// literal, the only shapes a Let can record as statically constant.
func literalConst(expr ast.Expression) (constVal, bool) {
	lit, ok := expr.(*ast.Literal)
	if !ok {
		return constVal{}, false
	}
	switch lit.Token.Type {
	case token.NUMBER, token.STRING, token.TRUE, token.FALSE:
		return constVal{kind: lit.Token.Type, text: lit.Token.Literal}, true
	default:
		return constVal{}, false
	}
}
