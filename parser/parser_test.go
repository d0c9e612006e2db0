package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tinyjs/ast"
)

func parseOne(t *testing.T, src string) ast.Statement {
	t.Helper()
	prog, err := New(src).Parse()
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 1)
	return prog.Statements[0]
}

func exprOf(t *testing.T, stmt ast.Statement) ast.Expression {
	t.Helper()
	es, ok := stmt.(*ast.ExpressionStatement)
	assert.True(t, ok, "expected ExpressionStatement, got %T", stmt)
	return es.Expr
}

func TestParser_FlatRightAssociativeArithmetic(t *testing.T) {
	stmt := parseOne(t, "1 + 2 * 3;")
	bin := exprOf(t, stmt).(*ast.BinaryOp)
	assert.Equal(t, ast.OpAdd, bin.Op)
	assert.Equal(t, "1", bin.Left.(*ast.Literal).Token.Literal)
	rhs := bin.Right.(*ast.BinaryOp)
	assert.Equal(t, ast.OpMul, rhs.Op)
}

func TestParser_SubtractionIsRightAssociative(t *testing.T) {
	stmt := parseOne(t, "1 - 2 - 3;")
	bin := exprOf(t, stmt).(*ast.BinaryOp)
	assert.Equal(t, ast.OpSub, bin.Op)
	assert.Equal(t, "1", bin.Left.(*ast.Literal).Token.Literal)
	rhs, ok := bin.Right.(*ast.BinaryOp)
	assert.True(t, ok, "expected right-associative nesting, got %T", bin.Right)
	assert.Equal(t, ast.OpSub, rhs.Op)
}

func TestParser_LetStatement(t *testing.T) {
	prog, err := New("let x = 5;").Parse()
	assert.NoError(t, err)
	let := prog.Statements[0].(*ast.Let)
	assert.Equal(t, "x", let.Name)
}

func TestParser_VarIsEquivalentToLet(t *testing.T) {
	prog, err := New("var x = 5;").Parse()
	assert.NoError(t, err)
	_, ok := prog.Statements[0].(*ast.Let)
	assert.True(t, ok)
}

func TestParser_LetWithoutInitializerDefaultsToUndefined(t *testing.T) {
	prog, err := New("let x;").Parse()
	assert.NoError(t, err)
	let := prog.Statements[0].(*ast.Let)
	assert.Equal(t, "x", let.Name)
	ident, ok := let.Value.(*ast.Identifier)
	assert.True(t, ok, "expected Value to be the undefined identifier sentinel, got %T", let.Value)
	assert.Equal(t, "undefined", ident.Name)
}

func TestParser_ForInitWithoutInitializerDefaultsToUndefined(t *testing.T) {
	prog, err := New("for (let i; i < 3; i = i + 1) { }").Parse()
	assert.NoError(t, err)
	forStmt := prog.Statements[0].(*ast.For)
	let := forStmt.Init.(*ast.Let)
	assert.Equal(t, "i", let.Name)
	ident, ok := let.Value.(*ast.Identifier)
	assert.True(t, ok, "expected Value to be the undefined identifier sentinel, got %T", let.Value)
	assert.Equal(t, "undefined", ident.Name)
}

func TestParser_FunctionDeclarationAndCall(t *testing.T) {
	prog, err := New(`
		function fact(n) {
			if (n <= 1) { return 1; }
			return n * fact(n - 1);
		}
		fact(5);
	`).Parse()
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 2)
	fn := prog.Statements[0].(*ast.Function)
	assert.Equal(t, "fact", fn.Name)
	assert.Equal(t, []string{"n"}, fn.Params)

	call := exprOf(t, prog.Statements[1]).(*ast.FunctionCall)
	assert.Equal(t, "fact", call.Callee.(*ast.Identifier).Name)
}

func TestParser_CompoundAssignment(t *testing.T) {
	stmt := parseOne(t, "x += 1;")
	assign := exprOf(t, stmt).(*ast.Assignment)
	assert.Equal(t, ast.AssignAdd, assign.Op)
}

func TestParser_PostfixIncrement(t *testing.T) {
	stmt := parseOne(t, "x++;")
	inc := exprOf(t, stmt).(*ast.Increment)
	assert.Equal(t, ast.OpIncrement, inc.Op)
}

func TestParser_ArrayAndIndex(t *testing.T) {
	stmt := parseOne(t, "[1, 2, 3][0];")
	idx := exprOf(t, stmt).(*ast.Index)
	arr := idx.Target.(*ast.Array)
	assert.Len(t, arr.Elements, 3)
}

func TestParser_ObjectLiteralAndPropertyAccess(t *testing.T) {
	stmt := parseOne(t, `({a: 1, b: 2}).a;`)
	prop := exprOf(t, stmt).(*ast.PropertyAccess)
	assert.Equal(t, "a", prop.Name)
	obj := prop.Target.(*ast.Object)
	assert.Len(t, obj.Properties, 2)
}

func TestParser_WhileLoop(t *testing.T) {
	prog, err := New("while (x < 10) { x = x + 1; }").Parse()
	assert.NoError(t, err)
	w := prog.Statements[0].(*ast.While)
	assert.NotNil(t, w.Condition)
	assert.Len(t, w.Body.(*ast.Scope).Statements, 1)
}

func TestParser_ForLoop(t *testing.T) {
	prog, err := New("for (let i = 0; i < 10; i = i + 1) { }").Parse()
	assert.NoError(t, err)
	f := prog.Statements[0].(*ast.For)
	assert.NotNil(t, f.Init)
	assert.NotNil(t, f.Condition)
	assert.NotNil(t, f.Update)
}

func TestParser_IfElse(t *testing.T) {
	prog, err := New("if (true) { 1; } else { 2; }").Parse()
	assert.NoError(t, err)
	ifNode := prog.Statements[0].(*ast.If)
	assert.NotNil(t, ifNode.Else)
}

func TestParser_BreakAndContinue(t *testing.T) {
	prog, err := New("while (true) { break; continue; }").Parse()
	assert.NoError(t, err)
	body := prog.Statements[0].(*ast.While).Body.(*ast.Scope).Statements
	_, isBreak := body[0].(*ast.Break)
	_, isContinue := body[1].(*ast.Continue)
	assert.True(t, isBreak)
	assert.True(t, isContinue)
}

func TestParser_InvalidAssignmentTargetErrors(t *testing.T) {
	_, err := New("1 = 2;").Parse()
	assert.Error(t, err)
}

func TestParser_UnterminatedBlockErrors(t *testing.T) {
	_, err := New("function f() { return 1;").Parse()
	assert.Error(t, err)
}
