package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tinyjs/ast"
	"tinyjs/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.New(src).Parse()
	assert.NoError(t, err)
	return prog
}

func TestOptimizer_FoldsConstantArithmetic(t *testing.T) {
	prog := Optimize(parse(t, "1 + 2 * 3;"))
	lit := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.Literal)
	assert.Equal(t, "7", lit.Token.Literal)
}

func TestOptimizer_PropagatesLetConstantIntoUse(t *testing.T) {
	prog := Optimize(parse(t, "let x = 2; x + 3;"))
	lit := prog.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.Literal)
	assert.Equal(t, "5", lit.Token.Literal)
}

func TestOptimizer_AssignmentInvalidatesConstant(t *testing.T) {
	prog := Optimize(parse(t, "let x = 2; x = 9; x + 1;"))
	expr := prog.Statements[2].(*ast.ExpressionStatement).Expr
	_, stillBinary := expr.(*ast.BinaryOp)
	assert.True(t, stillBinary, "x should no longer be tracked as constant after reassignment")
}

func TestOptimizer_LeavesFunctionCallOpaque(t *testing.T) {
	prog := Optimize(parse(t, "let x = 2; f(x);"))
	call := prog.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.FunctionCall)
	_, isIdent := call.Args[0].(*ast.Identifier)
	assert.True(t, isIdent, "FunctionCall arguments are left as opaque leaves")
}

func TestOptimizer_FoldsStringConcatenation(t *testing.T) {
	prog := Optimize(parse(t, `"a" + "b";`))
	lit := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.Literal)
	assert.Equal(t, "ab", lit.Token.Literal)
}

func TestOptimizer_FoldsUnaryNegate(t *testing.T) {
	prog := Optimize(parse(t, "-5;"))
	lit := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.Literal)
	assert.Equal(t, "-5", lit.Token.Literal)
}
