package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tinyjs/token"
)

func TestBinaryOp_String(t *testing.T) {
	expr := &BinaryOp{
		Op:    OpAdd,
		Left:  &Literal{Token: token.New(token.NUMBER, "1", 1, 1)},
		Right: &Literal{Token: token.New(token.NUMBER, "2", 1, 1)},
	}
	assert.Equal(t, "(1 + 2)", expr.String())
}

func TestFunctionCall_String(t *testing.T) {
	call := &FunctionCall{
		Callee: &Identifier{Name: "fact"},
		Args:   []Expression{&Literal{Token: token.New(token.NUMBER, "5", 1, 1)}},
	}
	assert.Equal(t, "fact(5)", call.String())
}

func TestProgram_String(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&Let{Name: "x", Value: &Literal{Token: token.New(token.NUMBER, "1", 1, 1)}},
			&Return{Value: &Identifier{Name: "x"}},
		},
	}
	assert.Contains(t, prog.String(), "let x = 1;")
	assert.Contains(t, prog.String(), "return x;")
}
