/*
Binary/unary operator evaluation, structural equality, and the
assignment/increment machinery that re-stores a value through an
Identifier/Index/PropertyAccess target.

Grounded on original_source/src/runtime/interpreter.rs's
eval_binary_op/eval_unary_op match arms for the arithmetic and
comparison rules; short-circuit && / || is a deliberate redesign (see
DESIGN.md and SPEC_FULL.md §4.6) rather than spec.md's literal
"evaluate both sides first" reading.
*/
package evaluator

import (
	"math"

	"tinyjs/ast"
	"tinyjs/tinyerr"
	"tinyjs/values"
)

// evalBinaryOp evaluates a BinaryOp node. && and || short-circuit: the
// right operand is only evaluated when the left side hasn't already
// decided the result.
func (e *Evaluator) evalBinaryOp(b *ast.BinaryOp) (values.Value, error) {
	if b.Op == ast.OpAnd || b.Op == ast.OpOr {
		return e.evalLogical(b)
	}

	left, err := e.evalExpression(b.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(b.Right)
	if err != nil {
		return nil, err
	}
	return applyBinary(b.Op, left, right)
}

func (e *Evaluator) evalLogical(b *ast.BinaryOp) (values.Value, error) {
	left, err := e.evalExpression(b.Left)
	if err != nil {
		return nil, err
	}
	if b.Op == ast.OpAnd && !left.Truthy() {
		return values.Boolean(false), nil
	}
	if b.Op == ast.OpOr && left.Truthy() {
		return values.Boolean(true), nil
	}
	right, err := e.evalExpression(b.Right)
	if err != nil {
		return nil, err
	}
	return values.Boolean(right.Truthy()), nil
}

// applyBinary evaluates every non-short-circuit BinaryOperator over
// already-evaluated operands. Shared by plain binary expressions and by
// compound-assignment desugaring.
func applyBinary(op ast.BinaryOperator, left, right values.Value) (values.Value, error) {
	switch op {
	case ast.OpAdd:
		return applyAdd(left, right)
	case ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return applyArithmetic(op, left, right)
	case ast.OpEq:
		return values.Boolean(valuesEqual(left, right)), nil
	case ast.OpNeq:
		return values.Boolean(!valuesEqual(left, right)), nil
	case ast.OpLt, ast.OpLte, ast.OpGt, ast.OpGte:
		return applyComparison(op, left, right)
	default:
		return nil, tinyerr.New(tinyerr.TypeError, "unsupported operator %s", op)
	}
}

// applyAdd implements +: Number+Number adds, String+String concatenates,
// a String mixed with a Number stringifies the number and concatenates;
// any other pairing is a TypeError.
func applyAdd(left, right values.Value) (values.Value, error) {
	ln, lIsNum := left.(values.Number)
	rn, rIsNum := right.(values.Number)
	if lIsNum && rIsNum {
		return values.Number(float64(ln) + float64(rn)), nil
	}
	ls, lIsStr := left.(values.String)
	rs, rIsStr := right.(values.String)
	if lIsStr && rIsStr {
		return values.String(string(ls) + string(rs)), nil
	}
	if lIsStr && rIsNum {
		return values.String(string(ls) + rn.String()), nil
	}
	if lIsNum && rIsStr {
		return values.String(ln.String() + string(rs)), nil
	}
	return nil, tinyerr.New(tinyerr.TypeError, "cannot add %s and %s", left.Kind(), right.Kind())
}

// applyArithmetic implements - * / %, all of which require both operands
// to be Number. Division by zero yields IEEE infinity/NaN, not an error.
// Modulo matches the optimizer's constant-folding definition
// (truncating both operands to int64) so that folding is
// behavior-preserving.
func applyArithmetic(op ast.BinaryOperator, left, right values.Value) (values.Value, error) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return nil, tinyerr.New(tinyerr.TypeError, "operator %s requires two numbers, got %s and %s", op, left.Kind(), right.Kind())
	}
	l, r := float64(ln), float64(rn)
	switch op {
	case ast.OpSub:
		return values.Number(l - r), nil
	case ast.OpMul:
		return values.Number(l * r), nil
	case ast.OpDiv:
		return values.Number(l / r), nil
	case ast.OpMod:
		if int64(r) == 0 {
			return values.Number(math.NaN()), nil
		}
		return values.Number(float64(int64(l) % int64(r))), nil
	default:
		return nil, tinyerr.New(tinyerr.TypeError, "unsupported arithmetic operator %s", op)
	}
}

// applyComparison implements < <= > >=, requiring both operands to be
// Number.
func applyComparison(op ast.BinaryOperator, left, right values.Value) (values.Value, error) {
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return nil, tinyerr.New(tinyerr.TypeError, "operator %s requires two numbers, got %s and %s", op, left.Kind(), right.Kind())
	}
	l, r := float64(ln), float64(rn)
	switch op {
	case ast.OpLt:
		return values.Boolean(l < r), nil
	case ast.OpLte:
		return values.Boolean(l <= r), nil
	case ast.OpGt:
		return values.Boolean(l > r), nil
	case ast.OpGte:
		return values.Boolean(l >= r), nil
	default:
		return nil, tinyerr.New(tinyerr.TypeError, "unsupported comparison operator %s", op)
	}
}

// valuesEqual implements == / != with no implicit coercion: operands of
// different Kind are never equal. Array equality is by shared identity
// (arrays are reference values); Object equality is structural, since
// Object is copied on every write and has no identity of its own.
func valuesEqual(left, right values.Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case values.Number:
		r := right.(values.Number)
		return float64(l) == float64(r)
	case values.String:
		return l == right.(values.String)
	case values.Boolean:
		return l == right.(values.Boolean)
	case values.Null:
		return true
	case values.Undefined:
		return true
	case values.Array:
		return l.SameIdentity(right.(values.Array))
	case values.Object:
		return sameObjectContent(l, right.(values.Object))
	case values.Function:
		r := right.(values.Function)
		return l.Name == r.Name
	case values.NativeFunction:
		r := right.(values.NativeFunction)
		return l.Name == r.Name
	default:
		return false
	}
}

func sameObjectContent(a, b values.Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	aKeys := a.Keys()
	for i, k := range aKeys {
		bKeys := b.Keys()
		if bKeys[i] != k {
			return false
		}
		av, _ := a.Get(k)
		bv, _ := b.Get(k)
		if !valuesEqual(av, bv) {
			return false
		}
	}
	return true
}

// evalUnaryOp evaluates Negate (Number only) and Not (any value, via
// truthiness).
func (e *Evaluator) evalUnaryOp(u *ast.UnaryOp) (values.Value, error) {
	operand, err := e.evalExpression(u.Operand)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case ast.OpNegate:
		n, ok := operand.(values.Number)
		if !ok {
			return nil, tinyerr.New(tinyerr.TypeError, "unary - requires a number, got %s", operand.Kind())
		}
		return values.Number(-float64(n)), nil
	case ast.OpNot:
		return values.Boolean(!operand.Truthy()), nil
	default:
		return nil, tinyerr.New(tinyerr.TypeError, "unsupported unary operator %s", u.Op)
	}
}

// assignOpToBinary maps a compound-assignment spelling to the binary
// operator it desugars to.
var assignOpToBinary = map[ast.AssignOperator]ast.BinaryOperator{
	ast.AssignAdd: ast.OpAdd,
	ast.AssignSub: ast.OpSub,
	ast.AssignMul: ast.OpMul,
	ast.AssignDiv: ast.OpDiv,
	ast.AssignMod: ast.OpMod,
}

// evalAssignment evaluates value, desugars a compound operator into
// `target OP value` against the target's current contents, and re-stores
// the result through the target.
func (e *Evaluator) evalAssignment(a *ast.Assignment) (values.Value, error) {
	rhs, err := e.evalExpression(a.Value)
	if err != nil {
		return nil, err
	}

	newVal := rhs
	if a.Op != ast.AssignPlain {
		binOp, ok := assignOpToBinary[a.Op]
		if !ok {
			return nil, tinyerr.New(tinyerr.TypeError, "unsupported assignment operator %s", a.Op)
		}
		cur, err := e.evalExpression(a.Target)
		if err != nil {
			return nil, err
		}
		newVal, err = applyBinary(binOp, cur, rhs)
		if err != nil {
			return nil, err
		}
	}

	if err := e.storeTarget(a.Target, newVal); err != nil {
		return nil, err
	}
	return newVal, nil
}

// evalIncrement implements postfix ++ / --: read the old Number value,
// write old±1 back through the target, and return the OLD value.
func (e *Evaluator) evalIncrement(inc *ast.Increment) (values.Value, error) {
	cur, err := e.evalExpression(inc.Target)
	if err != nil {
		return nil, err
	}
	n, ok := cur.(values.Number)
	if !ok {
		return nil, tinyerr.New(tinyerr.TypeError, "%s requires a number operand, got %s", inc.Op, cur.Kind())
	}
	delta := 1.0
	if inc.Op == ast.OpDecrement {
		delta = -1.0
	}
	if err := e.storeTarget(inc.Target, values.Number(float64(n)+delta)); err != nil {
		return nil, err
	}
	return n, nil
}

// storeTarget re-stores v through target, which must be an Identifier,
// Index, or PropertyAccess (the parser's isAssignable set). Array writes
// mutate the shared backing store in place; Object writes recurse
// outward, re-storing the updated Object through whatever expression
// held it, since Object is value-semantic rather than reference-semantic.
func (e *Evaluator) storeTarget(target ast.Expression, v values.Value) error {
	switch t := target.(type) {
	case *ast.Identifier:
		e.scope.Set(t.Name, v)
		return nil

	case *ast.Index:
		containerVal, err := e.evalExpression(t.Target)
		if err != nil {
			return err
		}
		arr, ok := containerVal.(values.Array)
		if !ok {
			return tinyerr.New(tinyerr.TypeError, "cannot index-assign into %s", containerVal.Kind())
		}
		idxVal, err := e.evalExpression(t.Index)
		if err != nil {
			return err
		}
		i, err := indexFromValue(idxVal)
		if err != nil {
			return err
		}
		if !arr.Set(i, v) {
			return tinyerr.New(tinyerr.IndexError, "index %d out of bounds for array of length %d", i, arr.Len())
		}
		return nil

	case *ast.PropertyAccess:
		containerVal, err := e.evalExpression(t.Target)
		if err != nil {
			return err
		}
		obj, ok := containerVal.(values.Object)
		if !ok {
			return tinyerr.New(tinyerr.TypeError, "cannot set property %q on %s", t.Name, containerVal.Kind())
		}
		updated := obj.With(t.Name, v)
		return e.storeTarget(t.Target, updated)

	default:
		return tinyerr.New(tinyerr.TypeError, "invalid assignment target %T", target)
	}
}
