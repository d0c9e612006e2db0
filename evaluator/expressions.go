package evaluator

import (
	"strconv"

	"tinyjs/ast"
	"tinyjs/builtins"
	"tinyjs/tinyerr"
	"tinyjs/token"
	"tinyjs/values"
)

// evalExpression evaluates expr against the live scope and returns its
// value, or the first error raised while doing so.
func (e *Evaluator) evalExpression(expr ast.Expression) (values.Value, error) {
	switch ex := expr.(type) {
	case *ast.Literal:
		return literalValue(ex)

	case *ast.Identifier:
		v, ok := e.scope.Get(ex.Name)
		if !ok {
			return nil, tinyerr.New(tinyerr.NameError, "undefined identifier %q", ex.Name)
		}
		return v, nil

	case *ast.Object:
		obj := values.NewObject()
		for _, p := range ex.Properties {
			v, err := e.evalExpression(p.Value)
			if err != nil {
				return nil, err
			}
			obj = obj.With(p.Key, v)
		}
		return obj, nil

	case *ast.Array:
		elems := make([]values.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.evalExpression(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return values.NewArray(elems...), nil

	case *ast.BinaryOp:
		return e.evalBinaryOp(ex)

	case *ast.UnaryOp:
		return e.evalUnaryOp(ex)

	case *ast.FunctionCall:
		return e.evalFunctionCall(ex)

	case *ast.Assignment:
		return e.evalAssignment(ex)

	case *ast.Index:
		return e.evalIndex(ex)

	case *ast.PropertyAccess:
		return e.evalPropertyAccess(ex)

	case *ast.Increment:
		return e.evalIncrement(ex)

	default:
		return nil, tinyerr.New(tinyerr.TypeError, "unsupported expression %T", expr)
	}
}

// literalValue converts a parsed Literal token into its runtime value.
func literalValue(lit *ast.Literal) (values.Value, error) {
	switch lit.Token.Type {
	case token.NUMBER:
		n, err := strconv.ParseFloat(lit.Token.Literal, 64)
		if err != nil {
			return nil, tinyerr.New(tinyerr.LexError, "malformed number literal %q", lit.Token.Literal)
		}
		return values.Number(n), nil
	case token.STRING:
		return values.String(lit.Token.Literal), nil
	case token.TRUE:
		return values.Boolean(true), nil
	case token.FALSE:
		return values.Boolean(false), nil
	default:
		return nil, tinyerr.New(tinyerr.TypeError, "unsupported literal token %s", lit.Token.Type)
	}
}

// evalFunctionCall evaluates callee and args, then dispatches to a user
// Function or a host NativeFunction.
func (e *Evaluator) evalFunctionCall(call *ast.FunctionCall) (values.Value, error) {
	callee, err := e.evalExpression(call.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, len(call.Args))
	for i, a := range call.Args {
		v, err := e.evalExpression(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case values.Function:
		return e.callFunction(fn, args)
	case values.NativeFunction:
		return fn.Call(args)
	default:
		return nil, tinyerr.New(tinyerr.TypeError, "%s is not callable", callee.Kind())
	}
}

// callFunction runs fn's body against a fresh call frame holding only its
// bound parameters and the global frame (no closures). A bare or absent
// return becomes Undefined.
func (e *Evaluator) callFunction(fn values.Function, args []values.Value) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, tinyerr.New(tinyerr.ArityError, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	body, ok := fn.Body.(*ast.Scope)
	if !ok {
		return nil, tinyerr.New(tinyerr.TypeError, "function %s has a malformed body", fn.Name)
	}

	saved := e.scope.EnterCall()
	defer e.scope.ExitCall(saved)
	for i, p := range fn.Params {
		e.scope.Set(p, args[i])
	}

	for _, st := range body.Statements {
		sig, err := e.evalStatement(st)
		if err != nil {
			return nil, err
		}
		if sig.kind == signalReturn {
			return sig.value, nil
		}
	}
	return values.Undefined{}, nil
}

// evalIndex evaluates target[index]. target must be an Array; index must
// be a finite non-negative integer within bounds.
func (e *Evaluator) evalIndex(idx *ast.Index) (values.Value, error) {
	targetVal, err := e.evalExpression(idx.Target)
	if err != nil {
		return nil, err
	}
	arr, ok := targetVal.(values.Array)
	if !ok {
		return nil, tinyerr.New(tinyerr.TypeError, "cannot index into %s", targetVal.Kind())
	}
	idxVal, err := e.evalExpression(idx.Index)
	if err != nil {
		return nil, err
	}
	i, err := indexFromValue(idxVal)
	if err != nil {
		return nil, err
	}
	v, ok := arr.Get(i)
	if !ok {
		return nil, tinyerr.New(tinyerr.IndexError, "index %d out of bounds for array of length %d", i, arr.Len())
	}
	return v, nil
}

// evalPropertyAccess resolves target.name: an ordered scan on Object, or
// a bound method synthesized over the receiver for Array/String/Number.
func (e *Evaluator) evalPropertyAccess(pa *ast.PropertyAccess) (values.Value, error) {
	targetVal, err := e.evalExpression(pa.Target)
	if err != nil {
		return nil, err
	}
	return resolveProperty(targetVal, pa.Name)
}

// resolveProperty implements invariant 2: a Property on a non-container
// value resolves via the builtin method table; on Object it resolves by
// ordered scan; on anything else it is a TypeError.
func resolveProperty(target values.Value, name string) (values.Value, error) {
	switch t := target.(type) {
	case values.Object:
		v, ok := t.Get(name)
		if !ok {
			return values.Undefined{}, nil
		}
		return v, nil
	case values.Array:
		v, ok := builtins.ArrayProperty(t, name)
		if !ok {
			return nil, tinyerr.New(tinyerr.TypeError, "array has no method %q", name)
		}
		return v, nil
	case values.String:
		v, ok := builtins.StringProperty(t, name)
		if !ok {
			return nil, tinyerr.New(tinyerr.TypeError, "string has no method %q", name)
		}
		return v, nil
	case values.Number:
		v, ok := builtins.NumberProperty(t, name)
		if !ok {
			return nil, tinyerr.New(tinyerr.TypeError, "number has no method %q", name)
		}
		return v, nil
	default:
		return nil, tinyerr.New(tinyerr.TypeError, "cannot access property %q on %s", name, target.Kind())
	}
}

// indexFromValue validates v as an array index: a Number holding a
// non-negative integer.
func indexFromValue(v values.Value) (int, error) {
	n, ok := v.(values.Number)
	if !ok {
		return 0, tinyerr.New(tinyerr.TypeError, "array index must be a number, got %s", v.Kind())
	}
	f := float64(n)
	if f < 0 || f != float64(int(f)) {
		return 0, tinyerr.New(tinyerr.IndexError, "array index must be a non-negative integer, got %s", n.String())
	}
	return int(f), nil
}
