/*
Math intrinsics, grounded on the teacher's objects/math.go and std/math.go
(both wrap the standard math package behind arity/type-checked callbacks).
Only sqrt and max are named by spec.md §4.5; abs/floor/ceil/round/pow/min
are the DOMAIN STACK expansion filling in the "hook is present" gap.
*/
package builtins

import (
	"math"

	"tinyjs/values"
)

func mathNamespace() values.Object {
	return namespace(
		native("sqrt", mathSqrt),
		native("max", mathMax),
		native("min", mathMin),
		native("abs", mathUnary("Math.abs", math.Abs)),
		native("floor", mathUnary("Math.floor", math.Floor)),
		native("ceil", mathUnary("Math.ceil", math.Ceil)),
		native("round", mathUnary("Math.round", math.Round)),
		native("pow", mathPow),
	)
}

func asNumber(name string, v values.Value) (float64, error) {
	n, ok := v.(values.Number)
	if !ok {
		return 0, typeError(name, "number", v)
	}
	return float64(n), nil
}

func mathSqrt(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityError("Math.sqrt", 1, len(args))
	}
	n, err := asNumber("Math.sqrt", args[0])
	if err != nil {
		return nil, err
	}
	return values.Number(math.Sqrt(n)), nil
}

// mathUnary adapts a one-argument math.XxxFloat64 function into a
// NativeFunc, shared by abs/floor/ceil/round.
func mathUnary(name string, fn func(float64) float64) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return nil, arityError(name, 1, len(args))
		}
		n, err := asNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		return values.Number(fn(n)), nil
	}
}

func mathPow(args []values.Value) (values.Value, error) {
	if len(args) != 2 {
		return nil, arityError("Math.pow", 2, len(args))
	}
	base, err := asNumber("Math.pow", args[0])
	if err != nil {
		return nil, err
	}
	exp, err := asNumber("Math.pow", args[1])
	if err != nil {
		return nil, err
	}
	return values.Number(math.Pow(base, exp)), nil
}

// mathMax takes one or more numbers, per spec.md's `Math.max(a, b, …)`.
func mathMax(args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return nil, arityError("Math.max", 1, 0)
	}
	best, err := asNumber("Math.max", args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := asNumber("Math.max", a)
		if err != nil {
			return nil, err
		}
		if n > best {
			best = n
		}
	}
	return values.Number(best), nil
}

func mathMin(args []values.Value) (values.Value, error) {
	if len(args) == 0 {
		return nil, arityError("Math.min", 1, 0)
	}
	best, err := asNumber("Math.min", args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := asNumber("Math.min", a)
		if err != nil {
			return nil, err
		}
		if n < best {
			best = n
		}
	}
	return values.Number(best), nil
}
