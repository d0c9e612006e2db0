/*
Array method dispatch. Grounded on the teacher's bound-native-method
pattern (objects.Builtins entries closed over a receiver) generalized
here to a per-call closure over the receiving Array, since tinyjs has no
receiver binding at the language level: `a.push` must already know which
array it pushes into before the call expression supplies arguments.
*/
package builtins

import (
	"strings"

	"tinyjs/values"
)

// ArrayProperty resolves name against recv, returning either a bound
// NativeFunction or (for "length") the element count as a Number. ok is
// false when name names no array method.
func ArrayProperty(recv values.Array, name string) (values.Value, bool) {
	if name == "length" {
		return values.Number(recv.Len()), true
	}
	fn, ok := arrayMethods[name]
	if !ok {
		return nil, false
	}
	return native(name, fn(recv)), true
}

var arrayMethods = map[string]func(values.Array) values.NativeFunc{
	"push":     arrayPush,
	"pop":      arrayPop,
	"join":     arrayJoin,
	"reverse":  arrayReverse,
	"indexOf":  arrayIndexOf,
	"slice":    arraySlice,
	"includes": arrayIncludes,
}

// arrayPush appends its single argument and returns the new length.
func arrayPush(recv values.Array) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return nil, arityError("push", 1, len(args))
		}
		return values.Number(recv.Push(args[0])), nil
	}
}

// arrayPop removes and returns the last element, or Undefined on an
// empty array.
func arrayPop(recv values.Array) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 0 {
			return nil, arityError("pop", 0, len(args))
		}
		v, _ := recv.Pop()
		return v, nil
	}
}

// arrayJoin concatenates every element's canonical stringification with
// sep between them. sep defaults to "," when omitted.
func arrayJoin(recv values.Array) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		sep := ","
		if len(args) == 1 {
			s, ok := args[0].(values.String)
			if !ok {
				return nil, typeError("join", "string", args[0])
			}
			sep = string(s)
		} else if len(args) != 0 {
			return nil, arityError("join", 1, len(args))
		}
		parts := make([]string, recv.Len())
		for i, v := range recv.Elements() {
			parts[i] = canonicalString(v)
		}
		return values.String(strings.Join(parts, sep)), nil
	}
}

// arrayReverse reverses the backing store in place and returns the same
// array handle.
func arrayReverse(recv values.Array) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 0 {
			return nil, arityError("reverse", 0, len(args))
		}
		elems := recv.Elements()
		for i, j := 0, len(elems)-1; i < j; i, j = i+1, j-1 {
			elems[i], elems[j] = elems[j], elems[i]
		}
		return recv, nil
	}
}

// arrayIndexOf returns the index of the first element equal to its
// argument under canonical stringification, or -1.
func arrayIndexOf(recv values.Array) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return nil, arityError("indexOf", 1, len(args))
		}
		target := canonicalString(args[0])
		for i, v := range recv.Elements() {
			if canonicalString(v) == target {
				return values.Number(i), nil
			}
		}
		return values.Number(-1), nil
	}
}

// arraySlice returns a new Array over [start, end), clamped to bounds.
// end defaults to the array's length when omitted.
func arraySlice(recv values.Array) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 1 && len(args) != 2 {
			return nil, arityError("slice", 1, len(args))
		}
		start, err := asNumber("slice", args[0])
		if err != nil {
			return nil, err
		}
		end := float64(recv.Len())
		if len(args) == 2 {
			end, err = asNumber("slice", args[1])
			if err != nil {
				return nil, err
			}
		}
		s := clampIndex(int(start), recv.Len())
		e := clampIndex(int(end), recv.Len())
		if e < s {
			e = s
		}
		return values.NewArray(append([]values.Value{}, recv.Elements()[s:e]...)...), nil
	}
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// arrayIncludes reports whether any element equals its argument under
// canonical stringification.
func arrayIncludes(recv values.Array) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return nil, arityError("includes", 1, len(args))
		}
		target := canonicalString(args[0])
		for _, v := range recv.Elements() {
			if canonicalString(v) == target {
				return values.Boolean(true), nil
			}
		}
		return values.Boolean(false), nil
	}
}
