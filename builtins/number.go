/*
Number methods fill the hook spec.md §4.5 leaves open ("a hook is
present; specific methods not enumerated"), generalizing the teacher's
bound-native-method pattern to a scalar receiver instead of a container.
*/
package builtins

import (
	"fmt"
	"math"

	"tinyjs/values"
)

// NumberProperty resolves name against recv as a bound method. Numbers
// have no "length"-style plain-value property.
func NumberProperty(recv values.Number, name string) (values.Value, bool) {
	fn, ok := numberMethods[name]
	if !ok {
		return nil, false
	}
	return native(name, fn(recv)), true
}

var numberMethods = map[string]func(values.Number) values.NativeFunc{
	"toFixed":   numberToFixed,
	"isInteger": numberIsInteger,
}

func numberToFixed(recv values.Number) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return nil, arityError("toFixed", 1, len(args))
		}
		digits, err := asNumber("toFixed", args[0])
		if err != nil {
			return nil, err
		}
		return values.String(fmt.Sprintf("%.*f", int(digits), float64(recv))), nil
	}
}

func numberIsInteger(recv values.Number) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 0 {
			return nil, arityError("isInteger", 0, len(args))
		}
		f := float64(recv)
		return values.Boolean(f == math.Trunc(f) && !math.IsInf(f, 0) && !math.IsNaN(f)), nil
	}
}
