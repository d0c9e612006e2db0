package builtins

import (
	"fmt"
	"io"
	"strings"

	"tinyjs/values"
)

// canonicalString renders v the way console.log does: a flat tag for
// every container/callable variant rather than a recursive dump, per the
// host-visible stringification table. Number/String/Boolean/Null/
// Undefined already render this way via values.Value.String, so only the
// four tagged variants need overriding here.
func canonicalString(v values.Value) string {
	switch v.(type) {
	case values.Object:
		return "[object]"
	case values.Array:
		return "[array]"
	case values.Function:
		return "[function]"
	case values.NativeFunction:
		return "[native function]"
	default:
		return v.String()
	}
}

// consoleLogTo builds console.log bound to w: prints its single
// argument's canonical stringification followed by a newline, and
// returns Undefined. Arity 1, matching spec.md's `console.log(v)`.
func consoleLogTo(w io.Writer) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return nil, arityError("console.log", 1, len(args))
		}
		fmt.Fprintln(w, canonicalString(args[0]))
		return values.Undefined{}, nil
	}
}

// intrinsicsDumpTo builds intrinsics.dump bound to w: pretty-prints one
// or more arguments, recursing into Array/Object structure rather than
// flattening to a tag, since its job is debugging the shape of a value
// rather than matching console.log's single-line contract.
func intrinsicsDumpTo(w io.Writer) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) == 0 {
			return nil, arityError("intrinsics.dump", 1, 0)
		}
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = a.String()
		}
		fmt.Fprintln(w, strings.Join(rendered, " "))
		return values.Undefined{}, nil
	}
}

// intrinsicsTypeof returns the argument's Kind as a string value.
func intrinsicsTypeof(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityError("intrinsics.typeof", 1, len(args))
	}
	return values.String(args[0].Kind()), nil
}
