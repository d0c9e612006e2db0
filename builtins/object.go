package builtins

import "tinyjs/values"

// objectKeys returns o's property names, in insertion order, as an Array
// of Strings. Arity 1, per spec.md's `Object.keys(o)`.
func objectKeys(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityError("Object.keys", 1, len(args))
	}
	o, ok := args[0].(values.Object)
	if !ok {
		return nil, typeError("Object.keys", "object", args[0])
	}
	keys := o.Keys()
	elems := make([]values.Value, len(keys))
	for i, k := range keys {
		elems[i] = values.String(k)
	}
	return values.NewArray(elems...), nil
}
