/*
JSON.stringify is a read-only debug aid, not a wire-format boundary: there
is no `JSON.parse`, so it introduces no new input channel. A teacher
dependency (std/json.go wraps encoding/json over a Go-native tree) was
considered here but dropped — no pack JSON library can marshal an
interpreter-internal values.Value without a reflection or adapter layer
heavier than a debug helper warrants, so this is hand-rolled instead (see
DESIGN.md).
*/
package builtins

import (
	"strconv"
	"strings"

	"tinyjs/values"
)

func jsonStringify(args []values.Value) (values.Value, error) {
	if len(args) != 1 {
		return nil, arityError("JSON.stringify", 1, len(args))
	}
	var b strings.Builder
	writeJSON(&b, args[0])
	return values.String(b.String()), nil
}

func writeJSON(b *strings.Builder, v values.Value) {
	switch val := v.(type) {
	case values.String:
		b.WriteString(strconv.Quote(string(val)))
	case values.Number:
		b.WriteString(val.String())
	case values.Boolean:
		b.WriteString(val.String())
	case values.Null:
		b.WriteString("null")
	case values.Undefined:
		b.WriteString("null")
	case values.Array:
		b.WriteByte('[')
		for i, elem := range val.Elements() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, elem)
		}
		b.WriteByte(']')
	case values.Object:
		b.WriteByte('{')
		for i, key := range val.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(key))
			b.WriteByte(':')
			value, _ := val.Get(key)
			writeJSON(b, value)
		}
		b.WriteByte('}')
	default:
		b.WriteString(strconv.Quote(canonicalString(v)))
	}
}
