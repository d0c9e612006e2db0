package builtins

import (
	"strings"

	"tinyjs/values"
)

// StringProperty resolves name against recv, mirroring ArrayProperty's
// shape: "length" is a plain Number, everything else is a bound method.
func StringProperty(recv values.String, name string) (values.Value, bool) {
	if name == "length" {
		return values.Number(len(recv)), true
	}
	fn, ok := stringMethods[name]
	if !ok {
		return nil, false
	}
	return native(name, fn(recv)), true
}

var stringMethods = map[string]func(values.String) values.NativeFunc{
	"split":      stringSplit,
	"toUpperCase": stringToUpper,
	"toLowerCase": stringToLower,
	"trim":        stringTrim,
	"charAt":      stringCharAt,
}

// stringSplit returns an Array of substrings cut at sep, which defaults
// to "" (one element per rune) when omitted.
func stringSplit(recv values.String) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		sep := ""
		if len(args) == 1 {
			s, ok := args[0].(values.String)
			if !ok {
				return nil, typeError("split", "string", args[0])
			}
			sep = string(s)
		} else if len(args) != 0 {
			return nil, arityError("split", 1, len(args))
		}
		var parts []string
		if sep == "" {
			for _, r := range string(recv) {
				parts = append(parts, string(r))
			}
		} else {
			parts = strings.Split(string(recv), sep)
		}
		elems := make([]values.Value, len(parts))
		for i, p := range parts {
			elems[i] = values.String(p)
		}
		return values.NewArray(elems...), nil
	}
}

func stringToUpper(recv values.String) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 0 {
			return nil, arityError("toUpperCase", 0, len(args))
		}
		return values.String(strings.ToUpper(string(recv))), nil
	}
}

func stringToLower(recv values.String) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 0 {
			return nil, arityError("toLowerCase", 0, len(args))
		}
		return values.String(strings.ToLower(string(recv))), nil
	}
}

func stringTrim(recv values.String) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 0 {
			return nil, arityError("trim", 0, len(args))
		}
		return values.String(strings.TrimSpace(string(recv))), nil
	}
}

// stringCharAt returns the single-character string at index i, or "" if
// i is out of bounds (matching typical ECMAScript charAt behavior rather
// than raising IndexError, since an out-of-range charAt is not an error
// in the family this language borrows from).
func stringCharAt(recv values.String) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		if len(args) != 1 {
			return nil, arityError("charAt", 1, len(args))
		}
		i, err := asNumber("charAt", args[0])
		if err != nil {
			return nil, err
		}
		runes := []rune(string(recv))
		idx := int(i)
		if idx < 0 || idx >= len(runes) {
			return values.String(""), nil
		}
		return values.String(string(runes[idx])), nil
	}
}
