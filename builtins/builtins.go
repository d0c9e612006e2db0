/*
File    : tinyjs/builtins/builtins.go

Package builtins installs the host intrinsics into the global scope at
interpreter construction (console, Math, Object, intrinsics, JSON) and
resolves the per-type bound method tables the evaluator consults when a
Property targets a Number, String, or Array.

Grounded on the teacher's objects.Builtins registry (a flat slice of
named callbacks installed once at package init) and on
original_source/src/runtime/builtins.rs's console_log/intrinsics_dump
canonical stringification table. Unlike the teacher, which represents a
builtin failure as an in-band Error value, every function here returns
(values.Value, error) so a bad arity or wrong-typed argument reaches the
evaluator the same way any other runtime error does.
*/
package builtins

import (
	"io"
	"os"

	"tinyjs/scope"
	"tinyjs/tinyerr"
	"tinyjs/values"
)

// native builds a values.NativeFunction wrapping fn under name.
func native(name string, fn values.NativeFunc) values.NativeFunction {
	return values.NativeFunction{Name: name, Fn: fn}
}

// namespace builds an Object whose properties are the given native
// functions, used for console/Math/Object/intrinsics/JSON.
func namespace(fns ...values.NativeFunction) values.Object {
	obj := values.NewObject()
	for _, fn := range fns {
		obj = obj.With(fn.Name, fn)
	}
	return obj
}

// Install registers every global intrinsic into sc's current (global)
// frame, with console.log/intrinsics.dump writing to os.Stdout. Called
// once at interpreter construction; callers must not call it again
// against a scope that already ran source, or they will silently reset
// the global bindings.
func Install(sc *scope.Scope) {
	InstallTo(sc, os.Stdout)
}

// InstallTo is Install with the console/dump output stream made explicit,
// mirroring the teacher's CallbackFunc(writer io.Writer, ...) shape. The
// REPL and tests use this to redirect printed output away from the
// process's real stdout.
func InstallTo(sc *scope.Scope, w io.Writer) {
	sc.Set("console", namespace(native("log", consoleLogTo(w))))
	sc.Set("intrinsics", namespace(native("dump", intrinsicsDumpTo(w)), native("typeof", intrinsicsTypeof)))
	sc.Set("Object", namespace(native("keys", objectKeys)))
	sc.Set("Math", mathNamespace())
	sc.Set("JSON", namespace(native("stringify", jsonStringify)))
}

func arityError(name string, want int, got int) error {
	return tinyerr.New(tinyerr.ArityError, "%s expects %d argument(s), got %d", name, want, got)
}

func typeError(name string, want string, got values.Value) error {
	return tinyerr.New(tinyerr.TypeError, "%s expects a %s argument, got %s", name, want, got.Kind())
}
