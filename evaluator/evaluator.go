/*
File    : tinyjs/evaluator/evaluator.go

Package evaluator is the tree-walking interpreter: a recursive descent
over a parsed (and optionally optimizer-transformed) ast.Program, backed
by a single scope.Scope chain. Every entry point returns (value, error)
or (signal, error) so a failure unwinds the whole call stack the moment
it occurs — there is no local recovery, matching the "all runtime errors
are fatal" propagation policy the rest of the pipeline follows.

Grounded on original_source/src/runtime/interpreter.rs's
do_statement/do_expression recursive match dispatch; reshaped into a Go
type switch over ast.Statement/ast.Expression rather than the teacher's
NodeVisitor, since tinyjs's AST (ast.Node) was itself designed around a
flat type switch (see ast/ast.go and DESIGN.md).
*/
package evaluator

import (
	"io"
	"os"

	"tinyjs/ast"
	"tinyjs/builtins"
	"tinyjs/scope"
	"tinyjs/values"
)

// signalKind distinguishes the four ways a statement's execution can end.
type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
	signalBreak
	signalContinue
)

// signal is the control-flow value threaded back up through
// evalStatement: "ran to completion" (signalNone) or one of the three
// ways execution needs to unwind further than the current statement.
type signal struct {
	kind  signalKind
	value values.Value
}

var noSignal = signal{kind: signalNone}

// Evaluator owns the live scope chain for one program run.
type Evaluator struct {
	scope *scope.Scope
}

// New builds an Evaluator with a fresh global frame, installing the host
// intrinsics with console.log/intrinsics.dump writing to os.Stdout.
func New() *Evaluator {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput is New with the console/dump output stream made explicit,
// used by the REPL and by tests that assert on printed output instead of
// the process's real stdout. "null" and "undefined" are installed here
// too: the lexer has no keyword for either, so they resolve as ordinary
// global bindings rather than literal tokens (see ast.Literal's doc
// comment).
func NewWithOutput(w io.Writer) *Evaluator {
	sc := scope.New()
	builtins.InstallTo(sc, w)
	sc.Set("null", values.Null{})
	sc.Set("undefined", values.Undefined{})
	return &Evaluator{scope: sc}
}

// Run executes every top-level statement in source order. A
// Return/Break/Continue signal reaching the top level (legal only
// dynamically inside a function or loop per spec, but not statically
// enforced) simply ends the run early rather than erroring.
func (e *Evaluator) Run(prog *ast.Program) error {
	for _, stmt := range prog.Statements {
		sig, err := e.evalStatement(stmt)
		if err != nil {
			return err
		}
		if sig.kind != signalNone {
			return nil
		}
	}
	return nil
}
