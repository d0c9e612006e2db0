package evaluator

import (
	"tinyjs/ast"
	"tinyjs/tinyerr"
	"tinyjs/values"
)

// evalStatement runs one statement and reports the control signal it
// produced (if any) alongside the first error encountered.
func (e *Evaluator) evalStatement(stmt ast.Statement) (signal, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := e.evalExpression(s.Expr)
		return noSignal, err

	case *ast.Let:
		v, err := e.evalExpression(s.Value)
		if err != nil {
			return noSignal, err
		}
		e.scope.Set(s.Name, v)
		return noSignal, nil

	case *ast.Return:
		if s.Value == nil {
			return signal{kind: signalReturn, value: values.Undefined{}}, nil
		}
		v, err := e.evalExpression(s.Value)
		if err != nil {
			return noSignal, err
		}
		return signal{kind: signalReturn, value: v}, nil

	case *ast.Break:
		return signal{kind: signalBreak}, nil

	case *ast.Continue:
		return signal{kind: signalContinue}, nil

	case *ast.If:
		cond, err := e.evalExpression(s.Condition)
		if err != nil {
			return noSignal, err
		}
		if cond.Truthy() {
			return e.evalStatement(s.Then)
		}
		if s.Else != nil {
			return e.evalStatement(s.Else)
		}
		return noSignal, nil

	case *ast.While:
		for {
			cond, err := e.evalExpression(s.Condition)
			if err != nil {
				return noSignal, err
			}
			if !cond.Truthy() {
				return noSignal, nil
			}
			sig, err := e.evalStatement(s.Body)
			if err != nil {
				return noSignal, err
			}
			switch sig.kind {
			case signalBreak:
				return noSignal, nil
			case signalReturn:
				return sig, nil
			}
			// signalNone and signalContinue both fall through to the next
			// condition check.
		}

	case *ast.For:
		e.scope.Enter()
		defer e.scope.Exit()
		if s.Init != nil {
			if _, err := e.evalStatement(s.Init); err != nil {
				return noSignal, err
			}
		}
		for {
			if s.Condition != nil {
				cond, err := e.evalExpression(s.Condition)
				if err != nil {
					return noSignal, err
				}
				if !cond.Truthy() {
					return noSignal, nil
				}
			}
			sig, err := e.evalStatement(s.Body)
			if err != nil {
				return noSignal, err
			}
			if sig.kind == signalBreak {
				return noSignal, nil
			}
			if sig.kind == signalReturn {
				return sig, nil
			}
			if s.Update != nil {
				if _, err := e.evalStatement(s.Update); err != nil {
					return noSignal, err
				}
			}
		}

	case *ast.Function:
		e.scope.Set(s.Name, values.Function{Name: s.Name, Params: s.Params, Body: s.Body})
		return noSignal, nil

	case *ast.Scope:
		e.scope.Enter()
		for _, st := range s.Statements {
			sig, err := e.evalStatement(st)
			if err != nil {
				e.scope.Exit()
				return noSignal, err
			}
			if sig.kind != signalNone {
				e.scope.Exit()
				return sig, nil
			}
		}
		e.scope.Exit()
		return noSignal, nil

	default:
		return noSignal, tinyerr.New(tinyerr.TypeError, "unsupported statement %T", stmt)
	}
}
