// Package evaluator implements a partial evaluator: it reduces AST
// expressions to static values using a binding environment and a function
// registry, tracking a `confident` flag and a `deopt` reason so a caller
// always learns either a value or why one couldn't be produced. Here that
// pairing is `Outcome`.
package evaluator

import (
	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/value"
)

// Outcome is the evaluator's `(confident, value, deopt)` triple.
// Confidence, once false, only clears via the short-circuit rule
// Evaluator.evalLogical documents explicitly.
type Outcome struct {
	Confident bool
	Value     value.Value
	Deopt     *ast.Expr
}

func Ok(v value.Value) Outcome {
	return Outcome{Confident: true, Value: v}
}

func Fail(e *ast.Expr) Outcome {
	return Outcome{Confident: false, Deopt: e}
}

// Map chains a confident outcome through f; a non-confident outcome passes
// through unchanged (the deopt is sticky).
func (o Outcome) Map(f func(value.Value) Outcome) Outcome {
	if !o.Confident {
		return o
	}
	return f(o.Value)
}

// OrElse runs f only when o already deopted, letting callers compose a
// chain of fallback strategies without nested ifs.
func (o Outcome) OrElse(f func() Outcome) Outcome {
	if o.Confident {
		return o
	}
	return f()
}
