// Package validate implements the structural checks a call rewrite runs
// before handing its arguments to the evaluator: arity, the
// object-literal-only requirement on style namespaces, and rejecting
// spreads/computed keys where a static key is required. Unknown-symbol
// typo suggestions are grounded on
// evanw-esbuild/internal/helpers/typos.go's TypoDetector, reused verbatim
// in internal/helpers.
package validate

import (
	"fmt"
	"strings"

	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/helpers"
)

// Arity requires exactly n arguments; MinArity below checks a minimum.
func Arity(call ast.Expr, e *ast.ECall, n int) *diag.Diagnostic {
	if len(e.Args) != n {
		return diag.AtExpr(diag.IllegalArgument, call, "expected %d argument(s), got %d", n, len(e.Args))
	}
	return nil
}

func MinArity(call ast.Expr, e *ast.ECall, min int) *diag.Diagnostic {
	if len(e.Args) < min {
		return diag.AtExpr(diag.IllegalArgument, call, "expected at least %d argument(s), got %d", min, len(e.Args))
	}
	return nil
}

// RequireObjectLiteral checks that e is a (non-spread) object literal, the
// shape every style-namespace and theme-variable argument must take.
func RequireObjectLiteral(e ast.Expr) (*ast.EObject, *diag.Diagnostic) {
	obj, ok := e.Data.(*ast.EObject)
	if !ok {
		return nil, diag.AtExpr(diag.IllegalArgument, e, "expected an object literal")
	}
	return obj, nil
}

// RequireStaticKey rejects computed (`[expr]: ...`) and spread
// (`...rest`) object-literal properties, which the static style-object
// shape never contains.
func RequireStaticKey(p ast.Property) *diag.Diagnostic {
	if p.Kind == ast.PropertySpread {
		return diag.AtExpr(diag.IllegalArgument, p.Value, "spread properties are not allowed here")
	}
	if p.IsComputed {
		return diag.AtExpr(diag.IllegalArgument, p.Key, "computed keys are not allowed here")
	}
	return nil
}

// DetectDuplicateCondition reports the first condition key (`:hover`,
// `@media ...`, `default`) that appears twice among the direct keys of an
// object literal, since a namespace can only ever make one choice under a
// given condition.
func DetectDuplicateCondition(obj *ast.EObject) string {
	seen := make(map[string]bool)
	for _, p := range obj.Properties {
		if p.Kind == ast.PropertySpread || p.IsComputed {
			continue
		}
		lit, ok := p.Key.Data.(*ast.EString)
		if !ok {
			continue
		}
		if lit.Value != "default" && !strings.HasPrefix(lit.Value, ":") && !strings.HasPrefix(lit.Value, "@") {
			continue
		}
		if seen[lit.Value] {
			return lit.Value
		}
		seen[lit.Value] = true
	}
	return ""
}

// SuggestTypo builds the typo-corrected "did you mean" suffix for an
// unrecognized symbol against the set of names valid here. Returns "" when
// no single-edit correction exists.
func SuggestTypo(valid []string, got string) string {
	detector := helpers.MakeTypoDetector(valid)
	if corrected, ok := detector.MaybeCorrectTypo(got); ok {
		return fmt.Sprintf(" (did you mean %q?)", corrected)
	}
	return ""
}
