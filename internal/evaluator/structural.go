package evaluator

import (
	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/validate"
)

// structuralArg names, per recognized library thunk, which raw (still
// unevaluated) argument position holds a style-object tree that must be
// checked for spread/computed keys and duplicate conditions before the
// generic evaluator collapses that information away: evalObject legally
// supports spread and computed keys for ordinary JS object literals, and
// value.OrderedMap.Set silently overwrites a duplicate key in place, so
// by the time an argument is a value.Value none of these three shapes is
// still detectable. Thunks not listed here (props, attrs, include,
// firstThatWorks) take no style-object-literal argument and need no
// check.
var structuralArg = map[string]int{
	"create":      0,
	"defineVars":  0,
	"keyframes":   0,
	"createTheme": 1,
}

// structuralArity is the exact argument count each structurally-checked
// thunk requires; checked here (via validate.Arity) against the raw call
// so a wrong-arity call reports IllegalArgument before any argument is
// evaluated, the same way validate's own arity check is documented to
// run "before handing its arguments to the evaluator."
var structuralArity = map[string]int{
	"create":      1,
	"defineVars":  1,
	"keyframes":   1,
	"createTheme": 2,
}

// validateStructuralArgs runs the style-object-boundary structural checks
// spec'd under IllegalArgument (wrong arity, "spread not supported",
// "computed key", "duplicate condition in nested namespaces") against
// thunkName's call, before any argument is evaluated into a value. Every
// other argument, and thunks absent from structuralArg, are left
// untouched here — their own Invoke still performs its own arity/kind
// checks once arguments are evaluated, which is harmless redundancy: by
// the time Invoke runs, the checks below have already passed.
func validateStructuralArgs(thunkName string, callExpr ast.Expr, call *ast.ECall) *diag.Diagnostic {
	if n, ok := structuralArity[thunkName]; ok {
		if derr := validate.Arity(callExpr, call, n); derr != nil {
			return derr
		}
	}
	idx, ok := structuralArg[thunkName]
	if !ok || idx >= len(call.Args) {
		return nil
	}
	if _, derr := validate.RequireObjectLiteral(call.Args[idx]); derr != nil {
		return derr
	}
	return validateStyleObjectTree(call.Args[idx])
}

// validateStyleObjectTree walks every object literal reachable through
// plain (non-computed, non-spread) property values starting at e: the
// namespace map, each namespace's property object, and any nested
// condition frame (`:hover`, `@media ...`) or per-property condition map
// a property value might itself be. A non-object leaf (string, number,
// array, call expression) ends the recursion without complaint — those
// are the evaluator's business, not this package's.
func validateStyleObjectTree(e ast.Expr) *diag.Diagnostic {
	obj, ok := e.Data.(*ast.EObject)
	if !ok {
		return nil
	}
	if dup := validate.DetectDuplicateCondition(obj); dup != "" {
		return diag.AtExpr(diag.IllegalArgument, e, "duplicate condition %q in style object", dup)
	}
	for _, p := range obj.Properties {
		if derr := validate.RequireStaticKey(p); derr != nil {
			return derr
		}
		if derr := validateStyleObjectTree(p.Value); derr != nil {
			return derr
		}
	}
	return nil
}
