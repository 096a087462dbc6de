package driver

import (
	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/value"
)

// literalize renders a confident Value back into the literal Expr a call
// site can be rewritten to. Not every Value kind has a source-level
// literal form: KindCallable and KindThemeRef are evaluator-internal
// bookkeeping that must never reach a rewritten call site, and both
// report ok=false, which the caller treats as "leave this call site
// alone" rather than a fatal error. KindExpr is already a residual the
// evaluator chose not to reduce further, and is handed back as written.
func literalize(v value.Value) (ast.Expr, bool) {
	switch v.Kind() {
	case value.KindNull:
		return ast.Expr{Data: &ast.ENull{}}, true
	case value.KindUndefined:
		return ast.Expr{Data: &ast.EUndefined{}}, true
	case value.KindStr:
		s, _ := v.Str()
		return ast.Expr{Data: &ast.EString{Value: s}}, true
	case value.KindNum:
		n, _ := v.Num()
		return ast.Expr{Data: &ast.ENumber{Value: n}}, true
	case value.KindBool:
		b, _ := v.Bool()
		return ast.Expr{Data: &ast.EBoolean{Value: b}}, true
	case value.KindVec:
		items, _ := v.Vec()
		out := make([]ast.Expr, 0, len(items))
		for _, item := range items {
			e, ok := literalize(item)
			if !ok {
				return ast.Expr{}, false
			}
			out = append(out, e)
		}
		return ast.Expr{Data: &ast.EArray{Items: out}}, true
	case value.KindMap:
		m, _ := v.Map()
		props := make([]ast.Property, 0, m.Len())
		for _, entry := range m.Entries() {
			key, ok := entry.Key.Str()
			if !ok {
				return ast.Expr{}, false
			}
			val, ok := literalize(entry.Value)
			if !ok {
				return ast.Expr{}, false
			}
			props = append(props, ast.Property{
				Kind:  ast.PropertyNormal,
				Key:   ast.Expr{Data: &ast.EString{Value: key}},
				Value: val,
			})
		}
		return ast.Expr{Data: &ast.EObject{Properties: props}}, true
	case value.KindIncludedStyles:
		included, _ := v.IncludedStyles()
		joined := ""
		for i, cn := range included.ClassNames {
			if i > 0 {
				joined += " "
			}
			joined += cn
		}
		return ast.Expr{Data: &ast.EString{Value: joined}}, true
	case value.KindExpr:
		e, _ := v.Expr()
		return e, true
	case value.KindTypedCSS:
		typed, _ := v.TypedCSS()
		return literalize(typed.Value)
	default:
		// KindCallable, KindThemeRef: internal bookkeeping values that a
		// rewrite should never hand back to a call site directly.
		return ast.Expr{}, false
	}
}
