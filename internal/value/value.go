// Package value implements the static value model: the tagged union a
// fully-reduced expression collapses to. The shape (ordered map
// preserving insertion order, an `Expr` escape hatch for opaque residuals)
// mirrors evanw-esbuild's js_ast.E-node family, generalized from "a node
// the printer can re-emit" to "a value the transformer can reason about".
package value

import (
	"strconv"

	"github.com/atomicss/atomicss/internal/ast"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindUndefined
	KindStr
	KindNum
	KindBool
	KindVec
	KindMap
	KindExpr
	KindCallable
	KindThemeRef
	KindIncludedStyles
	KindTypedCSS
)

// Thunk is a registered library function. Invoke returns a confident
// result, or ok=false to signal the call could not be reduced — the
// caller deopts.
type Thunk struct {
	Name   string
	Invoke func(args []Value) (Value, bool)
}

// IncludedStyles is a class-name set produced by the `include` rewrite
// and threaded opaquely through the flattener: an included-styles
// reference bypasses flattening entirely rather than being re-decomposed.
type IncludedStyles struct {
	ClassNames []string
}

// TypedCSS pairs a value with a string tag. defineVars is its only
// producer: Value holds the `var(--name)` reference and Syntax holds the
// raw custom-property name (`--name`) createTheme overrides.
type TypedCSS struct {
	Value  Value
	Syntax string
}

// Value is the sum type. Exactly one field group is meaningful, selected by
// Kind; callers must switch on Kind rather than probe fields directly.
type Value struct {
	kind     Kind
	str      string
	num      float64
	boolean  bool
	vec      []Value
	m        *OrderedMap
	expr     *ast.Expr
	callable *Thunk
	included *IncludedStyles
	typed    *TypedCSS
}

func (v Value) Kind() Kind { return v.kind }

func Null() Value      { return Value{kind: KindNull} }
func Undefined() Value { return Value{kind: KindUndefined} }
func Str(s string) Value {
	return Value{kind: KindStr, str: s}
}
func Num(n float64) Value {
	return Value{kind: KindNum, num: n}
}
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}
func Vec(items []Value) Value {
	return Value{kind: KindVec, vec: items}
}
func Map(m *OrderedMap) Value {
	return Value{kind: KindMap, m: m}
}
func ResidualExpr(e ast.Expr) Value {
	return Value{kind: KindExpr, expr: &e}
}
func Callable(t Thunk) Value {
	return Value{kind: KindCallable, callable: &t}
}
func ThemeRef(fileID string) Value {
	return Value{kind: KindThemeRef, str: fileID}
}
func Included(classNames []string) Value {
	return Value{kind: KindIncludedStyles, included: &IncludedStyles{ClassNames: classNames}}
}
func Typed(v Value, syntax string) Value {
	return Value{kind: KindTypedCSS, typed: &TypedCSS{Value: v, Syntax: syntax}}
}

func (v Value) Str() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.str, true
}

func (v Value) Num() (float64, bool) {
	if v.kind != KindNum {
		return 0, false
	}
	return v.num, true
}

func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

func (v Value) Vec() ([]Value, bool) {
	if v.kind != KindVec {
		return nil, false
	}
	return v.vec, true
}

func (v Value) Map() (*OrderedMap, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

func (v Value) Expr() (ast.Expr, bool) {
	if v.kind != KindExpr {
		return ast.Expr{}, false
	}
	return *v.expr, true
}

func (v Value) Callable() (Thunk, bool) {
	if v.kind != KindCallable {
		return Thunk{}, false
	}
	return *v.callable, true
}

func (v Value) ThemeRef() (string, bool) {
	if v.kind != KindThemeRef {
		return "", false
	}
	return v.str, true
}

func (v Value) IncludedStyles() (*IncludedStyles, bool) {
	if v.kind != KindIncludedStyles {
		return nil, false
	}
	return v.included, true
}

func (v Value) TypedCSS() (*TypedCSS, bool) {
	if v.kind != KindTypedCSS {
		return nil, false
	}
	return v.typed, true
}

// IsNullish reports whether v is JS-nullish (null or undefined), the test
// the `??` operator uses.
func (v Value) IsNullish() bool {
	return v.kind == KindNull || v.kind == KindUndefined
}

// Truthy implements JS truthiness for the static-value subset the evaluator
// supports: empty string, zero, NaN, null, undefined, and false are falsy;
// everything else (including empty arrays/objects, unlike `+`) is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull, KindUndefined:
		return false
	case KindBool:
		return v.boolean
	case KindStr:
		return v.str != ""
	case KindNum:
		return v.num != 0 && v.num == v.num // also excludes NaN
	default:
		return true
	}
}

// ToMapKey renders v as a map key the way a computed object-literal key or
// member-access index would: strings pass through, numbers use JS's
// shortest round-trip formatting. Any other kind cannot be a key.
func (v Value) ToMapKey() (string, bool) {
	switch v.kind {
	case KindStr:
		return v.str, true
	case KindNum:
		return strconv.FormatFloat(v.num, 'g', -1, 64), true
	default:
		return "", false
	}
}

// HashDTO renders v into a plain Go value tree (map/slice/scalar) suitable
// for github.com/mitchellh/hashstructure/v2 or for formatting into a
// stable string (createTheme hashes its overrides that way).
func (v Value) HashDTO() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindUndefined:
		return "undefined"
	case KindStr:
		return v.str
	case KindNum:
		return v.num
	case KindBool:
		return v.boolean
	case KindVec:
		out := make([]any, len(v.vec))
		for i, item := range v.vec {
			out[i] = item.HashDTO()
		}
		return out
	case KindMap:
		out := make(map[string]any, v.m.Len())
		for _, e := range v.m.Entries() {
			key, _ := e.Key.ToMapKey()
			out[key] = e.Value.HashDTO()
		}
		return out
	case KindThemeRef:
		return "themeref:" + v.str
	case KindIncludedStyles:
		return append([]string{"included:"}, v.included.ClassNames...)
	case KindTypedCSS:
		return map[string]any{"syntax": v.typed.Syntax, "value": v.typed.Value.HashDTO()}
	default:
		// KindExpr / KindCallable residuals have no business reaching the
		// compiler; a non-reducible value must already have deopted.
		return "unreduced"
	}
}
