package transform

import (
	"strings"

	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/value"
)

// styleClassNames extracts every class name a compiled style value
// carries, regardless of which transformer produced it: an
// IncludedStyles bundle (include()'s shape) is read directly; any map —
// a create() namespace's property-slot map, or createTheme()'s result —
// is read by collecting every string-valued entry and skipping both a
// `$$css` marker key and any `null` conditional miss.
func styleClassNames(v value.Value) ([]string, bool) {
	if included, ok := v.IncludedStyles(); ok {
		return included.ClassNames, true
	}
	m, ok := v.Map()
	if !ok {
		return nil, false
	}
	var out []string
	for _, entry := range m.Entries() {
		key, ok := entry.Key.ToMapKey()
		if !ok || key == "$$css" {
			continue
		}
		s, ok := entry.Value.Str()
		if !ok {
			continue
		}
		out = append(out, strings.Fields(s)...)
	}
	return out, true
}

// mergeClassNames implements the common core of props/attrs: each
// argument is either falsy (a conditional `cond && styles.x` that
// evaluated to false/null/undefined, silently dropped, matching the
// runtime behavior it replaces) or a compiled style bundle, and the
// result concatenates every bundle's class names in argument order.
// Within-namespace precedence is already baked into each class name's
// Priority at compile time; concatenation order here only affects
// same-priority ties across DIFFERENT create() calls, which is why
// "spreading styles objects in the order you want them to win" is the
// authoring convention the generated output relies on.
func mergeClassNames(args []value.Value) (string, bool) {
	seen := make(map[string]bool)
	var out []string
	for _, v := range args {
		if v.IsNullish() {
			continue
		}
		if b, ok := v.Bool(); ok && !b {
			continue
		}
		classNames, ok := styleClassNames(v)
		if !ok {
			return "", false
		}
		for _, cn := range classNames {
			if !seen[cn] {
				seen[cn] = true
				out = append(out, cn)
			}
		}
	}
	joined := ""
	for i, cn := range out {
		if i > 0 {
			joined += " "
		}
		joined += cn
	}
	return joined, true
}

// Props implements `stylex.props(...)` for a DOM/React host: the result
// is `{ className: "<space-separated classes>" }`.
func (c *Context) Props(args []value.Value) (value.Value, bool) {
	joined, ok := mergeClassNames(args)
	if !ok {
		return value.Value{}, c.failf(diag.IllegalArgument, "props's arguments must be compiled styles, or a falsy condition guarding one")
	}
	out := value.NewOrderedMap()
	out.Set(value.Str("className"), value.Str(joined))
	return value.Map(out), true
}

// Attrs mirrors Props for a non-React host template language, which spells
// the same concept `class` instead of `className`.
func (c *Context) Attrs(args []value.Value) (value.Value, bool) {
	joined, ok := mergeClassNames(args)
	if !ok {
		return value.Value{}, c.failf(diag.IllegalArgument, "attrs's arguments must be compiled styles, or a falsy condition guarding one")
	}
	out := value.NewOrderedMap()
	out.Set(value.Str("class"), value.Str(joined))
	return value.Map(out), true
}
