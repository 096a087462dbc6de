package transform

import (
	"fmt"
	"sort"

	"github.com/atomicss/atomicss/internal/compiler"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/namegen"
	"github.com/atomicss/atomicss/internal/state"
	"github.com/atomicss/atomicss/internal/stylesheet"
	"github.com/atomicss/atomicss/internal/value"
)

// CreateTheme implements `stylex.createTheme(vars, { bgColor: 'black',
// ... })`: vars must be a defineVars result (so each of its entries
// carries the real custom-property name in its TypedCSS.Syntax field),
// and overrides supplies a new value per variable. The result is a map
// carrying `$$css:true` and a single `themeClassName` entry holding the
// generated override class; applying that class (via props/attrs, same
// as any create() namespace) re-scopes every overridden variable under
// it.
func (c *Context) CreateTheme(args []value.Value) (value.Value, bool) {
	if len(args) != 2 {
		return value.Value{}, c.failf(diag.IllegalArgument, "createTheme expects exactly two arguments, got %d", len(args))
	}
	vars, ok := args[0].Map()
	if !ok {
		return value.Value{}, c.failf(diag.IllegalArgument, "createTheme's first argument must be a defineVars() result")
	}
	overrides, ok := args[1].Map()
	if !ok {
		return value.Value{}, c.failf(diag.IllegalArgument, "createTheme's second argument must be an object literal")
	}

	themeClass := c.classPrefix() + "theme-" + namegen.Base36(namegen.Hash32([]byte(overrideSignature(overrides))))

	for _, entry := range overrides.Entries() {
		name, _ := entry.Key.ToMapKey()
		varEntry, ok := vars.GetStr(name)
		if !ok {
			return value.Value{}, c.failf(diag.IllegalArgument, "createTheme: %q is not a variable defined by the referenced defineVars() call", name)
		}
		typed, ok := varEntry.TypedCSS()
		if !ok {
			return value.Value{}, c.failf(diag.Bug, "createTheme: vars argument was not produced by defineVars()")
		}
		cssVarName := typed.Syntax

		flatEntries, derr := stylesheet.FlattenValue(name, entry.Value)
		if derr != nil {
			return value.Value{}, c.fail(derr)
		}
		for _, fe := range flatEntries {
			one, ok := fe.Rule.(stylesheet.PreRuleOne)
			if !ok {
				return value.Value{}, c.failf(diag.IllegalValue, "theme override %q: fallback arrays are not supported", name)
			}
			dashed := compiler.DashCase(name)
			text, ok := compiler.FormatValue(dashed, one.Value)
			if !ok {
				return value.Value{}, c.failf(diag.IllegalValue, "theme override %q: value must be a string or number", name)
			}
			c.State.DeclareThemeOverride(state.ThemeOverride{
				ClassName: themeClass,
				Name:      cssVarName,
				Value:     text,
				AtRules:   one.AtRules,
			})
		}
	}

	out := value.NewOrderedMap()
	out.Set(value.Str("$$css"), value.Bool(true))
	out.Set(value.Str("themeClassName"), value.Str(themeClass))
	return value.Map(out), true
}

// overrideSignature builds a stable string to hash the theme class name
// from: sorted so key order in the source object never changes the
// generated class name.
func overrideSignature(overrides *value.OrderedMap) string {
	keys := make([]string, 0, overrides.Len())
	for _, e := range overrides.Entries() {
		k, _ := e.Key.ToMapKey()
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sig := ""
	for _, k := range keys {
		v, _ := overrides.GetStr(k)
		sig += k + "=" + fmt.Sprintf("%v", v.HashDTO()) + ";"
	}
	return sig
}
