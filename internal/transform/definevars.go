package transform

import (
	"github.com/atomicss/atomicss/internal/compiler"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/namegen"
	"github.com/atomicss/atomicss/internal/resolver"
	"github.com/atomicss/atomicss/internal/state"
	"github.com/atomicss/atomicss/internal/stylesheet"
	"github.com/atomicss/atomicss/internal/value"
)

// DefineVars implements `stylex.defineVars({ bgColor: 'white', ... })`: it
// mints one globally-unique CSS custom property per variable, declares its
// default (and any conditional `@media`) value at `:root`, and returns a
// map from variable name to a TypedCSS value whose Syntax field carries
// the raw custom-property name (for createTheme to override later) and
// whose Value is the ready-to-use `var(--name)` reference (for ordinary
// `create` call sites to consume as a plain string leaf). When
// UnstableModuleResolution names a theme-file convention, FileID must
// satisfy it — defineVars is only legal inside a theme file, same as the
// upstream runtime restricts it.
func (c *Context) DefineVars(args []value.Value) (value.Value, bool) {
	if len(args) != 1 {
		return value.Value{}, c.failf(diag.IllegalArgument, "defineVars expects exactly one object argument, got %d", len(args))
	}
	if c.Options.UnstableModuleResolution != "" && c.Options.ThemeFileExtension != "" && c.FileID != "" {
		themeOpts := resolver.CommonJSOptions{ThemeFileExtension: c.Options.ThemeFileExtension}
		if !resolver.IsThemeFile(themeOpts, c.FileID) {
			return value.Value{}, c.failf(diag.IllegalArgument, "defineVars can only be called from a %q theme file, not %q", c.Options.ThemeFileExtension, c.FileID)
		}
	}
	vars, ok := args[0].Map()
	if !ok {
		return value.Value{}, c.failf(diag.IllegalArgument, "defineVars's argument must be an object literal")
	}

	out := value.NewOrderedMap()
	for _, entry := range vars.Entries() {
		name, _ := entry.Key.ToMapKey()
		cssVarName := c.cssVarNameFor(name)

		flatEntries, derr := stylesheet.FlattenValue(name, entry.Value)
		if derr != nil {
			return value.Value{}, c.fail(derr)
		}
		for _, fe := range flatEntries {
			one, ok := fe.Rule.(stylesheet.PreRuleOne)
			if !ok {
				return value.Value{}, c.failf(diag.IllegalValue, "theme variable %q: fallback arrays are not supported", name)
			}
			if len(one.Pseudos) > 0 {
				return value.Value{}, c.failf(diag.IllegalValue, "theme variable %q: pseudo-class conditions are not supported", name)
			}
			dashed := compiler.DashCase(name)
			text, ok := compiler.FormatValue(dashed, one.Value)
			if !ok {
				return value.Value{}, c.failf(diag.IllegalValue, "theme variable %q: value must be a string or number", name)
			}
			c.State.DeclareRootVar(state.RootVar{Name: cssVarName, Value: text, AtRules: one.AtRules})
		}

		ref := value.Str("var(" + cssVarName + ")")
		out.Set(entry.Key, value.Typed(ref, cssVarName))
	}
	out.Set(value.Str("$$css"), value.Bool(true))
	return value.Map(out), true
}

// fileScope is the string defineVars/createTheme hash alongside each
// variable name so that two different theme files declaring a
// same-named variable never collide on one custom property.
func (c *Context) fileScope() string {
	if c.FileID != "" {
		return c.FileID
	}
	return "default"
}

// cssVarNameFor picks the custom-property name defineVars mints for
// variable name: Options.DefinedStylexCSSVariables lets a host pin a
// variable to a name agreed on outside this transform run (e.g. shared
// with a hand-written global stylesheet), skipping hash generation
// entirely; everything else gets the usual file-scoped hash.
func (c *Context) cssVarNameFor(name string) string {
	if predefined, ok := c.Options.DefinedStylexCSSVariables[name]; ok && predefined != "" {
		return "--" + predefined
	}
	return "--" + name + "-" + namegen.Base36(namegen.Hash32([]byte(c.fileScope()+"."+name)))
}
