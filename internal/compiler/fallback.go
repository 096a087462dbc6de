package compiler

import (
	"regexp"

	"github.com/atomicss/atomicss/internal/stylesheet"
	"github.com/atomicss/atomicss/internal/value"
)

// bareVarRefRE matches a fallback-array element that is nothing but a
// reference to a CSS custom property with no fallback of its own, e.g.
// `var(--h)`. Such an element doesn't stand alone: it wraps whatever value
// was built up earlier in the array as its own fallback, the way a CSS
// custom-property reference nests when an author chains several.
var bareVarRefRE = regexp.MustCompile(`^var\((--[A-Za-z0-9_-]+)\)$`)

// mergeFallbackChains collapses a fallback array's leaves into the
// declarations that actually get compiled. A run of one base value
// followed by one or more bare var() references folds into a single
// nested `var(--outer,var(--inner,base))` declaration; an element that is
// not itself a bare var() reference always starts a fresh declaration,
// closing out whatever chain came before it.
func mergeFallbackChains(dashProperty string, leaves []stylesheet.PreRuleOne) []stylesheet.PreRuleOne {
	var out []stylesheet.PreRuleOne
	var current stylesheet.PreRuleOne
	hasCurrent := false

	flush := func() {
		if hasCurrent {
			out = append(out, current)
			hasCurrent = false
		}
	}

	for _, leaf := range leaves {
		if hasCurrent {
			if s, ok := leaf.Value.Str(); ok {
				if m := bareVarRefRE.FindStringSubmatch(s); m != nil {
					prev, _ := current.Value.Str()
					current.Value = value.Str("var(" + m[1] + "," + prev + ")")
					continue
				}
			}
		}
		flush()
		text, _ := FormatValue(dashProperty, leaf.Value)
		current = leaf
		current.Value = value.Str(text)
		hasCurrent = true
	}
	flush()
	return out
}
