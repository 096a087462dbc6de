package stylesheet

import (
	"strings"

	"github.com/atomicss/atomicss/internal/value"
)

// shorthands maps a box-model shorthand property to its longhands, in the
// CSS 1/2/3/4-value expansion order (top, right, bottom, left). Scoped to
// the handful of shorthands a compile-time atomic-CSS system actually
// needs to decompose (everything else is left as a single declaration,
// same as stylex's own babel plugin does for e.g. `background`).
var shorthands = map[string][]string{
	"margin":        {"marginTop", "marginRight", "marginBottom", "marginLeft"},
	"padding":       {"paddingTop", "paddingRight", "paddingBottom", "paddingLeft"},
	"inset":         {"top", "right", "bottom", "left"},
	"borderWidth":   {"borderTopWidth", "borderRightWidth", "borderBottomWidth", "borderLeftWidth"},
	"borderColor":   {"borderTopColor", "borderRightColor", "borderBottomColor", "borderLeftColor"},
	"borderStyle":   {"borderTopStyle", "borderRightStyle", "borderBottomStyle", "borderLeftStyle"},
	"borderRadius":  {"borderTopLeftRadius", "borderTopRightRadius", "borderBottomRightRadius", "borderBottomLeftRadius"},
	"overflow":      {"overflowX", "overflowY"},
	"gap":           {"rowGap", "columnGap"},
	"marginInline":  {"marginInlineStart", "marginInlineEnd"},
	"paddingInline": {"paddingInlineStart", "paddingInlineEnd"},
}

// tokensOf splits a shorthand's value into the 1-4 individual side values
// CSS's shorthand syntax allows: a bare number applies identically to
// every side (and stays a number, so unit-suffixing still happens at
// compile time), while a string is split on whitespace into its
// space-separated component tokens.
func tokensOf(v value.Value) ([]value.Value, bool) {
	switch v.Kind() {
	case value.KindNum:
		return []value.Value{v}, true
	case value.KindStr:
		s, _ := v.Str()
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return nil, false
		}
		out := make([]value.Value, len(fields))
		for i, f := range fields {
			out[i] = value.Str(f)
		}
		return out, true
	default:
		return nil, false
	}
}

// expandFourValue applies CSS's 1/2/3/4-value rule, mapping 1-4 tokens
// onto (top, right, bottom, left)-ordered longhands: one token applies to
// all four sides, two are (vertical, horizontal), three are (top,
// horizontal, bottom), four are explicit.
func expandFourValue(tokens []value.Value) []value.Value {
	switch len(tokens) {
	case 1:
		return []value.Value{tokens[0], tokens[0], tokens[0], tokens[0]}
	case 2:
		return []value.Value{tokens[0], tokens[1], tokens[0], tokens[1]}
	case 3:
		return []value.Value{tokens[0], tokens[1], tokens[2], tokens[1]}
	default:
		return tokens[:4]
	}
}

// ExpandShorthands rewrites a flattened namespace's entries, replacing
// each known shorthand property with its longhand equivalents. Per-slot
// CSS cascade semantics apply: when an explicit longhand entry and a
// shorthand expansion fill the same slot under the identical condition
// frame, the one that comes later in source order wins, keeping the
// position of the first.
func ExpandShorthands(ns FlatNamespace) FlatNamespace {
	slot := make(map[string]int)
	var out []FlatEntry

	emit := func(property string, conditionsKey string, rule PreRule) {
		k := property + "\x00" + conditionsKey
		if i, exists := slot[k]; exists {
			out[i] = FlatEntry{Property: property, Rule: rule}
			return
		}
		slot[k] = len(out)
		out = append(out, FlatEntry{Property: property, Rule: rule})
	}

	for _, entry := range ns.Entries {
		longhands, isShorthand := shorthands[entry.Property]
		one, isOne := entry.Rule.(PreRuleOne)
		if !isShorthand || !isOne {
			emit(entry.Property, conditionKeyOf(entry.Rule), entry.Rule)
			continue
		}
		tokens, ok := tokensOf(one.Value)
		if !ok {
			emit(entry.Property, conditionKeyOf(entry.Rule), entry.Rule)
			continue
		}
		expanded := expandFourValue(tokens)
		for i, lh := range longhands {
			rule := PreRuleOne{
				Property: lh,
				Value:    expanded[i%len(expanded)],
				Pseudos:  one.Pseudos,
				AtRules:  one.AtRules,
				Priority: one.Priority,
			}
			emit(lh, conditionKeyOf(rule), rule)
		}
	}
	return FlatNamespace{Name: ns.Name, Entries: out}
}

func conditionKeyOf(r PreRule) string {
	switch rule := r.(type) {
	case PreRuleOne:
		return joinConditions(rule.Pseudos, rule.AtRules)
	case PreRuleSet:
		if len(rule.Items) == 0 {
			return ""
		}
		return conditionKeyOf(rule.Items[0])
	default:
		return ""
	}
}

func joinConditions(pseudos, atRules []string) string {
	key := ""
	for _, p := range pseudos {
		key += "p:" + p + ";"
	}
	for _, a := range atRules {
		key += "a:" + a + ";"
	}
	return key
}
