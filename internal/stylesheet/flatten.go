package stylesheet

import (
	"strings"

	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/value"
)

// frame is the accumulated set of conditions a walk is currently nested
// under: every pseudo-class/element and every at-rule opened by an
// ancestor key.
type frame struct {
	pseudos []string
	atRules []string
}

func isConditionKey(key string) bool {
	return key == "default" || strings.HasPrefix(key, ":") || strings.HasPrefix(key, "@")
}

func (f frame) withPseudo(p string) frame {
	return frame{pseudos: append(append([]string{}, f.pseudos...), p), atRules: f.atRules}
}

func (f frame) withAtRule(a string) frame {
	return frame{pseudos: f.pseudos, atRules: append(append([]string{}, f.atRules...), a)}
}

// Flatten walks a namespace object's ordered entries and produces its flat
// property -> pre-rule mapping. A namespace entry is one of:
//
//   - a condition key (`:hover`, `@media ...`) whose value is an object of
//     sibling properties to flatten under that condition (Cartesian
//     product of the outer condition with each inner property);
//   - a plain property key whose value is a scalar/array leaf, or a
//     per-property condition map (`{default: ..., ':hover': ...}`)
//     describing that single property's value under each condition;
//   - an IncludedStyles reference, passed through untouched.
func Flatten(namespaceName string, obj *value.OrderedMap) (FlatNamespace, *diag.Diagnostic) {
	entries, err := walkNamespace(obj, frame{})
	if err != nil {
		return FlatNamespace{}, err
	}
	return FlatNamespace{Name: namespaceName, Entries: entries}, nil
}

func walkNamespace(obj *value.OrderedMap, f frame) ([]FlatEntry, *diag.Diagnostic) {
	var out []FlatEntry
	for _, e := range obj.Entries() {
		key, ok := e.Key.ToMapKey()
		if !ok {
			return nil, diag.New(diag.IllegalArgument, ast.Range{}, "style object keys must be strings")
		}
		switch {
		case key == "default":
			nested, ok := e.Value.Map()
			if !ok {
				return nil, diag.New(diag.IllegalValue, ast.Range{}, "condition %q must map to an object of properties", key)
			}
			sub, err := walkNamespace(nested, f)
			if err != nil {
				return nil, err
			}
			for i := range sub {
				sub[i].Rule = bumpDefault(sub[i].Rule)
			}
			out = append(out, sub...)
		case strings.HasPrefix(key, "@"):
			nested, ok := e.Value.Map()
			if !ok {
				return nil, diag.New(diag.IllegalValue, ast.Range{}, "condition %q must map to an object of properties", key)
			}
			sub, err := walkNamespace(nested, f.withAtRule(key))
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		case strings.HasPrefix(key, ":"):
			nested, ok := e.Value.Map()
			if !ok {
				return nil, diag.New(diag.IllegalValue, ast.Range{}, "condition %q must map to an object of properties", key)
			}
			sub, err := walkNamespace(nested, f.withPseudo(key))
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		default:
			entries, err := flattenProperty(key, e.Value, f)
			if err != nil {
				return nil, err
			}
			out = append(out, entries...)
		}
	}
	return out, nil
}

// FlattenValue exposes the per-property value flattener for callers
// outside a namespace object — defineVars and createTheme apply it to a
// single theme variable's value, which follows exactly the same
// leaf/fallback-array/per-condition-map shape as a namespace property.
func FlattenValue(name string, v value.Value) ([]FlatEntry, *diag.Diagnostic) {
	return flattenProperty(name, v, frame{})
}

// flattenProperty handles a single property's value: a leaf, a fallback
// array, an IncludedStyles passthrough, or a per-condition value map that
// recurses back through the same condition-key dispatch used at namespace
// level (so `default`/pseudo/at-rule branches can themselves nest).
func flattenProperty(property string, v value.Value, f frame) ([]FlatEntry, *diag.Diagnostic) {
	if included, ok := v.IncludedStyles(); ok {
		return []FlatEntry{{Property: property, Rule: PreRuleIncludedRef{ClassNames: included.ClassNames}}}, nil
	}

	if m, ok := v.Map(); ok && isConditionMap(m) {
		return flattenConditionMap(property, m, f)
	}

	if v.IsNullish() {
		return []FlatEntry{{Property: property, Rule: PreRuleNull{}}}, nil
	}

	if items, ok := v.Vec(); ok {
		set := make([]PreRule, len(items))
		for i, item := range items {
			set[i] = PreRuleOne{
				Property: property,
				Value:    item,
				Pseudos:  f.pseudos,
				AtRules:  f.atRules,
				Priority: computePriority(f.pseudos, f.atRules, false, i),
			}
		}
		return []FlatEntry{{Property: property, Rule: PreRuleSet{Items: set}}}, nil
	}

	return []FlatEntry{{
		Property: property,
		Rule: PreRuleOne{
			Property: property,
			Value:    v,
			Pseudos:  f.pseudos,
			AtRules:  f.atRules,
			Priority: computePriority(f.pseudos, f.atRules, false, 0),
		},
	}}, nil
}

// isConditionMap reports whether every key of m looks like a condition,
// the signal that m is a per-property condition map rather than a scalar
// object value (style values are never plain objects otherwise).
func isConditionMap(m *value.OrderedMap) bool {
	if m.Len() == 0 {
		return false
	}
	for _, e := range m.Entries() {
		key, ok := e.Key.ToMapKey()
		if !ok || !isConditionKey(key) {
			return false
		}
	}
	return true
}

func flattenConditionMap(property string, m *value.OrderedMap, f frame) ([]FlatEntry, *diag.Diagnostic) {
	var out []FlatEntry
	for _, e := range m.Entries() {
		key, _ := e.Key.ToMapKey()
		switch {
		case key == "default":
			sub, err := flattenDefaultBranch(property, e.Value, f)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		case strings.HasPrefix(key, "@"):
			sub, err := flattenProperty(property, e.Value, f.withAtRule(key))
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		case strings.HasPrefix(key, ":"):
			sub, err := flattenProperty(property, e.Value, f.withPseudo(key))
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		default:
			return nil, diag.New(diag.IllegalArgument, ast.Range{}, "unexpected key %q in condition map for %q", key, property)
		}
	}
	return out, nil
}

// flattenDefaultBranch recurses through flattenProperty (so a default
// branch can itself hold a fallback array or nested condition), then
// stamps defaultBranchBump onto every PreRuleOne it produced.
func flattenDefaultBranch(property string, v value.Value, f frame) ([]FlatEntry, *diag.Diagnostic) {
	entries, err := flattenProperty(property, v, f)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Rule = bumpDefault(entries[i].Rule)
	}
	return entries, nil
}

func bumpDefault(r PreRule) PreRule {
	switch rule := r.(type) {
	case PreRuleOne:
		rule.Priority += defaultBranchBump
		return rule
	case PreRuleSet:
		items := make([]PreRule, len(rule.Items))
		for i, item := range rule.Items {
			items[i] = bumpDefault(item)
		}
		return PreRuleSet{Items: items}
	default:
		return r
	}
}
