// Package stylesheet implements the style flattener: it walks a validated
// style object and emits a flat ordered mapping from "property under
// conditions" to a pre-rule.
package stylesheet

import "github.com/atomicss/atomicss/internal/value"

// PreRule is the sum type a property slot flattens to: Null | One | Set |
// IncludedRef.
type PreRule interface{ isPreRule() }

type PreRuleNull struct{}

// PreRuleOne carries the priority of its context: base 3000, plus
// pseudo/at-rule weights, plus a 0.1 bump for an explicit `default`
// branch.
type PreRuleOne struct {
	Property string
	Value    value.Value // Str, Num, or Vec of scalars (fallback list)
	Pseudos  []string
	AtRules  []string
	Priority float64
}

// PreRuleSet is an ordered group of pre-rules sharing one property slot —
// used for fallback arrays. Array order is preserved through to
// compilation, where a run of a base value followed by bare var()
// references collapses into one nested-var() declaration rather than one
// atomic rule per array element.
type PreRuleSet struct {
	Items []PreRule
}

// PreRuleIncludedRef preserves an `include(...)` reference through
// flattening instead of decomposing it.
type PreRuleIncludedRef struct {
	ClassNames []string
}

func (PreRuleNull) isPreRule()        {}
func (PreRuleOne) isPreRule()         {}
func (PreRuleSet) isPreRule()         {}
func (PreRuleIncludedRef) isPreRule() {}

// FlatEntry pairs a property name with its compiled pre-rule, preserving
// the namespace's source order.
type FlatEntry struct {
	Property string
	Rule     PreRule
}

// FlatNamespace is one namespace's ordered property-key -> pre-rule
// mapping.
type FlatNamespace struct {
	Name    string
	Entries []FlatEntry
}
