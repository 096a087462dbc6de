package transform

import (
	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/compiler"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/stylesheet"
	"github.com/atomicss/atomicss/internal/value"
)

// Create implements `stylex.create({ namespace: { property: value, ... },
// ... })`: each namespace's style object is flattened, its shorthands
// expanded, every resulting declaration compiled to an atomic rule and
// queued for injection, and the namespace's own value becomes a map from
// property slot to the space-joined class name(s) that slot compiled to
// (or `null` for a slot whose value was itself `null`/`undefined`) — so a
// consumer can address `styles.root.marginTop` individually. The outer
// result carries the `$$css` marker so `props`/`attrs`/`include` can tell
// a compiled style bundle apart from an ordinary object literal.
func (c *Context) Create(args []value.Value) (value.Value, bool) {
	if len(args) != 1 {
		return value.Value{}, c.failf(diag.IllegalArgument, "create expects exactly one object argument, got %d", len(args))
	}
	nsMap, ok := args[0].Map()
	if !ok {
		return value.Value{}, c.failf(diag.IllegalArgument, "create's argument must be an object literal")
	}

	out := value.NewOrderedMap()
	for _, entry := range nsMap.Entries() {
		name, _ := entry.Key.ToMapKey()
		innerMap, ok := entry.Value.Map()
		if !ok {
			return value.Value{}, c.failf(diag.IllegalValue, "namespace %q must be an object of properties", name)
		}
		slots, derr := c.compileNamespace(name, innerMap)
		if derr != nil {
			return value.Value{}, c.fail(derr)
		}
		out.Set(entry.Key, value.Map(slots))
	}
	out.Set(value.Str("$$css"), value.Bool(true))
	return value.Map(out), true
}

// compileNamespace flattens, expands shorthands, and compiles a single
// namespace's style object, injecting every resulting rule into State and
// returning an ordered property-slot -> class-name(s) map. A slot whose
// flattened entries are all PreRuleNull (an explicit `null`/`undefined`
// leaf) maps to `value.Null()`; every other slot maps to its compiled
// class names, space-joined in the order they were produced (later
// conditions win ties at injection time).
func (c *Context) compileNamespace(name string, obj *value.OrderedMap) (*value.OrderedMap, *diag.Diagnostic) {
	flat, derr := stylesheet.Flatten(name, obj)
	if derr != nil {
		return nil, derr
	}
	flat = stylesheet.ExpandShorthands(flat)

	var order []string
	touched := make(map[string]bool)
	classNames := make(map[string][]string)
	seenClass := make(map[string]bool)

	for _, fe := range flat.Entries {
		if !touched[fe.Property] {
			touched[fe.Property] = true
			order = append(order, fe.Property)
		}
		switch rule := fe.Rule.(type) {
		case stylesheet.PreRuleNull:
			continue
		case stylesheet.PreRuleIncludedRef:
			for _, cn := range rule.ClassNames {
				key := fe.Property + "|" + cn
				if !seenClass[key] {
					seenClass[key] = true
					classNames[fe.Property] = append(classNames[fe.Property], cn)
				}
			}
		default:
			if !c.Options.GenConditionalClasses && hasCondition(fe.Rule) {
				return nil, diag.New(diag.IllegalArgument, ast.Range{}, "namespace %q: %s: conditional styles require gen_conditional_classes", name, fe.Property)
			}
			rules, err := compiler.CompileOne(c.classPrefix(), c.nameOptions(), fe.Rule)
			if err != nil {
				return nil, diag.Wrap(diag.IllegalValue, ast.Range{}, err, "namespace %q: %s", name, fe.Property)
			}
			for _, r := range rules {
				r = c.State.Inject(r)
				key := fe.Property + "|" + r.ClassName
				if !seenClass[key] {
					seenClass[key] = true
					classNames[fe.Property] = append(classNames[fe.Property], r.ClassName)
				}
			}
		}
	}

	slots := value.NewOrderedMap()
	for _, prop := range order {
		cns := classNames[prop]
		if len(cns) == 0 {
			slots.Set(value.Str(prop), value.Null())
			continue
		}
		joined := ""
		for i, cn := range cns {
			if i > 0 {
				joined += " "
			}
			joined += cn
		}
		slots.Set(value.Str(prop), value.Str(joined))
	}
	return slots, nil
}

// hasCondition reports whether rule (or, for a fallback array, any of its
// items) carries a pseudo-class or at-rule condition — the thing
// config.Options.GenConditionalClasses gates when false.
func hasCondition(rule stylesheet.PreRule) bool {
	switch r := rule.(type) {
	case stylesheet.PreRuleOne:
		return len(r.Pseudos) > 0 || len(r.AtRules) > 0
	case stylesheet.PreRuleSet:
		for _, item := range r.Items {
			if hasCondition(item) {
				return true
			}
		}
	}
	return false
}
