package transform

import (
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/value"
)

// FirstThatWorks implements `stylex.firstThatWorks(v1, v2, ...)`: it
// builds the fallback array a property's value can be, in the order
// given. Flattening later expands this into one PreRule per element with
// an increasing priority, so the LAST entry — conventionally the most
// widely supported one, per stylex's own authoring convention — wins when
// every condition in a rule is otherwise tied.
func (c *Context) FirstThatWorks(args []value.Value) (value.Value, bool) {
	if len(args) < 2 {
		return value.Value{}, c.failf(diag.IllegalArgument, "firstThatWorks expects at least two values, got %d", len(args))
	}
	for _, v := range args {
		if v.Kind() != value.KindStr && v.Kind() != value.KindNum {
			return value.Value{}, c.failf(diag.IllegalValue, "firstThatWorks values must be strings or numbers")
		}
	}
	return value.Vec(args), true
}

// Include implements `stylex.include(a, b, ...)`: each argument must
// itself be a compiled style bundle (the result of `create`'s namespace
// entry, another `include`, or `createTheme`), and the merged bundle
// passes every class name through flattening untouched rather than trying
// to re-derive the declarations that produced them.
func (c *Context) Include(args []value.Value) (value.Value, bool) {
	if len(args) == 0 {
		return value.Value{}, c.failf(diag.IllegalArgument, "include expects at least one argument")
	}
	seen := make(map[string]bool)
	var classNames []string
	for _, v := range args {
		cns, ok := styleClassNames(v)
		if !ok {
			return value.Value{}, c.failf(diag.IllegalArgument, "include's arguments must be compiled styles (a create() namespace, or another include())")
		}
		for _, cn := range cns {
			if !seen[cn] {
				seen[cn] = true
				classNames = append(classNames, cn)
			}
		}
	}
	return value.Included(classNames), true
}
