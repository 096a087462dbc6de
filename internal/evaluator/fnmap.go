package evaluator

import (
	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/value"
)

// FnMap is dynamic dispatch on callables: a tagged variant of
// Regular(thunk) | Map(name->thunk), where the Map variant represents
// member-expression access on a library binding — e.g. a namespace import
// `import * as stylex from '...'` makes every `stylex.xxx(...)` call
// resolve through the Map branch instead of the Regular one.
type FnMap struct {
	regular map[ast.Ref]value.Thunk
	members map[ast.Ref]map[string]value.Thunk
}

func NewFnMap() *FnMap {
	return &FnMap{
		regular: make(map[ast.Ref]value.Thunk),
		members: make(map[ast.Ref]map[string]value.Thunk),
	}
}

// BindRegular registers ref as directly callable, e.g. a named import
// `import { create } from '@stylexjs/stylex'` binds `create`'s local Ref.
func (f *FnMap) BindRegular(ref ast.Ref, t value.Thunk) {
	f.regular[ref] = t
}

// BindNamespace registers ref as a library namespace whose members are the
// given thunks, e.g. `import * as stylex from '@stylexjs/stylex'` or a
// default import binds stylex's Ref to {create: ..., keyframes: ..., ...}.
func (f *FnMap) BindNamespace(ref ast.Ref, members map[string]value.Thunk) {
	f.members[ref] = members
}

func (f *FnMap) ResolveIdentifier(ref ast.Ref) (value.Thunk, bool) {
	t, ok := f.regular[ref]
	return t, ok
}

func (f *FnMap) ResolveMember(ref ast.Ref, name string) (value.Thunk, bool) {
	ns, ok := f.members[ref]
	if !ok {
		return value.Thunk{}, false
	}
	t, ok := ns[name]
	return t, ok
}
