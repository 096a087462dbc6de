package transform

import (
	"github.com/atomicss/atomicss/internal/compiler"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/state"
	"github.com/atomicss/atomicss/internal/stylesheet"
	"github.com/atomicss/atomicss/internal/value"
)

// Keyframes implements `stylex.keyframes({ from: {...}, '50%': {...}, to:
// {...} })`: each frame's property object is flattened like any style
// object, and every property must flatten to a single plain value (a
// fallback array is rejected with IllegalValue; a pseudo or at-rule key
// inside a frame is flattened, but its condition is not kept in the
// emitted block). Its declarations are dash-cased and unit-normalized but — unlike
// `create` — never individually hashed into atomic classes, since a
// keyframe's declarations only ever make sense together. The whole block
// is registered under one generated animation name, which is the call's
// result value.
func (c *Context) Keyframes(args []value.Value) (value.Value, bool) {
	if len(args) != 1 {
		return value.Value{}, c.failf(diag.IllegalArgument, "keyframes expects exactly one object argument, got %d", len(args))
	}
	frames, ok := args[0].Map()
	if !ok {
		return value.Value{}, c.failf(diag.IllegalArgument, "keyframes's argument must be an object literal")
	}

	name := c.classPrefix() + c.Names.NextForPrefix("anim-")
	block := state.Keyframes{Name: name}

	for _, entry := range frames.Entries() {
		selector, _ := entry.Key.ToMapKey()
		frameObj, ok := entry.Value.Map()
		if !ok {
			return value.Value{}, c.failf(diag.IllegalValue, "keyframes frame %q must be an object of properties", selector)
		}
		flat, derr := stylesheet.Flatten(selector, frameObj)
		if derr != nil {
			return value.Value{}, c.fail(derr)
		}
		var decls []state.KeyframeDecl
		for _, fe := range flat.Entries {
			one, ok := fe.Rule.(stylesheet.PreRuleOne)
			if !ok {
				return value.Value{}, c.failf(diag.IllegalValue, "keyframes frame %q: %s must be a plain value", selector, fe.Property)
			}
			dashed := compiler.DashCase(fe.Property)
			text, ok := compiler.FormatValue(dashed, one.Value)
			if !ok {
				return value.Value{}, c.failf(diag.IllegalValue, "keyframes frame %q: %s must be a string or number", selector, fe.Property)
			}
			decls = append(decls, state.KeyframeDecl{Property: dashed, Value: text})
		}
		block.Frames = append(block.Frames, struct {
			Selector string
			Decls    []state.KeyframeDecl
		}{Selector: selector, Decls: decls})
	}

	c.State.DeclareKeyframes(block)
	return value.Str(name), true
}
