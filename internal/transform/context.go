// Package transform implements the six call-site rewrites a namespace
// import from the styling runtime can trigger: create, defineVars,
// createTheme, keyframes, firstThatWorks, include, and the props/attrs
// consumer pair. Each rewrite validates its arguments, evaluates them to
// static values, compiles the result, and returns the literal expression
// that should replace the call site plus whatever rules/imports the
// module's State needs to pick up.
package transform

import (
	"github.com/atomicss/atomicss/internal/compiler"
	"github.com/atomicss/atomicss/internal/config"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/evaluator"
	"github.com/atomicss/atomicss/internal/namegen"
	"github.com/atomicss/atomicss/internal/state"
)

// Context is the shared machinery every rewrite needs: an evaluator to
// reduce arguments, a name generator for deterministic animation names,
// the module's accumulated State, and the active Options.
type Context struct {
	Eval    *evaluator.Evaluator
	Names   *namegen.Generator
	State   *state.State
	Options config.Options

	// FileID scopes generated custom-property names (defineVars) so two
	// different theme files declaring a same-named variable never
	// collide. Left empty for a single-file transform.
	FileID string

	lastError *diag.Diagnostic
}

func NewContext(ev *evaluator.Evaluator, names *namegen.Generator, st *state.State, opts config.Options) *Context {
	return &Context{Eval: ev, Names: names, State: st, Options: opts}
}

func (c *Context) classPrefix() string {
	if c.Options.ClassNamePrefix != "" {
		return c.Options.ClassNamePrefix
	}
	return "x"
}

// nameOptions translates Options.Dev/Options.Test into the readable-suffix
// request compiler.CompileOne understands. Either flag is enough: dev mode
// wants readable names for its own sake, and test mode wants them so a
// snapshot diff points at the declaration that moved.
func (c *Context) nameOptions() compiler.NameOptions {
	return compiler.NameOptions{Readable: c.Options.Dev || c.Options.Test}
}
