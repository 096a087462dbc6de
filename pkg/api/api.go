// Package api is the transformer's public entrypoint: the one function a
// host (bundler plugin, CLI, language-server pass) calls per module.
package api

import (
	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/config"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/driver"
	"github.com/atomicss/atomicss/internal/state"
)

// Result is everything a host needs after a successful transform: the
// rewritten module (already mutated in place, returned for convenience),
// the accumulated imports, and the number of compiled rules, so a caller
// need not re-parse the prepended CSS payload for them.
type Result struct {
	Module  *ast.Module
	Imports []state.Import
	Rules   int
}

// Transform rewrites module's tracked call sites in place per opts,
// prepending the generated imports and injection payload onto the
// module body. A panic anywhere in the pipeline (a host-supplied AST
// node violating an invariant the core assumes, for instance) is
// recovered and reported as a diag.Bug diagnostic rather than crashing
// the host process.
func Transform(module *ast.Module, opts config.Options) (result *Result, err *diag.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = diag.Recover(r)
		}
	}()

	st, d := driver.Run(module, opts)
	if d != nil {
		return nil, d
	}
	return &Result{Module: module, Imports: st.Imports(), Rules: len(st.Rules())}, nil
}
