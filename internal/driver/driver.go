// Package driver wires the evaluator, transform rewrites, and the
// accumulated State together into the two-pass pipeline a host invokes
// once per module: an Initializing pass that binds tracked imports and
// variable declarations, and a Transform pass that evaluates each
// top-level expression, rewrites the confident ones in place, and
// materializes the injection queue into prepended module items.
package driver

import (
	"sort"

	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/compiler"
	"github.com/atomicss/atomicss/internal/config"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/evaluator"
	"github.com/atomicss/atomicss/internal/helpers"
	"github.com/atomicss/atomicss/internal/namegen"
	"github.com/atomicss/atomicss/internal/state"
	"github.com/atomicss/atomicss/internal/transform"
)

// Run transforms module in place according to opts, returning the State
// accumulated across every rewritten call site. A nil diagnostic means
// every tracked call site reduced successfully; otherwise the returned
// diagnostic is the first fatal failure encountered, and module may be
// partially rewritten (the caller should discard it).
func Run(module *ast.Module, opts config.Options) (*state.State, *diag.Diagnostic) {
	env := evaluator.NewEnv()
	for _, decl := range module.VarDecls {
		env.Bind(decl.Ref, decl.Value)
	}

	fns := evaluator.NewFnMap()
	st := state.New()
	names := namegen.NewGenerator()
	ctx := transform.NewContext(evaluator.New(env, fns), names, st, opts)
	ctx.FileID = module.Path
	thunks := ctx.Thunks()

	tracked := make(map[string]bool, len(opts.ImportSources))
	for _, src := range opts.ImportSources {
		tracked[src] = true
	}

	for _, imp := range module.Imports {
		if !tracked[imp.Source] {
			continue
		}
		for _, item := range imp.Items {
			switch item.Alias {
			case "*", "default":
				fns.BindNamespace(item.LocalName, thunks)
			default:
				if t, ok := thunks[item.Alias]; ok {
					fns.BindRegular(item.LocalName, t)
				}
			}
		}
	}

	for i := range module.VarDecls {
		decl := &module.VarDecls[i]
		if decl.Value == nil {
			continue
		}
		if d := evaluateAndMaybeRewrite(ctx, decl.Value); d != nil {
			return nil, d
		}
	}

	for i := range module.TopLevel {
		top := &module.TopLevel[i]
		if d := evaluateAndMaybeRewrite(ctx, top.Ptr); d != nil {
			return nil, d
		}
	}

	materialize(module, st, opts.RuntimeInjection)
	return st, nil
}

// evaluateAndMaybeRewrite evaluates e, rewriting *e in place when the
// evaluator lands on a literal it can re-render. A deopt is only fatal
// when e was itself a call into a tracked library function — an
// ordinary, untracked expression deopting is not this pipeline's
// business and is left exactly as written.
func evaluateAndMaybeRewrite(ctx *transform.Context, e *ast.Expr) *diag.Diagnostic {
	outcome := ctx.Eval.Evaluate(e)
	if outcome.Confident {
		if lit, ok := literalize(outcome.Value); ok {
			*e = lit
		}
		return nil
	}

	deopt := outcome.Deopt
	if deopt == nil {
		deopt = e
	}
	if !ctx.Eval.IsTrackedCall(deopt) {
		return nil
	}
	if d := ctx.Eval.LastError(); d != nil {
		return d
	}
	if d := ctx.LastError(); d != nil {
		return d
	}
	return diag.AtExpr(diag.NonStaticValue, *deopt, "could not statically evaluate this call")
}

// materialize turns State's accumulated imports, root-level CSS variable
// declarations, and rules into the module's prepended items: one
// PrependImport per distinct source the rewrites required (a stylesheet
// registration helper, typically), followed by a single PrependVarDecl
// whose value is a residual Expr carrying the generated CSS payload for
// the host's own injection/printing stage to consume. Keyframes and
// theme overrides ride along inside the same payload rather than getting
// their own prepended statements, since nothing in the host-facing
// surface needs to address them independently of the rules they support.
//
// runtimeInjection gates all of the above: when false, the caller has
// opted into build-time CSS extraction instead (a separate bundler step
// reads State directly off the Run result), so no injection helper
// import or payload statement belongs in the rewritten module at all —
// only the call-site rewrites themselves.
func materialize(module *ast.Module, st *state.State, runtimeInjection bool) {
	if !runtimeInjection {
		return
	}
	for _, imp := range st.Imports() {
		module.PrependItems = append(module.PrependItems, ast.PrependImport{
			Source: imp.Source,
			Items: []ast.ImportItem{{
				Alias:     "default",
				LocalName: ast.Ref{Symbol: imp.Name},
			}},
		})
	}

	if len(st.Rules()) == 0 && len(st.RootVars()) == 0 && len(st.ThemeOverrides()) == 0 && len(st.KeyframesBlocks()) == 0 {
		return
	}

	payload := buildInjectionPayload(st)
	module.PrependItems = append(module.PrependItems, ast.PrependVarDecl{
		Ref:   ast.Ref{Symbol: "__atomicss_injected_styles__"},
		Value: ast.Expr{Data: &ast.EString{Value: payload}},
	})
}

// buildInjectionPayload renders the stylesheet text a runtime-injection
// helper (or a build-time CSS-extraction step) would emit for this
// module: one rule per compiled declaration in priority order, root
// custom-property declarations and their scoped theme overrides, and any
// @keyframes blocks, in that order. This is deliberately plain CSS text
// rather than a structured Expr, matching how RuntimeInjection="true"
// ships a single stylesheet string to the host's injection call.
func buildInjectionPayload(st *state.State) string {
	var j helpers.Joiner
	rules := append([]compiler.Rule{}, st.Rules()...)
	sort.SliceStable(rules, func(a, b int) bool { return rules[a].Priority < rules[b].Priority })
	for _, r := range rules {
		j.AddString("." + r.ClassName + "{" + r.CSSText() + "}")
	}
	for _, v := range st.RootVars() {
		j.AddString(":root{" + v.Name + ":" + v.Value + ";}")
	}
	for _, o := range st.ThemeOverrides() {
		j.AddString("." + o.ClassName + "{" + o.Name + ":" + o.Value + ";}")
	}
	for _, k := range st.KeyframesBlocks() {
		j.AddString("@keyframes " + k.Name + "{")
		for _, frame := range k.Frames {
			j.AddString(frame.Selector + "{")
			for _, d := range frame.Decls {
				j.AddString(d.Property + ":" + d.Value + ";")
			}
			j.AddString("}")
		}
		j.AddString("}")
	}
	return string(j.Done())
}
