// Package state tracks the per-module bookkeeping a transform run
// accumulates: which runtime helpers need importing, and which atomic
// rules still need to be injected into the module's CSS output. The
// explicit, pairwise-mergeable State shape mirrors how
// evanw-esbuild/internal/js_parser and its linker pass bookkeeping
// structs between files instead of relying on global mutable state.
package state

import (
	"strings"

	"github.com/atomicss/atomicss/internal/compiler"
	"github.com/atomicss/atomicss/internal/namegen"
)

// Import identifies a runtime helper a generated call site needs (e.g.
// `inject` from the styling runtime, or a theme file's generated CSS
// variables module).
type Import struct {
	Source string
	Name   string
}

// RootVar is a `defineVars` custom-property declaration, scoped to
// `:root` unless AtRules wraps it in a media/support condition.
type RootVar struct {
	Name    string // CSS custom property name, including the leading "--"
	Value   string
	AtRules []string
}

// ThemeOverride is a `createTheme` custom-property override, scoped to
// the theme's generated class instead of `:root`.
type ThemeOverride struct {
	ClassName string
	Name      string
	Value     string
	AtRules   []string
}

// KeyframeDecl is one property:value declaration inside one frame
// (`0%`, `50%`, `from`, ...) of a `keyframes` animation.
type KeyframeDecl struct {
	Property string
	Value    string
}

// Keyframes is one compiled `@keyframes` block.
type Keyframes struct {
	Name   string
	Frames []struct {
		Selector string
		Decls    []KeyframeDecl
	}
}

// State is a single module's accumulated side effects: the imports it
// needs and the CSS rules its calls compiled, in first-seen order.
type State struct {
	imports        []Import
	seenImport     map[Import]bool
	rules          []compiler.Rule
	seenClasses    map[string]string
	rootVars       []RootVar
	seenRootVar    map[string]bool
	themeOverrides []ThemeOverride
	seenOverride   map[string]bool
	keyframes      []Keyframes
}

func New() *State {
	return &State{
		seenImport:   make(map[Import]bool),
		seenClasses:  make(map[string]string),
		seenRootVar:  make(map[string]bool),
		seenOverride: make(map[string]bool),
	}
}

// RequireImport registers imp if it hasn't already been requested by an
// earlier call in this module.
func (s *State) RequireImport(imp Import) {
	if s.seenImport[imp] {
		return
	}
	s.seenImport[imp] = true
	s.imports = append(s.imports, imp)
}

// ruleSignature is the content two rules must share for a repeated
// ClassName to be a legitimate re-emission rather than a 32-bit hash
// collision between unrelated declarations.
func ruleSignature(r compiler.Rule) string {
	return r.Property + "\x00" + r.Value + "\x00" +
		strings.Join(r.Pseudos, ",") + "\x00" + strings.Join(r.AtRules, ",")
}

// Inject enqueues r for injection, deduplicating by class name: two call
// sites compiling the same declaration must only emit the rule once. If
// ClassName is already taken by a declaration with different content —
// namegen.Hash32's 32-bit space colliding, since classNameFor only ever
// reuses a name for identical input — r is renamed by appending a
// namegen.TiebreakFor suffix derived from its own content, so both
// declarations still get a stable, collision-free class. The (possibly
// renamed) Rule is returned so the caller's own class-name bookkeeping
// (e.g. the property-slot map Create builds) stays in sync.
func (s *State) Inject(r compiler.Rule) compiler.Rule {
	sig := ruleSignature(r)
	if existing, ok := s.seenClasses[r.ClassName]; ok {
		if existing == sig {
			return r
		}
		r.ClassName = r.ClassName + namegen.TiebreakFor(sig)
		if existing, ok := s.seenClasses[r.ClassName]; ok && existing == sig {
			return r
		}
	}
	s.seenClasses[r.ClassName] = sig
	s.rules = append(s.rules, r)
	return r
}

func (s *State) Imports() []Import      { return s.imports }
func (s *State) Rules() []compiler.Rule { return s.rules }

func rootVarKey(name string, atRules []string) string {
	key := name + "\x00"
	for _, a := range atRules {
		key += a + ";"
	}
	return key
}

// DeclareRootVar registers a `:root`-scoped custom-property declaration,
// deduplicating by (name, at-rule-path) so two call sites defining the
// same variable under the same condition only emit it once.
func (s *State) DeclareRootVar(v RootVar) {
	k := rootVarKey(v.Name, v.AtRules)
	if s.seenRootVar[k] {
		return
	}
	s.seenRootVar[k] = true
	s.rootVars = append(s.rootVars, v)
}

func (s *State) RootVars() []RootVar { return s.rootVars }

// DeclareThemeOverride registers a custom-property override scoped to a
// `createTheme` class, deduplicating by (class, name, at-rule-path).
func (s *State) DeclareThemeOverride(o ThemeOverride) {
	k := o.ClassName + "\x00" + rootVarKey(o.Name, o.AtRules)
	if s.seenOverride[k] {
		return
	}
	s.seenOverride[k] = true
	s.themeOverrides = append(s.themeOverrides, o)
}

func (s *State) ThemeOverrides() []ThemeOverride { return s.themeOverrides }

// DeclareKeyframes registers a compiled `@keyframes` block. Animation
// names come from a per-module Generator, so they are unique by
// construction and need no dedup.
func (s *State) DeclareKeyframes(k Keyframes) {
	s.keyframes = append(s.keyframes, k)
}

func (s *State) KeyframesBlocks() []Keyframes { return s.keyframes }

// Combine merges b into a NEW State built from a, preserving a's entries
// first and then appending b's entries that a did not already have.
// Combine is associative (each side's relative order is preserved
// independent of how the merge tree is shaped) but NOT commutative:
// Combine(a, b) keeps a's first-seen order ahead of b's, so Combine(a, b)
// and Combine(b, a) can disagree on which duplicate "wins" the earlier
// position when both sides enqueue the same import/class in different
// original order.
func Combine(a, b *State) *State {
	out := New()
	for _, imp := range a.imports {
		out.RequireImport(imp)
	}
	for _, imp := range b.imports {
		out.RequireImport(imp)
	}
	for _, r := range a.rules {
		out.Inject(r)
	}
	for _, r := range b.rules {
		out.Inject(r)
	}
	for _, v := range a.rootVars {
		out.DeclareRootVar(v)
	}
	for _, v := range b.rootVars {
		out.DeclareRootVar(v)
	}
	for _, o := range a.themeOverrides {
		out.DeclareThemeOverride(o)
	}
	for _, o := range b.themeOverrides {
		out.DeclareThemeOverride(o)
	}
	for _, k := range a.keyframes {
		out.DeclareKeyframes(k)
	}
	for _, k := range b.keyframes {
		out.DeclareKeyframes(k)
	}
	return out
}
