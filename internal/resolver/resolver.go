// Package resolver turns an import specifier into a module identity the
// transform can key theme files and cross-module references on, without
// ever touching a filesystem itself — the host embeds one of the two
// strategies below (or an equivalent) behind the ModuleResolver interface,
// the same separation evanw-esbuild draws between its resolver interface
// and the concrete platform/npm-specific resolution logic.
package resolver

import (
	"path"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/atomicss/atomicss/internal/helpers"
)

// ModuleResolver answers "what does this import specifier, written inside
// fromFile, refer to" with an absolute module id, or ok=false if it
// can't be resolved (a fatal Unresolved diagnostic upstream).
type ModuleResolver interface {
	Resolve(fromFile, specifier string) (id string, ok bool)
}

// extensionOrder is the fixed walk order used to probe a specifier that
// has no extension of its own.
var extensionOrder = []string{".tsx", ".ts", ".jsx", ".js", ".mjs", ".cjs", ".mdx", ".md"}

// CommonJSOptions configures the Node-style resolver: relative specifiers
// resolve against the importing file's directory, absolute ones against
// RootDir.
type CommonJSOptions struct {
	RootDir            string
	ThemeFileExtension string // e.g. ".stylex"; empty disables theme-file detection

	// PathRewriteHook, when non-nil, runs on the resolved absolute path
	// before extension probing — e.g. a monorepo that serves `@app/...`
	// imports out of a rewritten `node_modules`-shaped directory. Left nil
	// by default: path rewriting is a host-specific integration detail,
	// not a behavior this package should assume every caller wants.
	PathRewriteHook func(resolvedPath string) string
}

type commonJSResolver struct {
	opts   CommonJSOptions
	exists func(string) bool
}

// NewCommonJSResolver builds the default resolver. exists reports whether
// a candidate file path exists; the host supplies it so this package never
// has to reach for os.Stat itself.
func NewCommonJSResolver(opts CommonJSOptions, exists func(string) bool) ModuleResolver {
	return &commonJSResolver{opts: opts, exists: exists}
}

func (r *commonJSResolver) Resolve(fromFile, specifier string) (string, bool) {
	var base string
	if strings.HasPrefix(specifier, ".") {
		base = path.Join(path.Dir(fromFile), specifier)
	} else if strings.HasPrefix(specifier, "/") {
		base = path.Join(r.opts.RootDir, specifier)
	} else {
		// Bare package specifiers are left to the host's own
		// node_modules resolution; this package only resolves
		// project-relative and root-relative imports.
		return "", false
	}

	// A rewrite hook targets the project's own source layout (e.g. a
	// monorepo's package-alias scheme); a specifier that already resolved
	// into node_modules is someone else's package layout and must not be
	// rewritten a second time.
	if r.opts.PathRewriteHook != nil && !helpers.IsInsideNodeModules(base) {
		base = r.opts.PathRewriteHook(base)
	}

	if path.Ext(base) != "" {
		if r.exists(base) {
			return base, true
		}
		return "", false
	}
	for _, ext := range extensionOrder {
		candidate := base + ext
		if r.exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// HasteOptions configures the flat, extensionless "Haste" module map some
// large JS monorepos use instead of relative/CommonJS resolution: every
// module is addressed by its basename alone, deduplicated across the
// whole project.
type HasteOptions struct {
	// Map is the precomputed basename -> absolute-path table; building it
	// is a directory-walk the host performs once, not per-resolve.
	Map map[string]string
}

type hasteResolver struct {
	opts HasteOptions
}

func NewHasteResolver(opts HasteOptions) ModuleResolver {
	return &hasteResolver{opts: opts}
}

func (r *hasteResolver) Resolve(_, specifier string) (string, bool) {
	name := strings.TrimSuffix(path.Base(specifier), path.Ext(specifier))
	id, ok := r.opts.Map[name]
	return id, ok
}

// KnownNames returns every basename the haste map resolves, sorted for a
// deterministic typo-suggestion candidate list (validate.SuggestTypo) when
// a Resolve call fails and the host wants to report "did you mean X?".
func (r *hasteResolver) KnownNames() []string {
	names := maps.Keys(r.opts.Map)
	slices.Sort(names)
	return names
}

// IsThemeFile reports whether path carries the configured theme-file
// extension (e.g. "colors.stylex.js" under ".stylex"), the signal
// defineVars uses to require that it is called from such a file.
func IsThemeFile(opts CommonJSOptions, filePath string) bool {
	if opts.ThemeFileExtension == "" {
		return false
	}
	return strings.Contains(path.Base(filePath), opts.ThemeFileExtension)
}
