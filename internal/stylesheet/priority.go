package stylesheet

// basePriority is the CSS specificity floor every atomic rule starts from,
// chosen well above a plain element selector so pseudo/at-rule weights can
// be added without ever tipping into the next selector-specificity band.
const basePriority = 3000.0

// defaultBranchBump is added when a value was picked from an explicit
// `default` branch of a per-property condition map, so that the default
// branch always sorts before the conditions it sits beside.
const defaultBranchBump = 0.1

// fallbackIndexBump is added per position when a leaf value is a fallback
// array (`['sticky', 'fixed']`); later entries in the array need to win a
// tie against earlier ones sharing every other priority component.
const fallbackIndexBump = 0.1

// atRuleWeight is added once per nested at-rule (`@media`, `@supports`,
// `@container`, ...). Real stylesheets rarely nest more than one or two
// deep, so a flat per-level weight keeps ordering stable without needing a
// parsed understanding of each at-rule's own specificity.
const atRuleWeight = 2000.0

// pseudoWeight assigns each supported pseudo-class/element a fixed rank
// within its own band, mirroring the specificity table react-native-css
// and stylex both hand-tune for pseudo-ordering (simple states first,
// structural/positional selectors in the middle, pseudo-elements last so
// `::before`/`::after` always lose to a plain pseudo-class).
var pseudoWeight = map[string]float64{
	":link":              1,
	":visited":           2,
	":focus-within":      3,
	":focus":             4,
	":focus-visible":     5,
	":hover":             6,
	":active":            7,
	":target":            8,
	":enabled":           9,
	":disabled":          10,
	":checked":           11,
	":indeterminate":     12,
	":required":          13,
	":optional":          14,
	":valid":             15,
	":invalid":           16,
	":read-only":         17,
	":read-write":        18,
	":placeholder-shown": 19,
	":empty":             20,
	":only-child":        21,
	":first-child":       22,
	":last-child":        23,
	":nth-child":         24,
	":first-of-type":     25,
	":last-of-type":      26,
	"::placeholder":      40,
	"::selection":        41,
	"::before":           42,
	"::after":            43,
	"::marker":           44,
	":dir(rtl)":          45,
}

// weightForPseudo looks up the fixed rank for a pseudo key, falling back to
// the heaviest known band for anything unrecognized rather than refusing
// to compile a rule over an unfamiliar (but syntactically valid) pseudo.
func weightForPseudo(key string) float64 {
	if w, ok := pseudoWeight[key]; ok {
		return w
	}
	return 46
}

// computePriority folds the accumulated condition frame into the final
// priority a compiled rule sorts by: later-declared, more specific rules
// always sort after earlier, less specific ones, which is what lets
// atomic CSS classes compose predictably regardless of the order two
// `create` calls happen to be merged in downstream.
func computePriority(pseudos, atRules []string, isDefaultBranch bool, fallbackIndex int) float64 {
	p := basePriority
	for _, ar := range atRules {
		_ = ar
		p += atRuleWeight
	}
	for _, ps := range pseudos {
		p += weightForPseudo(ps)
	}
	if isDefaultBranch {
		p += defaultBranchBump
	}
	p += fallbackIndexBump * float64(fallbackIndex)
	return p
}
