package compiler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/atomicss/atomicss/internal/value"
)

// unitlessProperties lists the dash-cased CSS properties whose numeric
// values are never px-suffixed, matching the list browsers themselves
// treat as unitless (react-dom carries the same table for inline styles).
var unitlessProperties = map[string]bool{
	"animation-iteration-count": true,
	"aspect-ratio":              true,
	"border-image-outset":       true,
	"border-image-slice":        true,
	"border-image-width":        true,
	"column-count":              true,
	"flex":                      true,
	"flex-grow":                 true,
	"flex-shrink":               true,
	"font-weight":               true,
	"grid-column":               true,
	"grid-row":                  true,
	"line-height":               true,
	"opacity":                   true,
	"order":                     true,
	"orphans":                   true,
	"widows":                    true,
	"z-index":                   true,
	"zoom":                      true,
	"tab-size":                  true,
	"fill-opacity":              true,
	"stroke-opacity":            true,
	"stroke-dasharray":          true,
	"stroke-width":              true,
}

func isUnitless(dashProperty string) bool {
	return unitlessProperties[dashProperty]
}

// FormatValue renders v as CSS declaration text for dashProperty: numbers
// get px-suffixed unless the property is known unitless or the value is
// zero, and every value (numeric or string-literal) gets leading-zero and
// zero-unit cleanup applied the way CSS minifiers do.
func FormatValue(dashProperty string, v value.Value) (string, bool) {
	switch v.Kind() {
	case value.KindNum:
		n, _ := v.Num()
		return formatNumericValue(dashProperty, n), true
	case value.KindStr:
		s, _ := v.Str()
		return formatStringValue(dashProperty, s), true
	default:
		return "", false
	}
}

// integerLikeRE matches a string holding nothing but a (possibly
// fractional) number, with no unit of its own — the shape a fallback
// array's earlier, bare entries take (`'500'` alongside `'var(--h)'`).
var integerLikeRE = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// formatStringValue runs the usual leading-zero/zero-unit cleanup, then
// applies the same bare-integer px-suffixing a plain JS number gets to a
// string value that carried no unit of its own to begin with (`"500"`
// inside a fallback array, alongside `"var(--h)"`). A string that already
// carries a unit or other non-numeric text (`"100dvh"`, `"left"`) never
// matches integerLikeRE and is left to cleanupText alone.
func formatStringValue(dashProperty, s string) string {
	cleaned := cleanupText(s)
	if !integerLikeRE.MatchString(s) || cleaned == "0" {
		return cleaned
	}
	if isUnitless(dashProperty) {
		return cleaned
	}
	return cleaned + "px"
}

func formatNumericValue(dashProperty string, n float64) string {
	if n == 0 {
		return "0"
	}
	s := cleanupText(formatNumber(n))
	if isUnitless(dashProperty) {
		return s
	}
	return s + "px"
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

var leadingZeroRE = regexp.MustCompile(`(^|[^0-9.])0\.([0-9])`)

// zeroUnitRE matches a bare-zero value carrying a length/time/angle unit;
// percent is excluded deliberately (0% and unitless 0 are not
// interchangeable for properties like flex-basis).
var zeroUnitRE = regexp.MustCompile(`^0(?:px|em|rem|pt|pc|in|cm|mm|ex|ch|vw|vh|vmin|vmax|deg|rad|grad|turn|s|ms|fr)$`)

func cleanupText(s string) string {
	s = leadingZeroRE.ReplaceAllString(s, "$1.$2")
	fields := strings.Fields(s)
	for i, f := range fields {
		if zeroUnitRE.MatchString(f) {
			fields[i] = "0"
		}
	}
	return strings.Join(fields, " ")
}
