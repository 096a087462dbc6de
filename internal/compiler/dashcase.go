package compiler

import "strings"

// DashCase converts a camelCase (or vendor-prefixed Capitalized) JS style
// property name into its CSS dash-cased form: zIndex -> z-index, WebkitMask
// -> -webkit-mask. Custom properties (leading "--") pass through
// unchanged, since their casing is author-significant.
func DashCase(property string) string {
	if strings.HasPrefix(property, "--") {
		return property
	}
	var sb strings.Builder
	if strings.HasPrefix(property, "Webkit") || strings.HasPrefix(property, "Moz") ||
		strings.HasPrefix(property, "Ms") || strings.HasPrefix(property, "O") {
		sb.WriteByte('-')
	}
	for i, r := range property {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
