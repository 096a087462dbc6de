package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/atomicss/atomicss/internal/value"
)

// toNumber implements the same "ToNumber without side effects" reductions
// as evanw-esbuild/internal/js_ast/js_ast_helpers.go's
// ToNumberWithoutSideEffects, generalized from AST nodes to our already-
// reduced value.Value, under strict numeric semantics: literal scalar
// kinds coerce the way a JS engine would, composite kinds (maps,
// included-styles, ...) never do.
func toNumber(v value.Value) (float64, bool) {
	switch v.Kind() {
	case value.KindNull:
		return 0, true
	case value.KindUndefined:
		return math.NaN(), true
	case value.KindBool:
		b, _ := v.Bool()
		if b {
			return 1, true
		}
		return 0, true
	case value.KindNum:
		n, _ := v.Num()
		return n, true
	case value.KindStr:
		s, _ := v.Str()
		if strings.TrimSpace(s) == "" {
			return 0, true
		}
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n, true
		}
		return math.NaN(), true
	case value.KindVec:
		items, _ := v.Vec()
		if len(items) == 0 {
			return 0, true // "+[]" => 0
		}
		if len(items) == 1 {
			return toNumber(items[0])
		}
	}
	return 0, false
}

// toStringForConcat implements "ToString without side effects", used by
// template-literal holes and the `+` operator's string-concatenation path.
func toStringForConcat(v value.Value) (string, bool) {
	switch v.Kind() {
	case value.KindNull:
		return "null", true
	case value.KindUndefined:
		return "undefined", true
	case value.KindBool:
		b, _ := v.Bool()
		if b {
			return "true", true
		}
		return "false", true
	case value.KindNum:
		n, _ := v.Num()
		return formatNumber(n), true
	case value.KindStr:
		s, _ := v.Str()
		return s, true
	}
	return "", false
}

// formatNumber renders a float64 the way JS's Number#toString would for
// the finite, non-exponential range style source values live in. Exact
// ECMA-262 Number::toString is a notoriously specialized algorithm with no
// equivalent in any example repo's dependency set; strconv's shortest
// round-trip formatting is the standard-library substitute used here.
func formatNumber(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func toInt32(v value.Value) (int32, bool) {
	n, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, true
	}
	return int32(uint32(int64(n))), true
}
