package evaluator

import (
	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/value"
)

// evalAdd implements `+`'s dual nature: string concatenation if either
// operand is a string (grounded on
// evanw-esbuild/internal/js_ast/js_ast_helpers.go's FoldStringAddition),
// numeric addition otherwise.
func evalAdd(e *ast.Expr, l, r value.Value) Outcome {
	if l.Kind() == value.KindStr || r.Kind() == value.KindStr {
		ls, ok1 := toStringForConcat(l)
		rs, ok2 := toStringForConcat(r)
		if !ok1 || !ok2 {
			return Fail(e)
		}
		return Ok(value.Str(ls + rs))
	}
	ln, ok1 := toNumber(l)
	rn, ok2 := toNumber(r)
	if !ok1 || !ok2 {
		return Fail(e)
	}
	return Ok(value.Num(ln + rn))
}

func evalArith(e *ast.Expr, op ast.BinOp, l, r value.Value) Outcome {
	ln, ok1 := toNumber(l)
	rn, ok2 := toNumber(r)
	if !ok1 || !ok2 {
		return Fail(e)
	}
	switch op {
	case ast.BinOpSub:
		return Ok(value.Num(ln - rn))
	case ast.BinOpMul:
		return Ok(value.Num(ln * rn))
	case ast.BinOpDiv:
		return Ok(value.Num(ln / rn))
	case ast.BinOpRem:
		return Ok(value.Num(jsMod(ln, rn)))
	case ast.BinOpPow:
		return Ok(value.Num(power(ln, rn)))
	default:
		return Fail(e)
	}
}

func jsMod(a, b float64) float64 {
	if b == 0 {
		return nan()
	}
	m := a - b*float64(int64(a/b))
	return m
}

func power(base, exp float64) float64 {
	result := 1.0
	if exp < 0 {
		return 1 / power(base, -exp)
	}
	// Simple loop keeps this deterministic without pulling in math.Pow's
	// platform-varying FMA behavior for the small integer exponents style
	// values realistically use.
	whole := int64(exp)
	if float64(whole) != exp {
		return mathPow(base, exp)
	}
	for i := int64(0); i < whole; i++ {
		result *= base
	}
	return result
}

func evalBitwise(e *ast.Expr, op ast.BinOp, l, r value.Value) Outcome {
	li, ok1 := toInt32(l)
	ri, ok2 := toInt32(r)
	if !ok1 || !ok2 {
		return Fail(e)
	}
	switch op {
	case ast.BinOpBitwiseAnd:
		return Ok(value.Num(float64(li & ri)))
	case ast.BinOpBitwiseOr:
		return Ok(value.Num(float64(li | ri)))
	case ast.BinOpBitwiseXor:
		return Ok(value.Num(float64(li ^ ri)))
	case ast.BinOpShl:
		return Ok(value.Num(float64(li << (uint32(ri) & 31))))
	case ast.BinOpShr:
		return Ok(value.Num(float64(li >> (uint32(ri) & 31))))
	case ast.BinOpUShr:
		return Ok(value.Num(float64(uint32(li) >> (uint32(ri) & 31))))
	default:
		return Fail(e)
	}
}

func evalRelational(e *ast.Expr, op ast.BinOp, l, r value.Value) Outcome {
	// String/string comparison is lexicographic; otherwise both sides
	// coerce to numbers under strict numeric semantics — no type coercion
	// beyond what toNumber already grants the literal scalar kinds.
	if ls, ok1 := l.Str(); ok1 {
		if rs, ok2 := r.Str(); ok2 {
			return Ok(value.Bool(compareStrings(op, ls, rs)))
		}
	}
	ln, ok1 := toNumber(l)
	rn, ok2 := toNumber(r)
	if !ok1 || !ok2 {
		return Fail(e)
	}
	if ln != ln || rn != rn { // either is NaN
		return Ok(value.Bool(false))
	}
	switch op {
	case ast.BinOpLt:
		return Ok(value.Bool(ln < rn))
	case ast.BinOpLe:
		return Ok(value.Bool(ln <= rn))
	case ast.BinOpGt:
		return Ok(value.Bool(ln > rn))
	case ast.BinOpGe:
		return Ok(value.Bool(ln >= rn))
	default:
		return Fail(e)
	}
}

func compareStrings(op ast.BinOp, a, b string) bool {
	switch op {
	case ast.BinOpLt:
		return a < b
	case ast.BinOpLe:
		return a <= b
	case ast.BinOpGt:
		return a > b
	case ast.BinOpGe:
		return a >= b
	default:
		return false
	}
}

// strictEquals implements `===`: no coercion, and distinct composite
// values (maps, arrays, included-styles, ...) are never equal — matching
// JS reference equality, which two independently-evaluated literals never
// satisfy.
func strictEquals(l, r value.Value) bool {
	if l.Kind() != r.Kind() {
		return false
	}
	switch l.Kind() {
	case value.KindNull, value.KindUndefined:
		return true
	case value.KindBool:
		lb, _ := l.Bool()
		rb, _ := r.Bool()
		return lb == rb
	case value.KindNum:
		ln, _ := l.Num()
		rn, _ := r.Num()
		return ln == rn
	case value.KindStr:
		ls, _ := l.Str()
		rs, _ := r.Str()
		return ls == rs
	default:
		return false
	}
}

// looseEquals implements a deliberately narrow slice of `==`: same-kind
// delegates to strictEquals, null/undefined are mutually equal, and
// number/string pairs coerce the string side. Anything else (comparisons
// involving composite kinds) deopts rather than guess.
func looseEquals(l, r value.Value) (bool, bool) {
	if l.Kind() == r.Kind() {
		return strictEquals(l, r), true
	}
	if l.IsNullish() && r.IsNullish() {
		return true, true
	}
	if l.IsNullish() || r.IsNullish() {
		return false, true
	}
	ln, ok1 := toNumber(l)
	rn, ok2 := toNumber(r)
	if ok1 && ok2 && (l.Kind() == value.KindNum || l.Kind() == value.KindStr || l.Kind() == value.KindBool) &&
		(r.Kind() == value.KindNum || r.Kind() == value.KindStr || r.Kind() == value.KindBool) {
		return ln == rn, true
	}
	return false, false
}
