package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/diag"
	"github.com/atomicss/atomicss/internal/value"
)

func num(n float64) ast.Expr    { return ast.Expr{Data: &ast.ENumber{Value: n}} }
func str(s string) ast.Expr     { return ast.Expr{Data: &ast.EString{Value: s}} }
func boolean(b bool) ast.Expr   { return ast.Expr{Data: &ast.EBoolean{Value: b}} }
func nullExpr() ast.Expr        { return ast.Expr{Data: &ast.ENull{}} }
func undefinedExpr() ast.Expr   { return ast.Expr{Data: &ast.EUndefined{}} }
func ident(ref ast.Ref) ast.Expr { return ast.Expr{Data: &ast.EIdentifier{Ref: ref}} }

func newEval() (*Evaluator, *Env, *FnMap) {
	env := NewEnv()
	fns := NewFnMap()
	return New(env, fns), env, fns
}

func TestLiterals(t *testing.T) {
	ev, _, _ := newEval()
	n := num(10)
	out := ev.Evaluate(&n)
	require.True(t, out.Confident)
	v, _ := out.Value.Num()
	assert.Equal(t, 10.0, v)
}

func TestBinaryArithmetic(t *testing.T) {
	ev, _, _ := newEval()
	e := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpAdd, Left: num(2), Right: num(3)}}
	out := ev.Evaluate(&e)
	require.True(t, out.Confident)
	n, _ := out.Value.Num()
	assert.Equal(t, 5.0, n)
}

func TestStringConcatenation(t *testing.T) {
	ev, _, _ := newEval()
	e := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpAdd, Left: str("a"), Right: num(1)}}
	out := ev.Evaluate(&e)
	require.True(t, out.Confident)
	s, _ := out.Value.Str()
	assert.Equal(t, "a1", s)
}

func TestLogicalAndTruthTable(t *testing.T) {
	ev, _, _ := newEval()
	// false && x -> false, x never evaluated (EMissing would deopt if it were)
	e := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpLogicalAnd, Left: boolean(false), Right: ast.Expr{Data: &ast.EMissing{}}}}
	out := ev.Evaluate(&e)
	require.True(t, out.Confident, "left decides, right must not be forced")
	b, _ := out.Value.Bool()
	assert.False(t, b)

	e2 := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpLogicalAnd, Left: boolean(true), Right: num(5)}}
	out2 := ev.Evaluate(&e2)
	require.True(t, out2.Confident)
	n, _ := out2.Value.Num()
	assert.Equal(t, 5.0, n)
}

func TestNullishCoalescing(t *testing.T) {
	ev, _, _ := newEval()
	e := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpNullishCoalescing, Left: num(0), Right: num(9)}}
	out := ev.Evaluate(&e)
	require.True(t, out.Confident)
	n, _ := out.Value.Num()
	assert.Equal(t, 0.0, n, "0 is not nullish, left must win")

	e2 := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpNullishCoalescing, Left: nullExpr(), Right: num(9)}}
	out2 := ev.Evaluate(&e2)
	require.True(t, out2.Confident)
	n2, _ := out2.Value.Num()
	assert.Equal(t, 9.0, n2)
}

func TestTernary(t *testing.T) {
	ev, _, _ := newEval()
	e := ast.Expr{Data: &ast.EIf{Test: boolean(true), Yes: num(1), No: num(2)}}
	out := ev.Evaluate(&e)
	require.True(t, out.Confident)
	n, _ := out.Value.Num()
	assert.Equal(t, 1.0, n)
}

func TestMemberAccessOnMap(t *testing.T) {
	ev, _, _ := newEval()
	obj := ast.Expr{Data: &ast.EObject{Properties: []ast.Property{
		{Key: str("height"), Value: num(10)},
	}}}
	e := ast.Expr{Data: &ast.EDot{Target: obj, Name: "height"}}
	out := ev.Evaluate(&e)
	require.True(t, out.Confident)
	n, _ := out.Value.Num()
	assert.Equal(t, 10.0, n)
}

func TestMissingKeyDeopts(t *testing.T) {
	ev, _, _ := newEval()
	obj := ast.Expr{Data: &ast.EObject{}}
	e := ast.Expr{Data: &ast.EDot{Target: obj, Name: "missing"}}
	out := ev.Evaluate(&e)
	assert.False(t, out.Confident)
}

func TestSpreadInlinesArray(t *testing.T) {
	ev, _, _ := newEval()
	inner := ast.Expr{Data: &ast.EArray{Items: []ast.Expr{num(1), num(2)}}}
	outer := ast.Expr{Data: &ast.EArray{Items: []ast.Expr{
		{Data: &ast.ESpread{Value: inner}},
		num(3),
	}}}
	out := ev.Evaluate(&outer)
	require.True(t, out.Confident)
	items, _ := out.Value.Vec()
	require.Len(t, items, 3)
	n, _ := items[2].Num()
	assert.Equal(t, 3.0, n)
}

func TestTemplateLiteral(t *testing.T) {
	ev, _, _ := newEval()
	e := ast.Expr{Data: &ast.ETemplate{
		Quasis: []string{"var(--", ")"},
		Exprs:  []ast.Expr{str("h")},
	}}
	out := ev.Evaluate(&e)
	require.True(t, out.Confident)
	s, _ := out.Value.Str()
	assert.Equal(t, "var(--h)", s)
}

func TestCallResolvesThroughFnMap(t *testing.T) {
	ev, _, fns := newEval()
	ref := ast.Ref{Symbol: "double"}
	fns.BindRegular(ref, value.Thunk{Name: "double", Invoke: func(args []value.Value) (value.Value, bool) {
		n, ok := args[0].Num()
		if !ok {
			return value.Value{}, false
		}
		return value.Num(n * 2), true
	}})
	e := ast.Expr{Data: &ast.ECall{Target: ident(ref), Args: []ast.Expr{num(21)}}}
	out := ev.Evaluate(&e)
	require.True(t, out.Confident)
	n, _ := out.Value.Num()
	assert.Equal(t, 42.0, n)
}

func TestCallToUnregisteredFunctionDeopts(t *testing.T) {
	ev, _, _ := newEval()
	ref := ast.Ref{Symbol: "unknownFn"}
	e := ast.Expr{Data: &ast.ECall{Target: ident(ref)}}
	out := ev.Evaluate(&e)
	assert.False(t, out.Confident)
}

func TestIdentifierLookupFromEnv(t *testing.T) {
	ev, env, _ := newEval()
	ref := ast.Ref{Symbol: "x"}
	init := num(7)
	env.Bind(ref, &init)
	e := ident(ref)
	out := ev.Evaluate(&e)
	require.True(t, out.Confident)
	n, _ := out.Value.Num()
	assert.Equal(t, 7.0, n)
}

func TestRecursiveIdentifierDeopts(t *testing.T) {
	ev, env, _ := newEval()
	ref := ast.Ref{Symbol: "a"}
	self := ident(ref)
	env.Bind(ref, &self) // a = a
	e := ident(ref)
	out := ev.Evaluate(&e)
	assert.False(t, out.Confident)
}

func TestMemoizationReturnsSameOutcome(t *testing.T) {
	ev, _, _ := newEval()
	e := ast.Expr{Data: &ast.EBinary{Op: ast.BinOpAdd, Left: num(1), Right: num(1)}}
	out1 := ev.Evaluate(&e)
	out2 := ev.Evaluate(&e)
	assert.Equal(t, out1, out2)
}

func TestCreateCallRejectsSpreadInStyleObject(t *testing.T) {
	ev, _, fns := newEval()
	ref := ast.Ref{Symbol: "create"}
	fns.BindRegular(ref, value.Thunk{Name: "create", Invoke: func(args []value.Value) (value.Value, bool) {
		t.Fatal("Invoke must not run once the structural check has deopted the call")
		return value.Value{}, false
	}})
	restObj := ast.Expr{Data: &ast.EObject{Properties: []ast.Property{
		{Kind: ast.PropertySpread, Value: ident(ast.Ref{Symbol: "rest"})},
	}}}
	e := ast.Expr{Data: &ast.ECall{Target: ident(ref), Args: []ast.Expr{restObj}}}
	out := ev.Evaluate(&e)
	assert.False(t, out.Confident)
	d := ev.LastError()
	require.NotNil(t, d)
	assert.Equal(t, diag.IllegalArgument, d.Kind)
}

func TestCreateCallRejectsDuplicateConditionKey(t *testing.T) {
	ev, _, fns := newEval()
	ref := ast.Ref{Symbol: "create"}
	fns.BindRegular(ref, value.Thunk{Name: "create", Invoke: func(args []value.Value) (value.Value, bool) {
		t.Fatal("Invoke must not run once the structural check has deopted the call")
		return value.Value{}, false
	}})
	namespaceObj := ast.Expr{Data: &ast.EObject{Properties: []ast.Property{
		{Key: str("color"), Value: ast.Expr{Data: &ast.EObject{Properties: []ast.Property{
			{Key: str(":hover"), Value: str("red")},
			{Key: str(":hover"), Value: str("blue")},
		}}}},
	}}}
	rootObj := ast.Expr{Data: &ast.EObject{Properties: []ast.Property{
		{Key: str("root"), Value: namespaceObj},
	}}}
	e := ast.Expr{Data: &ast.ECall{Target: ident(ref), Args: []ast.Expr{rootObj}}}
	out := ev.Evaluate(&e)
	assert.False(t, out.Confident)
	d := ev.LastError()
	require.NotNil(t, d)
	assert.Equal(t, diag.IllegalArgument, d.Kind)
}

func TestCreateCallRejectsComputedKey(t *testing.T) {
	ev, _, fns := newEval()
	ref := ast.Ref{Symbol: "create"}
	fns.BindRegular(ref, value.Thunk{Name: "create", Invoke: func(args []value.Value) (value.Value, bool) {
		t.Fatal("Invoke must not run once the structural check has deopted the call")
		return value.Value{}, false
	}})
	rootObj := ast.Expr{Data: &ast.EObject{Properties: []ast.Property{
		{Key: str("root"), Value: ast.Expr{Data: &ast.EObject{Properties: []ast.Property{
			{Key: ident(ast.Ref{Symbol: "dynamicKey"}), Value: num(1), IsComputed: true},
		}}}},
	}}}
	e := ast.Expr{Data: &ast.ECall{Target: ident(ref), Args: []ast.Expr{rootObj}}}
	out := ev.Evaluate(&e)
	assert.False(t, out.Confident)
	d := ev.LastError()
	require.NotNil(t, d)
	assert.Equal(t, diag.IllegalArgument, d.Kind)
}

func TestUndefinedIsNullishForBoolNotEqualNull(t *testing.T) {
	assert.True(t, value.Undefined().IsNullish())
	assert.True(t, value.Null().IsNullish())
	eq, ok := looseEquals(value.Null(), value.Undefined())
	require.True(t, ok)
	assert.True(t, eq)
}
