package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicss/atomicss/internal/ast"
	"github.com/atomicss/atomicss/internal/diag"
)

func strExpr(s string) ast.Expr { return ast.Expr{Data: &ast.EString{Value: s}} }

func strProp(key, val string) ast.Property {
	return ast.Property{Key: strExpr(key), Value: strExpr(val)}
}

func TestArityRejectsWrongCount(t *testing.T) {
	call := ast.Expr{Data: &ast.ECall{}}
	e := &ast.ECall{Args: []ast.Expr{strExpr("a")}}
	d := Arity(call, e, 2)
	require.NotNil(t, d)
	assert.Equal(t, diag.IllegalArgument, d.Kind)

	assert.Nil(t, Arity(call, e, 1))
}

func TestMinArityRequiresAtLeastN(t *testing.T) {
	call := ast.Expr{Data: &ast.ECall{}}
	e := &ast.ECall{Args: []ast.Expr{strExpr("a")}}
	require.NotNil(t, MinArity(call, e, 2))
	assert.Nil(t, MinArity(call, e, 1))
}

func TestRequireObjectLiteralRejectsNonObject(t *testing.T) {
	_, d := RequireObjectLiteral(strExpr("not an object"))
	require.NotNil(t, d)
	assert.Equal(t, diag.IllegalArgument, d.Kind)

	obj, d := RequireObjectLiteral(ast.Expr{Data: &ast.EObject{}})
	require.Nil(t, d)
	assert.NotNil(t, obj)
}

func TestRequireStaticKeyRejectsSpreadAndComputed(t *testing.T) {
	spread := ast.Property{Kind: ast.PropertySpread, Value: strExpr("rest")}
	d := RequireStaticKey(spread)
	require.NotNil(t, d)
	assert.Equal(t, diag.IllegalArgument, d.Kind)

	computed := ast.Property{IsComputed: true, Key: strExpr("k")}
	d2 := RequireStaticKey(computed)
	require.NotNil(t, d2)
	assert.Equal(t, diag.IllegalArgument, d2.Kind)

	plain := strProp("color", "red")
	assert.Nil(t, RequireStaticKey(plain))
}

func TestDetectDuplicateConditionFindsFirstRepeat(t *testing.T) {
	obj := &ast.EObject{Properties: []ast.Property{
		strProp(":hover", "red"),
		strProp("default", "blue"),
		strProp(":hover", "green"),
	}}
	assert.Equal(t, ":hover", DetectDuplicateCondition(obj))
}

func TestDetectDuplicateConditionIgnoresSpreadAndComputed(t *testing.T) {
	obj := &ast.EObject{Properties: []ast.Property{
		{Kind: ast.PropertySpread, Value: strExpr("rest")},
		{IsComputed: true, Key: strExpr("k"), Value: strExpr("v")},
		strProp("default", "blue"),
	}}
	assert.Equal(t, "", DetectDuplicateCondition(obj))
}

func TestSuggestTypoFindsSingleEditCorrection(t *testing.T) {
	valid := []string{"create", "defineVars", "createTheme"}
	assert.Contains(t, SuggestTypo(valid, "creat"), "create")
	assert.Equal(t, "", SuggestTypo(valid, "completelyUnrelated"))
}
