package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicss/atomicss/internal/stylesheet"
	"github.com/atomicss/atomicss/internal/value"
)

var noNameOpts = NameOptions{}

func TestDashCaseZIndex(t *testing.T) {
	assert.Equal(t, "z-index", DashCase("zIndex"))
	assert.Equal(t, "margin-top", DashCase("marginTop"))
	assert.Equal(t, "-webkit-mask", DashCase("WebkitMask"))
	assert.Equal(t, "--my-var", DashCase("--my-var"))
}

func TestCompileMarginPxSuffix(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "marginTop", Value: value.Num(4)})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "margin-top", rules[0].Property)
	assert.Equal(t, "4px", rules[0].Value)
	assert.NotEmpty(t, rules[0].ClassName)
}

func TestCompileZIndexIsUnitless(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "zIndex", Value: value.Num(2)})
	require.NoError(t, err)
	assert.Equal(t, "2", rules[0].Value)
}

func TestCompileOpacityStripsLeadingZero(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "opacity", Value: value.Str("0.5")})
	require.NoError(t, err)
	assert.Equal(t, ".5", rules[0].Value)
}

func TestCompileGridTemplateRowsStripsZeroFr(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "gridTemplateRows", Value: value.Str("0fr 1fr")})
	require.NoError(t, err)
	assert.Equal(t, "0 1fr", rules[0].Value)
}

func TestCompileFlexBasisPreservesZeroPercent(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "flexBasis", Value: value.Str("0%")})
	require.NoError(t, err)
	assert.Equal(t, "0%", rules[0].Value, "0%% must not collapse to unitless 0 for flex-basis")
}

func TestCompileFallbackArrayHeightTwoValues(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleSet{Items: []stylesheet.PreRule{
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("100vh")},
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("-webkit-fill-available")},
	}})
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.NotEqual(t, rules[0].ClassName, rules[1].ClassName)
}

func TestCompileFallbackArrayMergesVarChain(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleSet{Items: []stylesheet.PreRule{
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("500")},
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("var(--h)")},
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("100dvh")},
	}})
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "var(--h,500px)", rules[0].Value)
	assert.Equal(t, "100dvh", rules[1].Value)
	assert.NotEqual(t, rules[0].ClassName, rules[1].ClassName)
}

func TestCompileFallbackArrayMergesNestedVarChain(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleSet{Items: []stylesheet.PreRule{
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("500")},
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("var(--x)")},
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("var(--y)")},
		stylesheet.PreRuleOne{Property: "height", Value: value.Str("100dvh")},
	}})
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "var(--y,var(--x,500px))", rules[0].Value)
	assert.Equal(t, "100dvh", rules[1].Value)
}

func TestCompileMarginLeftMirrorsToRight(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "marginLeft", Value: value.Num(4)})
	require.NoError(t, err)
	assert.Equal(t, "margin-right", rules[0].RTLProperty)
	assert.Equal(t, "4px", rules[0].RTLValue)
}

func TestCompileTextAlignMirrorsValue(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "textAlign", Value: value.Str("left")})
	require.NoError(t, err)
	assert.Equal(t, "text-align", rules[0].RTLProperty)
	assert.Equal(t, "right", rules[0].RTLValue)
}

func TestCompileSameDeclarationIsDeterministic(t *testing.T) {
	r1, err1 := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "color", Value: value.Str("red")})
	r2, err2 := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "color", Value: value.Str("red")})
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1[0].ClassName, r2[0].ClassName)
}

func TestCompileReadableNameAppendsPropertySuffix(t *testing.T) {
	plain, err := CompileOne("x", noNameOpts, stylesheet.PreRuleOne{Property: "marginTop", Value: value.Num(4)})
	require.NoError(t, err)
	readable, err := CompileOne("x", NameOptions{Readable: true}, stylesheet.PreRuleOne{Property: "marginTop", Value: value.Num(4)})
	require.NoError(t, err)
	assert.NotEqual(t, plain[0].ClassName, readable[0].ClassName)
	assert.Contains(t, readable[0].ClassName, "-margin-top")
}

func TestCompileIncludedRefProducesNoRules(t *testing.T) {
	rules, err := CompileOne("x", noNameOpts, stylesheet.PreRuleIncludedRef{ClassNames: []string{"x1"}})
	require.NoError(t, err)
	assert.Nil(t, rules)
}
