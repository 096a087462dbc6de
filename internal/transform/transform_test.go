package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicss/atomicss/internal/config"
	"github.com/atomicss/atomicss/internal/evaluator"
	"github.com/atomicss/atomicss/internal/namegen"
	"github.com/atomicss/atomicss/internal/state"
	"github.com/atomicss/atomicss/internal/value"
)

func newCtx() *Context {
	ev := evaluator.New(evaluator.NewEnv(), evaluator.NewFnMap())
	return NewContext(ev, namegen.NewGenerator(), state.New(), config.Default())
}

func mustMap(pairs ...any) *value.OrderedMap {
	m := value.NewOrderedMap()
	for i := 0; i < len(pairs); i += 2 {
		m.Set(value.Str(pairs[i].(string)), pairs[i+1].(value.Value))
	}
	return m
}

func TestCreateCompilesMarginAndZIndex(t *testing.T) {
	c := newCtx()
	root := mustMap("marginTop", value.Num(4), "zIndex", value.Num(2))
	ns := mustMap("root", value.Map(root))

	out, ok := c.Create([]value.Value{value.Map(ns)})
	require.True(t, ok)
	m, _ := out.Map()
	cssMarker, ok := m.GetStr("$$css")
	require.True(t, ok)
	b, _ := cssMarker.Bool()
	assert.True(t, b)

	rootVal, _ := m.GetStr("root")
	rootMap, ok := rootVal.Map()
	require.True(t, ok)
	marginTop, ok := rootMap.GetStr("marginTop")
	require.True(t, ok)
	marginTopStr, _ := marginTop.Str()
	assert.NotEmpty(t, marginTopStr)
	zIndex, ok := rootMap.GetStr("zIndex")
	require.True(t, ok)
	zIndexStr, _ := zIndex.Str()
	assert.NotEmpty(t, zIndexStr)
	assert.NotEqual(t, marginTopStr, zIndexStr)

	require.Len(t, c.State.Rules(), 2)
	byProp := map[string]string{}
	for _, r := range c.State.Rules() {
		byProp[r.Property] = r.Value
	}
	assert.Equal(t, "4px", byProp["margin-top"])
	assert.Equal(t, "2", byProp["z-index"])
}

func TestCreateFallbackArrayHeightTwoValues(t *testing.T) {
	c := newCtx()
	twoVal := value.Vec([]value.Value{value.Str("100vh"), value.Str("-webkit-fill-available")})
	ns := mustMap("root", value.Map(mustMap("height", twoVal)))

	_, ok := c.Create([]value.Value{value.Map(ns)})
	require.True(t, ok)

	count := map[string]int{}
	for _, r := range c.State.Rules() {
		count[r.Property]++
	}
	assert.Equal(t, 2, count["height"])
}

func TestCreateMarginShorthandExpandsToFourLonghands(t *testing.T) {
	c := newCtx()
	ns := mustMap("root", value.Map(mustMap("margin", value.Str("1px 2px 3px 4px"))))

	_, ok := c.Create([]value.Value{value.Map(ns)})
	require.True(t, ok)

	byProp := map[string]string{}
	for _, r := range c.State.Rules() {
		byProp[r.Property] = r.Value
	}
	assert.Equal(t, "1px", byProp["margin-top"])
	assert.Equal(t, "2px", byProp["margin-right"])
	assert.Equal(t, "3px", byProp["margin-bottom"])
	assert.Equal(t, "4px", byProp["margin-left"])
}

func TestDefineVarsAndCreateThemeRoundTrip(t *testing.T) {
	c := newCtx()
	c.FileID = "colors.stylex.js"

	defs := mustMap("bgColor", value.Str("white"))
	varsOut, ok := c.DefineVars([]value.Value{value.Map(defs)})
	require.True(t, ok)

	require.Len(t, c.State.RootVars(), 1)
	rootVar := c.State.RootVars()[0]
	assert.Equal(t, "white", rootVar.Value)

	overrides := mustMap("bgColor", value.Str("black"))
	themeOut, ok := c.CreateTheme([]value.Value{varsOut, value.Map(overrides)})
	require.True(t, ok)

	themeMap, ok := themeOut.Map()
	require.True(t, ok)
	cssMarker, ok := themeMap.GetStr("$$css")
	require.True(t, ok)
	b, _ := cssMarker.Bool()
	assert.True(t, b)
	themeClassVal, ok := themeMap.GetStr("themeClassName")
	require.True(t, ok)
	themeClass, _ := themeClassVal.Str()
	require.NotEmpty(t, themeClass)

	require.Len(t, c.State.ThemeOverrides(), 1)
	override := c.State.ThemeOverrides()[0]
	assert.Equal(t, rootVar.Name, override.Name)
	assert.Equal(t, "black", override.Value)
	assert.Equal(t, themeClass, override.ClassName)
}

func TestKeyframesRegistersBlockAndReturnsName(t *testing.T) {
	c := newCtx()
	frames := mustMap(
		"from", value.Map(mustMap("opacity", value.Num(0))),
		"to", value.Map(mustMap("opacity", value.Num(1))),
	)
	out, ok := c.Keyframes([]value.Value{value.Map(frames)})
	require.True(t, ok)
	name, _ := out.Str()
	assert.NotEmpty(t, name)
	require.Len(t, c.State.KeyframesBlocks(), 1)
	assert.Equal(t, name, c.State.KeyframesBlocks()[0].Name)
}

func TestIncludeMergesClassNamesFromCreate(t *testing.T) {
	c := newCtx()
	ns := mustMap("base", value.Map(mustMap("color", value.Str("red"))))
	created, ok := c.Create([]value.Value{value.Map(ns)})
	require.True(t, ok)
	m, _ := created.Map()
	base, _ := m.GetStr("base")

	merged, ok := c.Include([]value.Value{base})
	require.True(t, ok)
	included, _ := merged.IncludedStyles()
	baseClassNames, ok := styleClassNames(base)
	require.True(t, ok)
	assert.Equal(t, baseClassNames, included.ClassNames)
}

func TestPropsJoinsClassNamesAndSkipsFalsy(t *testing.T) {
	c := newCtx()
	ns := mustMap("base", value.Map(mustMap("color", value.Str("red"))))
	created, _ := c.Create([]value.Value{value.Map(ns)})
	m, _ := created.Map()
	base, _ := m.GetStr("base")

	out, ok := c.Props([]value.Value{base, value.Bool(false), value.Null()})
	require.True(t, ok)
	outMap, _ := out.Map()
	className, _ := outMap.GetStr("className")
	s, _ := className.Str()
	assert.NotEmpty(t, s)
}

func TestCreateRejectsConditionalStylesWhenGenConditionalClassesOff(t *testing.T) {
	ev := evaluator.New(evaluator.NewEnv(), evaluator.NewFnMap())
	opts := config.Default()
	opts.GenConditionalClasses = false
	c := NewContext(ev, namegen.NewGenerator(), state.New(), opts)

	hover := mustMap(":hover", value.Str("blue"), "default", value.Str("red"))
	ns := mustMap("root", value.Map(mustMap("color", value.Map(hover))))

	_, ok := c.Create([]value.Value{value.Map(ns)})
	assert.False(t, ok)
}

func TestCreateAllowsConditionalStylesWhenGenConditionalClassesOn(t *testing.T) {
	ev := evaluator.New(evaluator.NewEnv(), evaluator.NewFnMap())
	opts := config.Default()
	opts.GenConditionalClasses = true
	c := NewContext(ev, namegen.NewGenerator(), state.New(), opts)

	hover := mustMap(":hover", value.Str("blue"), "default", value.Str("red"))
	ns := mustMap("root", value.Map(mustMap("color", value.Map(hover))))

	_, ok := c.Create([]value.Value{value.Map(ns)})
	assert.True(t, ok)
	assert.Len(t, c.State.Rules(), 2)
}

func TestDefineVarsUsesPredefinedCSSVariableName(t *testing.T) {
	ev := evaluator.New(evaluator.NewEnv(), evaluator.NewFnMap())
	opts := config.Default()
	opts.DefinedStylexCSSVariables = map[string]string{"bgColor": "shared-bg"}
	c := NewContext(ev, namegen.NewGenerator(), state.New(), opts)
	c.FileID = "colors.stylex.js"

	defs := mustMap("bgColor", value.Str("white"))
	_, ok := c.DefineVars([]value.Value{value.Map(defs)})
	require.True(t, ok)

	require.Len(t, c.State.RootVars(), 1)
	assert.Equal(t, "--shared-bg", c.State.RootVars()[0].Name)
}

func TestDefineVarsRejectsNonThemeFileWhenResolutionConfigured(t *testing.T) {
	ev := evaluator.New(evaluator.NewEnv(), evaluator.NewFnMap())
	c := NewContext(ev, namegen.NewGenerator(), state.New(), config.Default())
	c.FileID = "colors.js"

	defs := mustMap("bgColor", value.Str("white"))
	_, ok := c.DefineVars([]value.Value{value.Map(defs)})
	assert.False(t, ok)
}

func TestCreateDevModeAppendsReadableSuffix(t *testing.T) {
	ev := evaluator.New(evaluator.NewEnv(), evaluator.NewFnMap())
	opts := config.Default()
	opts.Dev = true
	c := NewContext(ev, namegen.NewGenerator(), state.New(), opts)

	ns := mustMap("root", value.Map(mustMap("color", value.Str("red"))))
	_, ok := c.Create([]value.Value{value.Map(ns)})
	require.True(t, ok)
	require.Len(t, c.State.Rules(), 1)
	assert.Contains(t, c.State.Rules()[0].ClassName, "-color")
}

func TestFirstThatWorksRequiresAtLeastTwoScalars(t *testing.T) {
	c := newCtx()
	_, ok := c.FirstThatWorks([]value.Value{value.Str("sticky")})
	assert.False(t, ok)

	out, ok := c.FirstThatWorks([]value.Value{value.Str("sticky"), value.Str("fixed")})
	require.True(t, ok)
	items, _ := out.Vec()
	assert.Len(t, items, 2)
}
