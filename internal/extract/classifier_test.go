package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStaticSite(t *testing.T) {
	src := "const cls = css`color: red;`;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	require.Len(t, result.Sites, 1)

	site := result.Sites[0]
	assert.True(t, site.Static)
	assert.Equal(t, "color: red;", site.StaticValue)
	assert.False(t, result.Dynamic)
}

func TestClassifyDynamicSite(t *testing.T) {
	src := "import { brand } from './theme';\nconst cls = css`color: ${brand};`;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	require.Len(t, result.Sites, 1)
	assert.False(t, result.Sites[0].Static)
	assert.True(t, result.Dynamic)
	assert.Contains(t, result.Derivative, "export const __severed_css_0")
}

func TestClassifyMultipleSitesAreOrdered(t *testing.T) {
	src := "const a = css`color: red;`;\nconst b = css`color: blue;`;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	require.Len(t, result.Sites, 2)
	assert.Equal(t, 0, result.Sites[0].Index)
	assert.Equal(t, 1, result.Sites[1].Index)
	assert.True(t, result.Sites[0].Start < result.Sites[1].Start)
}

func TestClassifyShadowedCSSIdentifierIsStillMatched(t *testing.T) {
	// Recognition is purely textual: a locally shadowed `css` binding is
	// matched the same as the tag function.
	src := "function f(css) {\n  return css`not-a-tag`;\n}\n"

	result, err := Classify(src)
	require.NoError(t, err)
	require.Len(t, result.Sites, 1)
}

func TestClassifyNoSites(t *testing.T) {
	src := "const x = 1;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	assert.Empty(t, result.Sites)
	assert.False(t, result.Dynamic)
}

func TestClassifyStripsExportKeywordInDerivative(t *testing.T) {
	src := "export const brand = 'blue';\nconst cls = css`color: ${brand};`;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	assert.NotContains(t, result.Derivative, "export const brand")
	assert.Contains(t, result.Derivative, "const brand")
}

func TestClassifyExportDefaultIsStripped(t *testing.T) {
	src := "export default function widget() {}\nconst cls = css`color: ${1};`;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	assert.NotContains(t, result.Derivative, "export default")
}

func TestClassifyAnnotatesCallExpressionsAsPure(t *testing.T) {
	src := "const brand = computeBrand();\nconst cls = css`color: ${brand};`;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	assert.Contains(t, result.Derivative, "/* @__PURE__ */ computeBrand()")
}

func TestClassifyControlFlowKeywordsAreNotAnnotated(t *testing.T) {
	src := "if (true) {}\nconst cls = css`color: ${1};`;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	assert.NotContains(t, result.Derivative, "/* @__PURE__ */ if")
}

func TestClassifyHoistsNestedSiteBeforeEnclosingTopLevelStatement(t *testing.T) {
	src := "console.log(css`asdf`)\n{ const foo = () => { if (h) return css`background: red`; } }\n"

	result, err := Classify(src)
	require.NoError(t, err)
	require.Len(t, result.Sites, 2)

	idx0 := strings.Index(result.Derivative, "__severed_css_0")
	idxConsoleLog := strings.Index(result.Derivative, "console.log")
	idx1 := strings.Index(result.Derivative, "__severed_css_1")
	idxBlock := strings.Index(result.Derivative, "{ const foo")

	require.NotEqual(t, -1, idx0)
	require.NotEqual(t, -1, idxConsoleLog)
	require.NotEqual(t, -1, idx1)
	require.NotEqual(t, -1, idxBlock)
	assert.Less(t, idx0, idxConsoleLog, "site 0 must hoist before the console.log statement")
	assert.Less(t, idx1, idxBlock, "site 1 must hoist before its enclosing block statement, not inside it")
}

func TestClassifyStripsReExportsWithoutAffectingSites(t *testing.T) {
	src := "export * from './other';\nexport { x };\nconst cls = css`color: ${1};`;\n"

	result, err := Classify(src)
	require.NoError(t, err)
	require.Len(t, result.Sites, 1)
	assert.NotContains(t, result.Derivative, "export * from")
	assert.NotContains(t, result.Derivative, "export { x }")
}

func TestClassifyUnterminatedTemplateLiteralIsParseError(t *testing.T) {
	src := "const cls = css`color: red;"

	_, err := Classify(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}
