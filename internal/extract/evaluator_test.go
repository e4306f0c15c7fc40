package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateHarvestsSeveredExports(t *testing.T) {
	script := `module.exports.__severed_css_0 = "color: red;";`

	values, err := Evaluate(script, "a.ts", nil)
	require.NoError(t, err)
	assert.Equal(t, "color: red;", values[0])
}

func TestEvaluateHarvestsMultipleIndices(t *testing.T) {
	script := `
		module.exports.__severed_css_0 = "color: red;";
		module.exports.__severed_css_1 = "color: blue;";
	`

	values, err := Evaluate(script, "a.ts", nil)
	require.NoError(t, err)
	assert.Equal(t, "color: red;", values[0])
	assert.Equal(t, "color: blue;", values[1])
}

func TestEvaluateIgnoresNonSeveredExports(t *testing.T) {
	script := `module.exports.other = "ignored"; module.exports.__severed_css_0 = "color: red;";`

	values, err := Evaluate(script, "a.ts", nil)
	require.NoError(t, err)
	assert.Len(t, values, 1)
	assert.Equal(t, "color: red;", values[0])
}

func TestEvaluateNonStringValueIsErrNotString(t *testing.T) {
	script := `module.exports.__severed_css_0 = 42;`

	_, err := Evaluate(script, "a.ts", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotString)
}

func TestEvaluateSyntaxErrorFails(t *testing.T) {
	script := `this is not valid javascript (((`

	_, err := Evaluate(script, "a.ts", nil)
	assert.Error(t, err)
}

func TestEvaluateRequireBridgeResolvesBareSpecifier(t *testing.T) {
	resolve := func(_ context.Context, id, importer string) (string, []byte, bool, error) {
		if id == "./theme" {
			return "theme.ts", []byte(`module.exports.brand = "blue";`), false, nil
		}
		return "", nil, false, assert.AnError
	}

	script := `
		var theme = require("./theme");
		module.exports.__severed_css_0 = "color: " + theme.brand + ";";
	`

	values, err := Evaluate(script, "a.ts", resolve)
	require.NoError(t, err)
	assert.Equal(t, "color: blue;", values[0])
}

func TestEvaluateRequireWithoutResolverFails(t *testing.T) {
	script := `
		require("./theme");
		module.exports.__severed_css_0 = "color: red;";
	`

	_, err := Evaluate(script, "a.ts", nil)
	assert.Error(t, err)
}
