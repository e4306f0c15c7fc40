package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSourceMapIsValidV3JSON(t *testing.T) {
	log := NewEditLog("const cls = css`color: red;`;\n")
	log.Replace(12, 28, `"severed-abc1234"`)

	raw, err := BuildSourceMap(log, "a.ts")
	require.NoError(t, err)

	var doc struct {
		Version        int      `json:"version"`
		Sources        []string `json:"sources"`
		SourcesContent []string `json:"sourcesContent"`
		Mappings       string   `json:"mappings"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, 3, doc.Version)
	assert.Equal(t, []string{"a.ts"}, doc.Sources)
	assert.Equal(t, []string{"const cls = css`color: red;`;\n"}, doc.SourcesContent)
	assert.NotEmpty(t, doc.Mappings)
}

func TestBuildSourceMapNoEditsStillProducesMappings(t *testing.T) {
	log := NewEditLog("unchanged text")

	raw, err := BuildSourceMap(log, "a.ts")
	require.NoError(t, err)
	assert.Contains(t, raw, `"version":3`)
	assert.Contains(t, raw, `"mappings":"AAAA"`)
}

func TestEncodeVLQEncodesSmallValues(t *testing.T) {
	want := map[int]string{0: "A", 1: "C", -1: "D", 15: "e", -15: "f", 1000: "w+B", -1000: "x+B"}
	for n, encoded := range want {
		assert.Equal(t, encoded, encodeVLQ(n))
	}
}

func TestLineColAtStartOfFile(t *testing.T) {
	line, col := lineCol("abc\ndef", 0)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)
}

func TestLineColAfterNewline(t *testing.T) {
	line, col := lineCol("abc\ndef", 5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}
