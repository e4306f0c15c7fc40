package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditLogApplySingleReplace(t *testing.T) {
	log := NewEditLog("const x = css`red`;")
	log.Replace(10, 18, `"severed-sentinel-0"`)

	out, err := log.Apply()
	require.NoError(t, err)
	assert.Equal(t, `const x = "severed-sentinel-0";`, out)
}

func TestEditLogApplyOutOfOrderEdits(t *testing.T) {
	log := NewEditLog("abcdef")
	log.Replace(4, 6, "Z")
	log.Replace(0, 2, "A")

	out, err := log.Apply()
	require.NoError(t, err)
	assert.Equal(t, "AcdZ", out)
}

func TestEditLogInsertIsZeroWidth(t *testing.T) {
	log := NewEditLog("body")
	log.Insert(0, "import x;\n")

	out, err := log.Apply()
	require.NoError(t, err)
	assert.Equal(t, "import x;\nbody", out)
}

func TestEditLogStableOrderForZeroWidthEditsAtSamePosition(t *testing.T) {
	log := NewEditLog("X")
	log.Insert(0, "first")
	log.Insert(0, "second")

	out, err := log.Apply()
	require.NoError(t, err)
	assert.Equal(t, "firstsecondX", out)
}

func TestEditLogApplyOverlappingEditsError(t *testing.T) {
	log := NewEditLog("abcdef")
	log.Replace(0, 4, "X")
	log.Replace(2, 6, "Y")

	_, err := log.Apply()
	assert.Error(t, err)
}

func TestEditLogApplyNoEditsReturnsBase(t *testing.T) {
	log := NewEditLog("unchanged")
	out, err := log.Apply()
	require.NoError(t, err)
	assert.Equal(t, "unchanged", out)
}

func TestEditLogEditsSortedByStart(t *testing.T) {
	log := NewEditLog("abcdef")
	log.Replace(4, 5, "e")
	log.Replace(0, 1, "a")

	edits := log.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, 0, edits[0].Start)
	assert.Equal(t, 4, edits[1].Start)
}

func TestEditLogBaseReturnsOriginal(t *testing.T) {
	log := NewEditLog("original text")
	log.Replace(0, 8, "changed")
	assert.Equal(t, "original text", log.Base())
}
