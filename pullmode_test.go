package severed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPullVirtualIDUsesPlaceholderHash(t *testing.T) {
	id, err := pullVirtualID("a.ts")
	assert.NoError(t, err)
	assert.Equal(t, "a.ts?severed=00000&lang.css", id)
}

func TestPullVirtualIDForHashesCSSContent(t *testing.T) {
	id := pullVirtualIDFor("a.ts", ".severed-abc {\ncolor:red;\n}")
	assert.Contains(t, id, "a.ts?severed=")
	assert.Contains(t, id, "&lang.css")
	assert.NotContains(t, id, "00000")
}

func TestPullVirtualIDForIsDeterministic(t *testing.T) {
	a := pullVirtualIDFor("a.ts", "css-text")
	b := pullVirtualIDFor("a.ts", "css-text")
	assert.Equal(t, a, b)
}

func TestParsePullVirtualIDRoundTrips(t *testing.T) {
	id := pullVirtualIDFor("src/button.ts", "css-text")
	sourceID, ok := parsePullVirtualID(id)
	assert.True(t, ok)
	assert.Equal(t, "src/button.ts", sourceID)
}

func TestParsePullVirtualIDRejectsUnrelatedID(t *testing.T) {
	_, ok := parsePullVirtualID("src/button.ts")
	assert.False(t, ok)
}
