package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassNameForIsDeterministic(t *testing.T) {
	a := ClassNameFor("color: red;")
	b := ClassNameFor("color: red;")
	assert.Equal(t, a, b)
	assert.Regexp(t, `^severed-[0-9a-f]{7}$`, a)
}

func TestClassNameForNormalizesWhitespace(t *testing.T) {
	a := ClassNameFor("background:red;")
	b := ClassNameFor("background: red;")
	assert.Equal(t, a, b)
}

func TestClassNameForDistinctCSSDiffers(t *testing.T) {
	a := ClassNameFor("color: red;")
	b := ClassNameFor("color: blue;")
	assert.NotEqual(t, a, b)
}

func TestFragmentWrapsSelector(t *testing.T) {
	got := Fragment("severed-abc1234", "color: red;")
	assert.Equal(t, ".severed-abc1234 {\ncolor: red;\n}", got)
}

func TestFragmentTrimsSurroundingWhitespace(t *testing.T) {
	got := Fragment("severed-abc1234", "\n  color: red;\n  ")
	assert.Equal(t, ".severed-abc1234 {\ncolor: red;\n}", got)
}

func TestJoinFragmentsSeparatesWithTwoBlankLines(t *testing.T) {
	got := JoinFragments([]string{".a {\nx\n}", ".b {\ny\n}"})
	assert.Equal(t, ".a {\nx\n}\n\n\n.b {\ny\n}", got)
}

func TestJoinFragmentsSingleFragment(t *testing.T) {
	got := JoinFragments([]string{".a {\nx\n}"})
	assert.Equal(t, ".a {\nx\n}", got)
}

func TestJoinFragmentsEmpty(t *testing.T) {
	got := JoinFragments(nil)
	assert.Equal(t, "", got)
}
