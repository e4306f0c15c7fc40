package severed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushAssetPathFlattensNonAlnum(t *testing.T) {
	path, err := pushAssetPath("components/button.css.ts")
	assert := assert.New(t)
	assert.NoError(err)
	assert.Regexp(`^[a-zA-Z0-9-]+\.severed\.css$`, path)
}

func TestPushAssetPathTrimsLeadingTrailingDashes(t *testing.T) {
	path, err := pushAssetPath("/button.css.ts/")
	assert.NoError(t, err)
	assert.False(t, len(path) > 0 && path[0] == '-')
}

func TestIsPushAssetRecognizesSeveredSuffix(t *testing.T) {
	assert.True(t, isPushAsset("components-button.severed.css"))
}

func TestIsPushAssetRejectsOtherSuffixes(t *testing.T) {
	assert.False(t, isPushAsset("components-button.ts"))
}
