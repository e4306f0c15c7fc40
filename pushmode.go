package severed

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// pushAssetPath implements the push-mode asset path grammar:
// <flattened-source-id>.severed.css, where flattening replaces every run
// of non-alphanumerics in the source id's process-cwd-relative form with
// a single `-`.
func pushAssetPath(sourceID string) (string, error) {
	rel := sourceID
	if cwd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(cwd, sourceID); err == nil {
			rel = r
		}
	}
	flattened := strings.Trim(nonAlnumRun.ReplaceAllString(rel, "-"), "-")
	return flattened + ".severed.css", nil
}

// isPushAsset reports whether id is a push-mode asset path, for
// Plugin.ResolveID's external marking.
func isPushAsset(id string) bool {
	return strings.HasSuffix(id, ".severed.css")
}
