package severed

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
)

// pullQueryTag and pullSuffix make up the pull-mode virtual-id grammar:
// <source-id>?severed=<5-hex-chars>&lang.css. lang.css is a hint for
// hosts that route loaders by pseudo-extension rather than by namespace.
const (
	pullQueryTag = "?severed="
	pullSuffix   = "&lang.css"
)

// pullVirtualID satisfies extract.AssetNamer's (sourceID string) (string,
// error) contract. It is used as the AssetFor callback passed into
// Coordinator.Transform, which is called before that file's CSS text is
// fully accumulated — so this returns a placeholder hash. Plugin.Transform
// recomputes the real, content-addressed id with pullVirtualIDFor once
// Result.CSS is known, and patches the one placeholder occurrence in the
// rewritten source. This keeps AssetNamer's single-argument signature (the
// contract extract.Options already defines) intact rather than growing it
// a CSS parameter only pull mode needs.
func pullVirtualID(sourceID string) (string, error) {
	return sourceID + pullQueryTag + "00000" + pullSuffix, nil
}

// pullVirtualIDFor computes the final pull-mode virtual id: a SHA-512
// cache-buster hash over the file's accumulated CSS, so any downstream
// cache keyed by id invalidates whenever the CSS content changes.
func pullVirtualIDFor(sourceID, css string) string {
	sum := sha512.Sum512([]byte(css))
	hash := hex.EncodeToString(sum[:])[:5]
	return fmt.Sprintf("%s%s%s%s", sourceID, pullQueryTag, hash, pullSuffix)
}

// parsePullVirtualID recognizes a pull-mode virtual id and recovers the
// source id it was derived from, for ResolveID/Load.
func parsePullVirtualID(id string) (sourceID string, ok bool) {
	idx := strings.Index(id, pullQueryTag)
	if idx < 0 || !strings.HasSuffix(id, pullSuffix) {
		return "", false
	}
	return id[:idx], true
}
