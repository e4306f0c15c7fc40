package main

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yacobolo/severed/internal/extract"
)

// localMode mirrors package severed's Mode for the standalone CLI, which
// drives internal/extract.Coordinator directly rather than through a host
// plugin: there is no host bundler here to call ResolveID/Load against, so
// pull mode simply means "don't write a sibling CSS file per source file":
// the rewritten source imports a virtual id and the CSS is not written.
type localMode int

const (
	ModePullLocal localMode = iota
	ModePushLocal
)

var nonAlnumRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// pullPlaceholderHash fills the cache-buster slot in the virtual import
// AssetFor returns, before that file's CSS is fully known (AssetFor is
// called mid-Transform, coord.Transform's own return value is the first
// point result.CSS exists). runOneFile patches it with the real hash once
// Transform returns, mirroring package severed's Plugin.Transform /
// pullVirtualIDFor placeholder-then-patch technique.
const pullPlaceholderHash = "00000"

// runOneFile drives one file through coord.Transform using a disk-backed
// Resolver and an Emit that hashes CSS via extract.ClassNameFor — the
// CLI's own minimal stand-in for the CSS post-processing hook that in a
// real host would autoprefix and namespace (pretty-printing and
// namespacing are left to that downstream tooling).
func runOneFile(ctx context.Context, mode localMode, path, src string, cfg runConfig) (*extract.Result, error) {
	coord := extract.NewCoordinator()
	opts := extract.Options{
		Resolve: diskResolver,
		Emit: func(_ context.Context, css string) (string, error) {
			return extract.ClassNameFor(css), nil
		},
		AssetFor: assetNamerFor(mode, path),
	}
	result, err := coord.Transform(ctx, path, src, opts)
	if err != nil || result == nil || mode != ModePullLocal {
		return result, err
	}

	placeholder := fmt.Sprintf("?severed=%s&lang.css", pullPlaceholderHash)
	final := fmt.Sprintf("?severed=%s&lang.css", pullAssetHash(result.CSS))
	result.Code = strings.Replace(result.Code, placeholder, final, 1)
	return result, nil
}

func assetNamerFor(mode localMode, path string) extract.AssetNamer {
	return func(sourceID string) (string, error) {
		if mode == ModePushLocal {
			return pushAssetBasename(path), nil
		}
		return fmt.Sprintf("%s?severed=%s&lang.css", sourceID, pullPlaceholderHash), nil
	}
}

// pullAssetHash computes the pull-mode cache-busting hash over a file's
// accumulated CSS: first 5 hex characters of SHA-512, so the written-out
// import invalidates whenever the CSS content changes — the same grammar
// package severed's pullVirtualIDFor uses for host-bundler pull mode.
func pullAssetHash(css string) string {
	sum := sha512.Sum512([]byte(css))
	return hex.EncodeToString(sum[:])[:5]
}

// pushAssetBasename implements the push-mode asset path grammar at
// file-local granularity: the CLI writes the CSS asset beside its source
// file, so the import specifier is just that file's flattened basename
// rather than a full cwd-relative path (a deliberate simplification for
// the single-directory-tree CLI use case; package severed's host adapter
// uses the full grammar for real host bundlers — see pushmode.go).
func pushAssetBasename(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	flattened := strings.Trim(nonAlnumRun.ReplaceAllString(base, "-"), "-")
	return flattened + ".severed.css"
}
