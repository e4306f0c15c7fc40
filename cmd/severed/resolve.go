package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// diskResolver implements extract.Resolver for the standalone CLI, where
// there is no host bundler to delegate to — the CLI is its own minimal
// host. Relative and absolute specifiers are read straight off disk,
// trying the exact path first and then .ts, .tsx, .js and .jsx appended;
// anything else (bare package specifiers, CSS imports) is reported
// external so the sub-bundler driver leaves it as a runtime require
// rather than trying to inline it.
var sourceExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

func diskResolver(_ context.Context, id, importer string) (resolvedID string, contents []byte, external bool, err error) {
	if strings.HasSuffix(strings.ToLower(id), ".css") {
		return id, nil, true, nil
	}
	if !strings.HasPrefix(id, ".") && !filepath.IsAbs(id) {
		return id, nil, true, nil
	}

	base := id
	if !filepath.IsAbs(base) {
		base = filepath.Join(filepath.Dir(importer), id)
	}

	candidates := []string{base}
	for _, ext := range sourceExtensions {
		candidates = append(candidates, base+ext)
	}

	for _, candidate := range candidates {
		info, statErr := os.Stat(candidate)
		if statErr != nil || info.IsDir() {
			continue
		}
		data, readErr := os.ReadFile(candidate)
		if readErr != nil {
			return "", nil, false, readErr
		}
		return candidate, data, false, nil
	}

	// Unresolvable relative import: treat as external rather than failing
	// the whole file.
	return id, nil, true, nil
}
