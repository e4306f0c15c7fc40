package main

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// gitignore caching: thread-safe, gracefully degrades when no .gitignore
// is present.
var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

func shouldSkipFile(path string) bool {
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// expandSourceFiles walks root for files matching any of include, skipping
// anything matching exclude or .gitignore, using a doublestar + gitignore
// two-layer filter over JS/TS/TSX source files.
func expandSourceFiles(root string, include, exclude []string) ([]string, error) {
	excluded := func(rel string) (bool, error) {
		for _, pattern := range exclude {
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}

	var files []string
	seen := make(map[string]bool)

	for _, pattern := range include {
		full := filepath.Join(root, pattern)
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			rel, err := filepath.Rel(root, match)
			if err != nil {
				rel = match
			}
			skip, err := excluded(rel)
			if err != nil {
				return nil, err
			}
			if skip || shouldSkipFile(match) {
				continue
			}
			files = append(files, match)
			seen[match] = true
		}
	}

	return files, nil
}
