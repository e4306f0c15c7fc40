package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestExpandSourceFilesMatchesIncludePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "button.css.ts"), "const cls = css`color: red;`;\n")
	writeFile(t, filepath.Join(dir, "readme.md"), "not a source file")

	files, err := expandSourceFiles(dir, []string{"**/*.css.ts"}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "button.css.ts")
}

func TestExpandSourceFilesAppliesExcludePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "button.css.ts"), "const cls = css`color: red;`;\n")
	writeFile(t, filepath.Join(dir, "node_modules", "dep.css.ts"), "const cls = css`color: blue;`;\n")

	files, err := expandSourceFiles(dir, []string{"**/*.css.ts"}, []string{"node_modules/**"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "button.css.ts")
}

func TestExpandSourceFilesDeduplicatesOverlappingIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "button.css.ts"), "const cls = css`color: red;`;\n")

	files, err := expandSourceFiles(dir, []string{"**/*.css.ts", "button.css.ts"}, nil)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestExpandSourceFilesNoMatches(t *testing.T) {
	dir := t.TempDir()
	files, err := expandSourceFiles(dir, []string{"**/*.css.ts"}, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestShouldSkipFileAbsolutePathNeverGitignored(t *testing.T) {
	assert.False(t, shouldSkipFile("/abs/path/file.ts"))
}
