package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/format"
)

const (
	messySource = "struct   Foo{a:u32,}\n"
	cleanSource = "struct Foo {\n    a: u32,\n}\n"
	badSource   = "struct Foo {\n    a: \"oops\n}\n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func baseOptions() FormatOptions {
	return FormatOptions{
		Extensions: []string{".rs"},
		Exclude:    []string{"target"},
		Jobs:       2,
	}
}

func TestFormatPathsRewritesFiles(t *testing.T) {
	dir := t.TempDir()
	messy := filepath.Join(dir, "src", "lib.rs")
	clean := filepath.Join(dir, "src", "clean.rs")
	writeFile(t, messy, messySource)
	writeFile(t, clean, cleanSource)

	results, err := FormatPaths(context.Background(), []string{dir}, baseOptions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, clean, results[0].Path)
	require.False(t, results[0].Changed)
	require.Equal(t, messy, results[1].Path)
	require.True(t, results[1].Changed)
	require.NoError(t, results[1].Err)

	require.Equal(t, cleanSource, readFile(t, messy))
	require.Equal(t, cleanSource, readFile(t, clean))
}

func TestFormatPathsCheckLeavesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rs")
	writeFile(t, path, messySource)

	opts := baseOptions()
	opts.Check = true
	results, err := FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Changed)
	require.Equal(t, messySource, readFile(t, path))
}

func TestFormatPathsStdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rs")
	writeFile(t, path, messySource)

	opts := baseOptions()
	opts.Stdout = true
	results, err := FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, cleanSource, string(results[0].Formatted))
	require.Equal(t, messySource, readFile(t, path))
}

func TestFormatPathsParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.rs")
	writeFile(t, path, badSource)

	results, err := FormatPaths(context.Background(), []string{dir}, baseOptions())
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	require.Error(t, r.Err)
	require.True(t, errors.Is(r.Err, format.ErrFormat))
	require.NotNil(t, r.Diagnostics)
	require.NotNil(t, r.FileSet)
	require.True(t, r.Diagnostics.HasErrors())
	require.Equal(t, diag.LexUnterminatedString, r.Diagnostics.Items()[0].Code)
	require.Equal(t, badSource, readFile(t, path))
}

func TestFormatPathsUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.rs")
	writeFile(t, path, "const X: u32 = 1;\n")

	results, err := FormatPaths(context.Background(), []string{path}, baseOptions())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, format.ErrFormat)
	require.Nil(t, results[0].Diagnostics)
}

func TestFormatPathsNoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"), "hello\n")

	_, err := FormatPaths(context.Background(), []string{dir}, baseOptions())
	require.ErrorIs(t, err, ErrNoSourceFiles)
}

func TestFormatPathsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FormatPaths(ctx, []string{t.TempDir()}, baseOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.rs"), "")
	writeFile(t, filepath.Join(dir, "a", "a.rs"), "")
	writeFile(t, filepath.Join(dir, "target", "gen.rs"), "")
	writeFile(t, filepath.Join(dir, "readme.md"), "")
	explicit := filepath.Join(dir, "readme.md")

	files, err := CollectSourceFiles(context.Background(), []string{dir, explicit, filepath.Join(dir, "b.rs")}, []string{".rs"}, []string{"target"})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a", "a.rs"),
		filepath.Join(dir, "b.rs"),
		explicit,
	}, files)
}

func TestCollectSourceFilesMissingPath(t *testing.T) {
	_, err := CollectSourceFiles(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, []string{".rs"}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatPathsUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.rs")
	writeFile(t, path, messySource)

	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)

	var logs bytes.Buffer
	opts := baseOptions()
	opts.Check = true
	opts.Cache = cache
	opts.Logger = log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	first, err := FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.False(t, first[0].Cached)
	require.True(t, first[0].Changed)

	second, err := FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.True(t, second[0].Cached)
	require.True(t, second[0].Changed)
	require.Equal(t, cleanSource, string(second[0].Formatted))

	require.Contains(t, logs.String(), "cache hit")
	require.Contains(t, logs.String(), "format finished")
}

func TestCheckPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.rs"), messySource)
	writeFile(t, filepath.Join(dir, "bad.rs"), badSource)

	results, err := CheckPaths(context.Background(), []string{dir}, baseOptions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, filepath.Join(dir, "bad.rs"), results[0].Path)
	require.False(t, results[0].OK)
	require.Equal(t, "fmt-check: initial parse has errors", results[0].Message)

	require.True(t, results[1].OK)
	require.Equal(t, "fmt-check: OK", results[1].Message)
	require.Equal(t, messySource, readFile(t, filepath.Join(dir, "ok.rs")))
}
