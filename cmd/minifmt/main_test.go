package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	messySource = "struct   Foo{a:u32,}\n"
	cleanSource = "struct Foo {\n    a: u32,\n}\n"
)

// runCLI executes the command tree inside a fresh working directory with
// an isolated cache location.
func runCLI(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "cache"))
	var out, errOut bytes.Buffer
	err = run(context.Background(), append([]string{"--color", "off"}, args...), &out, &errOut)
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFmtRewrites(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib.rs"), messySource)

	stdout, _, err := runCLI(t, dir, "fmt", ".")
	require.NoError(t, err)
	require.Equal(t, "reformatted lib.rs\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "lib.rs"))
	require.NoError(t, err)
	require.Equal(t, cleanSource, string(data))
}

func TestFmtCheckListsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.rs"), messySource)
	writeFile(t, filepath.Join(dir, "b.rs"), cleanSource)

	stdout, _, err := runCLI(t, dir, "fmt", "--check", ".")
	require.ErrorIs(t, err, errFmtChangesPending)
	require.Equal(t, "a.rs\n", stdout)
}

func TestFmtStdout(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.rs"), messySource)

	stdout, _, err := runCLI(t, dir, "fmt", "--stdout", "--indent-width", "2", "a.rs")
	require.NoError(t, err)
	require.Equal(t, "struct Foo {\n  a: u32,\n}\n", stdout)
}

func TestFmtRejectsFlagCombinations(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCLI(t, dir, "fmt", "--stdout", "--check", ".")
	require.ErrorContains(t, err, "--stdout cannot be used with --check")

	_, _, err = runCLI(t, dir, "fmt", "--format", "xml", ".")
	require.ErrorContains(t, err, "unsupported output format")
}

func TestFmtParseErrorShowsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.rs"), "struct Foo {\n    a: \"oops\n}\n")

	_, stderr, err := runCLI(t, dir, "fmt", "bad.rs")
	require.ErrorIs(t, err, errFmtFailed)
	require.Contains(t, stderr, "bad.rs:2:8: ERROR LEX1002: unterminated string literal")
	require.Contains(t, stderr, "^")
	require.Contains(t, stderr, "fmt: bad.rs:")
}

func TestFmtJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.rs"), messySource)
	writeFile(t, filepath.Join(dir, "bad.rs"), "fn f( {}\n")

	stdout, _, err := runCLI(t, dir, "fmt", "--check", "--format", "json", ".")
	require.ErrorIs(t, err, errFmtFailed)

	var payload []fmtJSONResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Len(t, payload, 2)
	require.Equal(t, "a.rs", payload[0].Path)
	require.True(t, payload[0].Changed)
	require.True(t, payload[0].CheckRun)
	require.Equal(t, "bad.rs", payload[1].Path)
	require.NotEmpty(t, payload[1].Error)
	require.NotNil(t, payload[1].Diagnostics)
	require.Positive(t, payload[1].Diagnostics.Count)
}

func TestFmtUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "minifmt.toml"), "[format]\nuse_tabs = true\n\n[files]\nextensions = [\".rsx\"]\n")
	writeFile(t, filepath.Join(dir, "src", "a.rsx"), messySource)
	writeFile(t, filepath.Join(dir, "src", "b.rs"), messySource)

	stdout, _, err := runCLI(t, filepath.Join(dir, "src"), "fmt", "--no-cache", ".")
	require.NoError(t, err)
	require.Equal(t, "reformatted a.rsx\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "src", "a.rsx"))
	require.NoError(t, err)
	require.Equal(t, "struct Foo {\n\ta: u32,\n}\n", string(data))
}

func TestFmtBadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "minifmt.toml"), "[format]\nindent = 2\n")
	writeFile(t, filepath.Join(dir, "a.rs"), messySource)

	_, _, err := runCLI(t, dir, "fmt", ".")
	require.ErrorContains(t, err, "unknown keys")
}

func TestFmtVerboseLogs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.rs"), cleanSource)

	_, stderr, err := runCLI(t, dir, "fmt", "-v", ".")
	require.NoError(t, err)
	require.Contains(t, stderr, "unchanged")
	require.Contains(t, stderr, "format finished")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.rs"), messySource)

	stdout, _, err := runCLI(t, dir, "check", ".")
	require.NoError(t, err)
	require.Equal(t, "checked 1 file(s), 0 failed\n", stdout)

	writeFile(t, filepath.Join(dir, "b.rs"), "const X: u8 = 1;\n")
	stdout, _, err = runCLI(t, dir, "check", ".")
	require.ErrorIs(t, err, errCheckFailed)
	require.Contains(t, stdout, "b.rs: fmt-check: formatter failed:")
}

func TestVersionCommand(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := runCLI(t, dir, "version", "--full")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "minifmt 0.1.0-dev\n"), stdout)
	require.Contains(t, stdout, "commit: unknown")

	stdout, _, err = runCLI(t, dir, "version", "--format", "json")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "minifmt", payload.Tool)
	require.Empty(t, payload.GitCommit)

	_, _, err = runCLI(t, dir, "version", "--format", "yaml")
	require.Error(t, err)
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cacheHome := filepath.Join(t.TempDir(), "xdg")
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"cache", "path"}, &out, &out))
	require.Equal(t, filepath.Join(cacheHome, "minifmt")+"\n", out.String())

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"cache", "clean"}, &out, &out))
	require.Contains(t, out.String(), "cleared "+filepath.Join(cacheHome, "minifmt"))
}

func TestColorFlag(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "--color", "sometimes", "version")
	require.ErrorContains(t, err, "unsupported color mode")
}
