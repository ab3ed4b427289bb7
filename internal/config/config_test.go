package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[format]
indent_width = 2
use_tabs = true

[run]
jobs = 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Format.IndentWidth)
	require.True(t, cfg.Format.UseTabs)
	require.Equal(t, 3, cfg.Run.Jobs)
	require.True(t, cfg.Run.Cache)
	require.Equal(t, []string{".rs"}, cfg.Files.Extensions)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[format]\nindent = 2\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "format.indent")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"indent", "[format]\nindent_width = 0\n", "indent_width"},
		{"jobs", "[run]\njobs = -1\n", "run.jobs"},
		{"extension", "[files]\nextensions = [\"rs\"]\n", "files.extensions"},
		{"syntax", "[format\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.body))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "[run]\ncache = false\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	wantAbs, err := filepath.Abs(want)
	require.NoError(t, err)
	require.Equal(t, wantAbs, got)

	cfg, path, err := Discover(nested)
	require.NoError(t, err)
	require.Equal(t, wantAbs, path)
	require.False(t, cfg.Run.Cache)
}

func TestDiscoverWithoutFile(t *testing.T) {
	cfg, path, err := Discover(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, path)
	require.Equal(t, Default(), cfg)
}
