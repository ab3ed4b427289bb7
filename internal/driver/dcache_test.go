package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carllerche/minifmt/internal/format"
)

func TestCacheKeyDependsOnOptions(t *testing.T) {
	content := []byte("struct S;\n")
	base := NewCacheKey(content, format.Options{IndentWidth: 4})

	require.Equal(t, base, NewCacheKey(content, format.Options{IndentWidth: 4}))
	require.NotEqual(t, base, NewCacheKey(content, format.Options{IndentWidth: 2}))
	require.NotEqual(t, base, NewCacheKey(content, format.Options{IndentWidth: 4, UseTabs: true}))
	require.NotEqual(t, base, NewCacheKey([]byte("struct T;\n"), format.Options{IndentWidth: 4}))
	require.Len(t, base.String(), 64)
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "c"))
	require.NoError(t, err)

	key := NewCacheKey([]byte("abc"), format.Options{})
	var out DiskPayload
	hit, err := cache.Get(key, 3, &out)
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, cache.Put(key, &DiskPayload{Size: 3, Formatted: []byte("xyz\n")}))

	hit, err = cache.Get(key, 3, &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, diskCacheSchemaVersion, out.Schema)
	require.False(t, out.Clean)
	require.Equal(t, "xyz\n", string(out.Formatted))

	// A size mismatch is treated as a miss.
	hit, err = cache.Get(key, 4, &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestDiskCacheCorruptEntry(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)

	key := NewCacheKey([]byte("abc"), format.Options{})
	p := cache.pathFor(key)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte{0xc1}, 0o600))

	var out DiskPayload
	hit, err := cache.Get(key, 3, &out)
	require.Error(t, err)
	require.False(t, hit)
}

func TestDiskCacheDropAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "c")
	cache, err := NewDiskCache(dir)
	require.NoError(t, err)

	key := NewCacheKey([]byte("abc"), format.Options{})
	require.NoError(t, cache.Put(key, &DiskPayload{Size: 3, Clean: true}))
	require.NoError(t, cache.DropAll())

	var out DiskPayload
	hit, err := cache.Get(key, 3, &out)
	require.NoError(t, err)
	require.False(t, hit)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestNilDiskCache(t *testing.T) {
	var cache *DiskCache
	key := NewCacheKey(nil, format.Options{})
	require.NoError(t, cache.Put(key, &DiskPayload{}))
	hit, err := cache.Get(key, 0, &DiskPayload{})
	require.NoError(t, err)
	require.False(t, hit)
	require.NoError(t, cache.DropAll())
	require.Empty(t, cache.Dir())
}

func TestOpenDiskCacheUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	cache, err := OpenDiskCache("minifmt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "minifmt"), cache.Dir())
}
