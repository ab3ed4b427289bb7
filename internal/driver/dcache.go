package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/carllerche/minifmt/internal/format"
)

// Current schema version - increment when DiskPayload format or the
// formatter output changes.
const diskCacheSchemaVersion uint16 = 1

// CacheKey identifies one (content, options) pair.
type CacheKey [32]byte

func (k CacheKey) String() string { return hex.EncodeToString(k[:]) }

// NewCacheKey hashes the raw file bytes together with the options that
// influence the output.
func NewCacheKey(content []byte, opt format.Options) CacheKey {
	h := sha256.New()
	var hdr [2 + 4 + 1]byte
	binary.LittleEndian.PutUint16(hdr[0:], diskCacheSchemaVersion)
	width, err := safecast.Conv[uint32](opt.IndentWidth)
	if err != nil {
		width = 0
	}
	binary.LittleEndian.PutUint32(hdr[2:], width)
	if opt.UseTabs {
		hdr[6] = 1
	}
	_, _ = h.Write(hdr[:])
	_, _ = h.Write(content)
	var out CacheKey
	copy(out[:], h.Sum(nil))
	return out
}

// DiskCache remembers formatting results by CacheKey.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of formatting one input.
type DiskPayload struct {
	Schema uint16

	// Size of the input in bytes, checked on read.
	Size uint32

	// Clean is set when the input is already canonical. Formatted is empty
	// in that case.
	Clean     bool
	Formatted []byte
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("driver: cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key CacheKey) string {
	hexKey := key.String()
	return filepath.Join(c.dir, "fmt", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key CacheKey, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload for key. A missing entry, a stale schema or a size
// mismatch reports false without error.
func (c *DiskCache) Get(key CacheKey, size int, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	want, err := safecast.Conv[uint32](size)
	if err != nil {
		return false, nil
	}
	if out.Schema != diskCacheSchemaVersion || out.Size != want {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
