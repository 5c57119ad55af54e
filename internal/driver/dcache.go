package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"sparkfmt/internal/printer"
)

// cacheSchemaVersion invalidates every stored payload when the Payload
// format changes.
const cacheSchemaVersion uint16 = 1

// Digest keys the cache: a hash over the input content plus the printer
// options that shaped the output.
type Digest [32]byte

// DiskCache stores formatted output keyed by input digest. Thread-safe.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Payload is one cached formatting result.
type Payload struct {
	Schema    uint16
	InputHash [32]byte
	Formatted []byte
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location (XDG_CACHE_HOME or ~/.cache) under the given app name.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// cacheKey mixes the input content hash with the printer options so a layout
// change never serves stale output.
func cacheKey(contentHash [32]byte, opt printer.Options) Digest {
	var buf [40]byte
	copy(buf[:32], contentHash[:])
	binary.LittleEndian.PutUint16(buf[32:], cacheSchemaVersion)
	w := opt.IndentWidth
	if w == 0 {
		w = 4
	}
	binary.LittleEndian.PutUint32(buf[34:], uint32(w)) // #nosec G115 -- indent width is tiny
	if opt.UseTabs {
		buf[38] = 1
	}
	return sha256.Sum256(buf[:])
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "fmt", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload, atomically replacing any previous one.
func (c *DiskCache) Put(key Digest, payload *Payload) error {
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
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; ok=false means a clean miss. A payload with a stale
// schema also reads as a miss.
func (c *DiskCache) Get(key Digest, out *Payload) (bool, error) {
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
	defer func() {
		_ = f.Close()
	}()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}
