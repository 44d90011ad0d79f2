// Package cache implements the hash-based change-detection cache that lets
// `gooze mutate --no-cache=false` (the default) skip re-scanning files whose
// content hasn't changed since the last run. `gooze list` does not use it.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// DirName is the cache directory a recursive scan must skip, alongside
	// hidden directories.
	DirName = ".gooze-cache"

	fileName = "hashes.json"
)

// Cache is a persisted file-path -> content-hash map.
type Cache struct {
	path   string
	hashes map[string]string
}

// Load reads the cache file at dir/DirName/hashes.json. A missing file is
// not an error — it just means every source is "changed" on first run.
func Load(dir string) (*Cache, error) {
	c := &Cache{
		path:   filepath.Join(dir, DirName, fileName),
		hashes: make(map[string]string),
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}

		return nil, fmt.Errorf("read cache: %w", err)
	}

	if err := json.Unmarshal(data, &c.hashes); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}

	return c, nil
}

// Save writes the cache back to disk, creating its directory if needed.
func (c *Cache) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o750); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.Marshal(c.hashes)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	return os.WriteFile(c.path, data, 0o600)
}

// HashFile returns the SHA-256 hex digest of the file at path, the same
// fingerprint the teacher's source_fs_adapter.go HashFile computes.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}

	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Changed reports whether file's current hash differs from the cached one
// (or is absent from the cache entirely).
func (c *Cache) Changed(file, currentHash string) bool {
	return c.hashes[file] != currentHash
}

// Record stores file's current hash for the next run.
func (c *Cache) Record(file, currentHash string) {
	c.hashes[file] = currentHash
}

// Prune drops cache entries for files that no longer exist in liveFiles.
func (c *Cache) Prune(liveFiles map[string]struct{}) {
	for file := range c.hashes {
		if _, ok := liveFiles[file]; !ok {
			delete(c.hashes, file)
		}
	}
}
