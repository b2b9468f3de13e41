package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileCache keeps raw source files on local disk, one flat file per dataset,
// with an in-memory L1 in front so a run reads each file at most once.
type FileCache struct {
	dir     string
	entries map[string]entry
	mu      sync.RWMutex
}

type entry struct {
	data []byte
}

// NewFileCache creates a FileCache rooted at dir
func NewFileCache(dir string) *FileCache {
	return &FileCache{
		dir:     dir,
		entries: make(map[string]entry),
	}
}

// Path returns the on-disk location of name
func (c *FileCache) Path(name string) string {
	return filepath.Join(c.dir, name)
}

// Get returns the cached bytes for name. The bool is false when nothing is cached.
func (c *FileCache) Get(name string) ([]byte, bool, error) {
	c.mu.RLock()
	e, exists := c.entries[name]
	c.mu.RUnlock()
	if exists {
		return e.data, true, nil
	}

	data, err := os.ReadFile(c.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache file %s: %w", name, err)
	}

	c.mu.Lock()
	c.entries[name] = entry{data: data}
	c.mu.Unlock()
	return data, true, nil
}

// Put writes data verbatim to the cache file for name
func (c *FileCache) Put(name string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create cache file %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache file %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), c.Path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to store cache file %s: %w", name, err)
	}

	c.mu.Lock()
	c.entries[name] = entry{data: data}
	c.mu.Unlock()
	return nil
}
