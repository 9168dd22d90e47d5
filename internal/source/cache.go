package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// Cache stores fetched documents on disk keyed by URL.
type Cache struct {
	dir string
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "tokenise", "documents"), nil
	}
	return filepath.Join(cacheDir, "tokenise", "documents"), nil
}

// NewCache returns a cache rooted at dir, or at DefaultCacheDir when dir is empty.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		d, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns the file a URL is cached in.
// The name is the first 16 bytes of the URL's SHA-256 in hex.
func (c *Cache) Path(url string) string {
	hash := sha256.Sum256([]byte(url))
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", hash[:16]))
}

// Get returns the cached body for url, if present.
func (c *Cache) Get(url string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.Path(url))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached document: %w", err)
	}
	return data, true, nil
}

// Put stores the body for url.
func (c *Cache) Put(url string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	// Cached documents may contain private design data.
	if err := os.WriteFile(c.Path(url), data, 0o600); err != nil {
		return fmt.Errorf("failed to write cached document: %w", err)
	}
	return nil
}
