// Package file provides a filesystem DocumentCache.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

const ext = ".json"

// Cache implements ports.DocumentCache on the local filesystem.
// Each document is one file named after its fingerprint.
type Cache struct {
	BasePath string
}

// New creates a Cache rooted at basePath.
// If basePath is empty, it defaults to ".flowsuite/cache".
func New(basePath string) *Cache {
	if basePath == "" {
		basePath = filepath.Join(".flowsuite", "cache")
	}
	return &Cache{BasePath: basePath}
}

func (c *Cache) path(key string) (string, error) {
	if key == "" {
		return "", errors.New("cache key cannot be empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid cache key %q", key)
	}
	return filepath.Join(c.BasePath, key+ext), nil
}

// Get reads the document stored under key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := c.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return data, nil
}

// Put writes the document atomically: a temp file in the same directory is
// synced and then renamed over the destination.
func (c *Cache) Put(ctx context.Context, key string, doc []byte) error {
	dest, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(c.BasePath, "tmp-"+key+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(doc); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Rename does not replace an existing file on Windows.
	if _, err := os.Stat(dest); err == nil {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("failed to replace cache file: %w", err)
		}
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Delete removes the file for key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	p, err := c.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Keys lists the cached fingerprints.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(c.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list cache: %w", err)
	}

	keys := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext || strings.HasPrefix(name, "tmp-") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ext))
	}
	return keys, nil
}
