package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Antonk123/latest-it-ticketing/internal/config"
)

// DiskStore keeps objects as plain files under a root directory. Keys use
// forward slashes; nested keys become nested directories.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore builds a store rooted at cfg.RootDir.
func NewDiskStore(cfg config.StorageConfig) (*DiskStore, error) {
	if err := os.MkdirAll(cfg.RootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &DiskStore{
		root:    cfg.RootDir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the object; partially written files are removed on error.
func (s *DiskStore) Upload(ctx context.Context, key string, r io.Reader, size int64) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create object: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write object: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close object: %w", err)
	}
	return nil
}

// Remove deletes the given objects, continuing past individual failures and
// returning the first error encountered.
func (s *DiskStore) Remove(ctx context.Context, keys []string) error {
	var firstErr error
	for _, key := range keys {
		path, err := s.resolve(key)
		if err == nil {
			err = os.Remove(path)
		}
		if err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublicURL derives the download URL for a key.
func (s *DiskStore) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// resolve maps a key to a path under root, rejecting traversal attempts.
func (s *DiskStore) resolve(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}
