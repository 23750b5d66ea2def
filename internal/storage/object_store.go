// Package storage abstracts the object store that holds attachment bytes.
// Records in postgres reference objects here by storage key; public URLs
// are derived from the key rather than stored.
package storage

import (
	"context"
	"io"
)

// ObjectStore is the interface the attachment workflow depends on.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64) error
	Remove(ctx context.Context, keys []string) error
	PublicURL(key string) string
}
