package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Antonk123/latest-it-ticketing/internal/config"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(config.StorageConfig{
		RootDir:       t.TempDir(),
		PublicBaseURL: "http://localhost:3000/files/",
	})
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	return store
}

func TestDiskStoreUploadAndRemove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	key := "ticket-1/report.txt"
	body := "it is broken"
	if err := store.Upload(ctx, key, strings.NewReader(body), int64(len(body))); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	written, err := os.ReadFile(filepath.Join(store.root, "ticket-1", "report.txt"))
	if err != nil {
		t.Fatalf("read uploaded object: %v", err)
	}
	if string(written) != body {
		t.Errorf("object content = %q, want %q", written, body)
	}

	if err := store.Remove(ctx, []string{key}); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.root, "ticket-1", "report.txt")); !os.IsNotExist(err) {
		t.Errorf("object still present after Remove, stat err = %v", err)
	}
}

func TestDiskStoreRemoveMissingKeyIsNoError(t *testing.T) {
	store := newTestStore(t)
	if err := store.Remove(context.Background(), []string{"ticket-9/gone.png"}); err != nil {
		t.Errorf("Remove of missing key: %v, want nil", err)
	}
}

func TestDiskStoreRejectsTraversalKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, key := range []string{"../escape.txt", "/etc/passwd", "a/../../b"} {
		if err := store.Upload(ctx, key, strings.NewReader("x"), 1); err == nil {
			t.Errorf("Upload(%q) succeeded, want rejection", key)
		}
	}
}

func TestDiskStorePublicURL(t *testing.T) {
	store := newTestStore(t)
	got := store.PublicURL("ticket-1/shot.png")
	want := "http://localhost:3000/files/ticket-1/shot.png"
	if got != want {
		t.Errorf("PublicURL = %q, want %q", got, want)
	}
}
