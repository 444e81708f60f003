//go:build !(plan9 || solaris)

package flock

import (
	"path/filepath"
	"testing"
)

func TestTryAcquireFlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locks", "dan.lock")

	first, err := TryAcquireFlock(path)
	if err != nil {
		t.Fatal(err)
	}
	if first.Path() != path {
		t.Errorf("unexpected lock path %s", first.Path())
	}
	// gofrs/flock locks are per file descriptor, so a second handle conflicts
	if _, err := TryAcquireFlock(path); err != CouldntAcquire {
		t.Errorf("expected CouldntAcquire, got %v", err)
	}
	if err := first.Unlock(); err != nil {
		t.Fatal(err)
	}
	second, err := TryAcquireFlock(path)
	if err != nil {
		t.Fatalf("lock should be free after unlock: %v", err)
	}
	second.Unlock()
}
