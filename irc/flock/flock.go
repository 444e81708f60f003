//go:build !(plan9 || solaris)

package flock

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

var (
	CouldntAcquire = errors.New("Couldn't acquire flock (is another ergoclient running with this identity?)")
)

// TryAcquireFlock takes an exclusive lock on path without blocking,
// creating the file and its directory if needed.
func TryAcquireFlock(path string) (fl Flocker, err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0700); err != nil {
			return nil, err
		}
	}
	f := flock.New(path)
	success, err := f.TryLock()
	if err != nil {
		return nil, err
	} else if !success {
		return nil, CouldntAcquire
	}
	return f, nil
}
