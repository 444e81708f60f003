//go:build plan9 || solaris

package flock

// no-op on platforms without flock(2)
func TryAcquireFlock(path string) (fl Flocker, err error) {
	return &noopFlocker{path: path}, nil
}
