package flock

// Flocker is a held lock file. *flock.Flock from github.com/gofrs/flock
// satisfies it; it is not a sync.Locker, since Unlock returns an error.
type Flocker interface {
	Unlock() error
	Path() string
}

type noopFlocker struct {
	path string
}

func (n *noopFlocker) Unlock() error {
	return nil
}

func (n *noopFlocker) Path() string {
	return n.path
}
