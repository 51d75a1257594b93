package syncs

import (
	"path/filepath"
	"sync"
)

// Locker provides per-path mutual exclusion.
// See [PathLock] for an implementation.
type Locker interface {
	Lock(path string)
	Unlock(path string)
}

// PathLock is a per-file mutex. Paths are compared after conversion to
// clean absolute paths, so "a.properties" and "./a.properties" share a
// lock. The zero value is ready to use.
type PathLock struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

// NewPathLock creates a new [PathLock].
func NewPathLock() *PathLock {
	return &PathLock{
		locks: make(map[string]*sync.Mutex),
	}
}

func (pl *PathLock) getLock(path string) *sync.Mutex {
	key := normalize(path)

	pl.mu.Lock()
	defer pl.mu.Unlock()

	if pl.locks == nil {
		pl.locks = make(map[string]*sync.Mutex)
	}

	l, ok := pl.locks[key]
	if !ok {
		l = &sync.Mutex{}
		pl.locks[key] = l
	}

	return l
}

// Lock acquires the mutex for path, blocking if it is already held.
func (pl *PathLock) Lock(path string) {
	pl.getLock(path).Lock()
}

// Unlock releases the mutex for path.
func (pl *PathLock) Unlock(path string) {
	pl.getLock(path).Unlock()
}

func normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return abs
}
