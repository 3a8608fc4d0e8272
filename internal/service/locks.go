package service

import "sync"

// parentLocks serializes append and sync operations per parent id, so the
// read-then-write position computation and the delete-then-insert sync
// cannot interleave for the same parent inside one process.
type parentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newParentLocks() *parentLocks {
	return &parentLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// Acquire locks the mutex for a parent id and returns the unlock func.
func (p *parentLocks) Acquire(parentID string) func() {
	p.mu.Lock()
	lock, ok := p.locks[parentID]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[parentID] = lock
	}
	p.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
