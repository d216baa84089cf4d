package spinx

// RWLockGroup allows shared reader-writer locking on arbitrary keys.
// It matches MutexGroup but supports RLock/RUnlock.
//
// Features:
//   - RLock/RUnlock for shared read access.
//   - Lock/Unlock for exclusive write access.
//   - Infinite Keys & Auto-Cleanup.
//
// Each key is a SplitRWLock, so a waiting writer is not starved by readers
// arriving on the same key.
//
// Usage:
//
//	var group RWLockGroup[string]
//
//	// Readers
//	group.RLock("config")
//	read(config)
//	group.RUnlock("config")
//
//	// Writer
//	group.Lock("config")
//	write(config)
//	group.Unlock("config")
type RWLockGroup[K comparable] struct {
	_ noCopy
	t refTable[K, SplitRWLock]
}

// Lock acquires the write lock for k.
func (g *RWLockGroup[K]) Lock(k K) {
	g.t.acquire(k, nil).Lock()
}

// Unlock releases the write lock for k.
func (g *RWLockGroup[K]) Unlock(k K) {
	l, ok := g.t.lookup(k)
	if !ok {
		panic("spinx: unlock of unlocked RWLockGroup key")
	}
	l.Unlock()
	g.t.release(k)
}

// RLock acquires a read lock for k.
func (g *RWLockGroup[K]) RLock(k K) {
	g.t.acquire(k, nil).RLock()
}

// RUnlock releases a read lock for k.
func (g *RWLockGroup[K]) RUnlock(k K) {
	l, ok := g.t.lookup(k)
	if !ok {
		panic("spinx: RUnlock of unlocked RWLockGroup key")
	}
	l.RUnlock()
	g.t.release(k)
}
