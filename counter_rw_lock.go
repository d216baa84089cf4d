package spinx

import "sync/atomic"

const (
	rwUnlocked    uintptr = 0
	rwWriteLocked uintptr = 1
)

// CounterRWLock is a spin-based reader-writer lock whose whole state is one
// counter:
//
//	0    unlocked
//	1    write-locked
//	k>1  k-1 readers
//
// The first reader moves the state 0→2 and the last one moves it 2→0, so
// a held read lock is never mistaken for a writer.
//
// Properties:
//   - Reader-preferred: a writer only succeeds from the literal unlocked
//     state, so a stream of overlapping readers can starve a writer
//     indefinitely. SplitRWLock does not have this starvation mode.
//   - Busy-wait with a processor hint between attempts; never parks.
//
// The zero value is an unlocked lock.
type CounterRWLock struct {
	_     noCopy
	state atomic.Uintptr
}

// RLock acquires a read lock.
// It spins while a writer holds the lock.
func (rw *CounterRWLock) RLock() {
	for !rw.TryRLock() {
		hint()
	}
}

// TryRLock makes one attempt to add a reader and reports whether it
// succeeded. It fails if a writer holds the lock or the state changed under it.
func (rw *CounterRWLock) TryRLock() bool {
	s := rw.state.Load()
	if s == rwWriteLocked {
		return false
	}
	next := s + 1
	if s == rwUnlocked {
		next = rwWriteLocked + 1
	}
	return rw.state.CompareAndSwap(s, next)
}

// RUnlock releases a read lock.
// It panics if no read lock is held.
func (rw *CounterRWLock) RUnlock() {
	for {
		s := rw.state.Load()
		if s <= rwWriteLocked {
			panic("spinx: RUnlock of unlocked CounterRWLock")
		}
		next := s - 1
		if next == rwWriteLocked {
			next = rwUnlocked
		}
		if rw.state.CompareAndSwap(s, next) {
			return
		}
	}
}

// Lock acquires the write lock.
// After a failed attempt it spins until the state reads unlocked before
// trying again, so waiting writers only load the shared word.
func (rw *CounterRWLock) Lock() {
	for !rw.state.CompareAndSwap(rwUnlocked, rwWriteLocked) {
		for rw.state.Load() != rwUnlocked {
			hint()
		}
	}
}

// TryLock makes one attempt to acquire the write lock.
func (rw *CounterRWLock) TryLock() bool {
	return rw.state.CompareAndSwap(rwUnlocked, rwWriteLocked)
}

// Unlock releases the write lock.
// It panics if the write lock is not held.
func (rw *CounterRWLock) Unlock() {
	if rw.state.Swap(rwUnlocked) != rwWriteLocked {
		panic("spinx: Unlock of CounterRWLock not locked for writing")
	}
}
