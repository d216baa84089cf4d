package spinx

import (
	"github.com/llxisdsh/spinx/internal/opt"
)

// SplitRWLock is a spin-based reader-writer lock that keeps the reader count
// and the writer flag in two separate words (each on its own cache line
// where padding is enabled).
//
// Readers register speculatively: increment readers, then re-check writer;
// if a writer slipped in between, the increment is undone and the reader
// retries. A writer first claims the writer flag, which turns away new
// readers, then waits for the readers already inside to drain.
//
// Properties:
//   - Writer-preferred: a waiting writer is admitted once the readers that
//     were active when it claimed the flag have released. Conversely,
//     writers that keep re-acquiring can starve readers.
//   - Busy-wait with a processor hint between attempts; never parks.
//
// The zero value is an unlocked lock.
type SplitRWLock struct {
	_       noCopy
	readers opt.Word_
	writer  opt.Word_
}

// RLock acquires a read lock.
func (rw *SplitRWLock) RLock() {
	for !rw.TryRLock() {
		hint()
	}
}

// TryRLock makes one attempt to add a reader and reports whether it
// succeeded.
func (rw *SplitRWLock) TryRLock() bool {
	if rw.writer.Load() != 0 {
		return false
	}
	rw.readers.Add(1)
	// A writer that claimed the flag before this load will wait for the
	// increment above; one that claims it after sees the increment.
	if rw.writer.Load() == 0 {
		return true
	}
	rw.readers.Add(^uint32(0))
	return false
}

// RUnlock releases a read lock.
// It panics if no read lock is held.
func (rw *SplitRWLock) RUnlock() {
	for {
		n := rw.readers.Load()
		if n == 0 {
			panic("spinx: RUnlock of unlocked SplitRWLock")
		}
		if rw.readers.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// Lock acquires the write lock.
func (rw *SplitRWLock) Lock() {
	for !rw.writer.CompareAndSwap(0, 1) {
		for rw.writer.Load() != 0 {
			hint()
		}
	}
	for rw.readers.Load() != 0 {
		hint()
	}
}

// TryLock makes one attempt to acquire the write lock. It fails if another
// writer holds the flag or readers are active.
func (rw *SplitRWLock) TryLock() bool {
	if !rw.writer.CompareAndSwap(0, 1) {
		return false
	}
	if rw.readers.Load() != 0 {
		rw.writer.Store(0)
		return false
	}
	return true
}

// Unlock releases the write lock.
// It panics if the write lock is not held.
func (rw *SplitRWLock) Unlock() {
	if rw.writer.Swap(0) != 1 {
		panic("spinx: Unlock of SplitRWLock not locked for writing")
	}
}
