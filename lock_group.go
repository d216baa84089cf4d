package spinx

import (
	"github.com/llxisdsh/pb"

	"github.com/llxisdsh/spinx/internal/opt"
)

// refEntry is a per-key lock plus the number of goroutines holding or
// waiting for it. ref is only touched inside pb.MapOf.ProcessEntry.
type refEntry[L any] struct {
	lock L
	ref  int32
}

// refTable maps keys to ref-counted locks, creating an entry on first use
// and deleting it when the last user releases.
//
// Every map call goes through process. In race builds process holds
// raceMu, because pb.MapOf mixes unfenced loads with atomic stores on its
// table and the detector would otherwise flag them.
type refTable[K comparable, L any] struct {
	raceMu opt.RaceMutex
	m      pb.MapOf[K, *refEntry[L]]
}

func (t *refTable[K, L]) process(
	k K,
	fn func(l *pb.EntryOf[K, *refEntry[L]]) (*pb.EntryOf[K, *refEntry[L]], *refEntry[L], bool),
) (*refEntry[L], bool) {
	t.raceMu.Lock()
	defer t.raceMu.Unlock()
	return t.m.ProcessEntry(k, fn)
}

// acquire returns the lock for k, creating it (and calling setup on it) if
// absent, and counts the caller as a user.
func (t *refTable[K, L]) acquire(k K, setup func(l *L)) *L {
	e, _ := t.process(
		k,
		func(l *pb.EntryOf[K, *refEntry[L]]) (*pb.EntryOf[K, *refEntry[L]], *refEntry[L], bool) {
			if l != nil {
				l.Value.ref++
				return l, l.Value, true
			}
			e := &refEntry[L]{ref: 1}
			if setup != nil {
				setup(&e.lock)
			}
			return &pb.EntryOf[K, *refEntry[L]]{Value: e}, e, false
		},
	)
	return &e.lock
}

// lookup returns the lock for k without changing its count.
func (t *refTable[K, L]) lookup(k K) (*L, bool) {
	e, ok := t.process(
		k,
		func(l *pb.EntryOf[K, *refEntry[L]]) (*pb.EntryOf[K, *refEntry[L]], *refEntry[L], bool) {
			if l == nil {
				return nil, nil, false
			}
			return l, l.Value, true
		},
	)
	if !ok {
		return nil, false
	}
	return &e.lock, true
}

// release drops one user of k and deletes the entry when none remain.
func (t *refTable[K, L]) release(k K) {
	_, _ = t.process(
		k,
		func(l *pb.EntryOf[K, *refEntry[L]]) (*pb.EntryOf[K, *refEntry[L]], *refEntry[L], bool) {
			if l == nil {
				return nil, nil, false
			}
			l.Value.ref--
			if l.Value.ref <= 0 {
				return nil, nil, true
			}
			return l, l.Value, true
		},
	)
}

// MutexGroup allows exclusive locking on arbitrary keys.
//
// Features:
//   - Infinite Keys: no need to pre-allocate locks.
//   - Auto-Cleanup: a key's lock is removed once it is unlocked and nobody
//     else is waiting for it.
//   - Each key is a SpinLock using StrategyBackoffPark, so goroutines
//     contending on a hot key sleep instead of burning a core.
//
// Usage:
//
//	var group MutexGroup[string]
//	group.Lock("user-123")
//	// Critical section for user-123
//	group.Unlock("user-123")
//
// The zero value is ready to use.
type MutexGroup[K comparable] struct {
	_ noCopy
	t refTable[K, SpinLock]
}

func initGroupSpinLock(l *SpinLock) {
	l.strategy = StrategyBackoffPark
}

// Lock acquires the lock for k.
func (g *MutexGroup[K]) Lock(k K) {
	g.t.acquire(k, initGroupSpinLock).Lock()
}

// TryLock acquires the lock for k if it is free and reports whether it did.
func (g *MutexGroup[K]) TryLock(k K) bool {
	if g.t.acquire(k, initGroupSpinLock).TryLock() {
		return true
	}
	g.t.release(k)
	return false
}

// Unlock releases the lock for k.
// It panics if k is not locked.
func (g *MutexGroup[K]) Unlock(k K) {
	l, ok := g.t.lookup(k)
	if !ok {
		panic("spinx: unlock of unlocked MutexGroup key")
	}
	l.Unlock()
	g.t.release(k)
}

// WithLock runs fn while holding the lock for k.
func (g *MutexGroup[K]) WithLock(k K, fn func()) {
	g.Lock(k)
	defer g.Unlock(k)
	fn()
}
