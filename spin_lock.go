package spinx

import (
	"sync/atomic"

	"github.com/llxisdsh/spinx/internal/opt"
)

// SpinLock is an exclusive lock built on a single AtomicFlag.
//
// It acquires with one of four strategies (see Strategy) chosen at
// construction; the zero value uses StrategySpin. All strategies release the
// same way, so the flag store in Unlock happens-before the compare-and-swap
// that grants the next holder.
//
// SpinLock is not reentrant: calling Lock while already holding the lock
// deadlocks the caller. A locked SpinLock is not associated with a
// particular goroutine.
//
// Parking (StrategyBackoffPark) uses an explicit handshake: a waiter
// registers in waiters, re-checks the flag, and sleeps on sema; Unlock clears
// the flag and, if anyone is registered, claims one registration and posts a
// wakeup. Wakeups posted before the waiter sleeps are banked by the semaphore.
type SpinLock struct {
	_        noCopy
	flag     AtomicFlag
	strategy Strategy
	waiters  atomic.Int32
	sema     opt.Sema
}

// NewSpinLock returns an unlocked SpinLock that acquires with s.
// It panics if s is not a defined Strategy.
func NewSpinLock(s Strategy) *SpinLock {
	mustValidStrategy(s)
	l := &SpinLock{}
	l.strategy = s
	return l
}

// Strategy returns the acquisition strategy chosen at construction.
func (l *SpinLock) Strategy() Strategy {
	return l.strategy
}

// TryLock makes a single acquisition attempt and reports whether it succeeded.
func (l *SpinLock) TryLock() bool {
	return l.flag.TrySet()
}

// Lock acquires the lock, waiting as the strategy dictates.
func (l *SpinLock) Lock() {
	if l.flag.TrySet() {
		return
	}
	switch l.strategy {
	case StrategySpin:
		l.lockSpin()
	case StrategySpinHint:
		l.lockSpinHint()
	case StrategyBackoff:
		l.lockBackoff()
	case StrategyBackoffPark:
		lockOrPark(l)
	default:
		panic("spinx: unknown SpinLock strategy " + l.strategy.String())
	}
}

// Unlock releases the lock and wakes one parked waiter, if any.
// It panics if the lock is not held.
func (l *SpinLock) Unlock() {
	if !l.flag.Clear() {
		panic("spinx: unlock of unlocked SpinLock")
	}
	if l.waiters.Load() > 0 && l.claimWaiter() {
		l.sema.Release()
	}
}

func (l *SpinLock) lockSpin() {
	for !l.flag.TrySet() {
	}
}

func (l *SpinLock) lockSpinHint() {
	for !l.flag.TrySet() {
		hint()
	}
}

func (l *SpinLock) lockBackoff() {
	var b Backoff
	for !l.flag.TrySet() {
		b.Spin()
	}
}

func (l *SpinLock) tryLock() bool {
	return l.flag.TrySet()
}

// park blocks until an Unlock posts a wakeup, unless the lock was released
// while registering, in which case it withdraws and returns at once.
func (l *SpinLock) park() {
	l.waiters.Add(1)
	if !l.flag.IsSet() && l.claimWaiter() {
		return
	}
	l.sema.Acquire()
}

// claimWaiter removes one registration if there is any. A waiter that fails
// to withdraw its own registration owes a sema.Acquire for the wakeup the
// claiming Unlock posted.
func (l *SpinLock) claimWaiter() bool {
	for {
		n := l.waiters.Load()
		if n <= 0 {
			return false
		}
		if l.waiters.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

// parker is what the backoff-then-park loop needs from a lock.
type parker interface {
	tryLock() bool
	park()
}

// lockOrPark backs off exponentially between attempts and parks once the
// backoff has saturated, restarting the backoff after every wakeup.
func lockOrPark(p parker) {
	var b Backoff
	for !p.tryLock() {
		if b.Saturated() {
			p.park()
			b.Reset()
			continue
		}
		b.Spin()
	}
}
