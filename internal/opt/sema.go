package opt

import (
	_ "unsafe" // for linkname
)

// Sema is a zero-allocation semaphore.
// It is a direct wrapper around runtime.semacquire/semrelease, the same
// primitive that parks goroutines blocked in sync.Mutex.
//
// Release before Acquire is not lost: the count is kept and the next
// Acquire returns immediately.
type Sema uint32

// Acquire blocks the calling goroutine until a matching Release.
func (s *Sema) Acquire() {
	runtime_semacquire((*uint32)(s))
}

// Release wakes one goroutine blocked in Acquire, or banks the wakeup.
func (s *Sema) Release() {
	runtime_semrelease((*uint32)(s), false, 0)
}

// nolint:all
//
//go:linkname runtime_semacquire sync.runtime_Semacquire
func runtime_semacquire(s *uint32)

// nolint:all
//
//go:linkname runtime_semrelease sync.runtime_Semrelease
func runtime_semrelease(s *uint32, handoff bool, skipframes int)
