package spinx

import (
	_ "unsafe" // for linkname
)

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// hint tells the processor that the caller is busy-waiting (PAUSE on x86,
// YIELD on arm64), so a sibling hardware thread can use the core and the
// polling load stops hammering the memory bus. It never deschedules the
// goroutine.
//
//go:nosplit
func hint() {
	runtime_doSpin()
}

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
