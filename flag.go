package spinx

import "sync/atomic"

const (
	flagClear uint32 = 0
	flagSet   uint32 = 1
)

// AtomicFlag is a single atomic word used as a lock bit.
// The zero value is clear.
//
// Operations are sequentially consistent (sync/atomic), which subsumes the
// acquire/release pairing a lock needs: a successful TrySet observes every
// write made before the Clear it follows.
type AtomicFlag struct {
	_ noCopy
	v atomic.Uint32
}

// TrySet sets the flag if it is clear and reports whether it did.
//
//go:nosplit
func (f *AtomicFlag) TrySet() bool {
	return f.v.CompareAndSwap(flagClear, flagSet)
}

// IsSet reports whether the flag is currently set.
//
//go:nosplit
func (f *AtomicFlag) IsSet() bool {
	return f.v.Load() == flagSet
}

// Clear clears the flag and reports whether it was set.
//
//go:nosplit
func (f *AtomicFlag) Clear() bool {
	return f.v.Swap(flagClear) == flagSet
}
