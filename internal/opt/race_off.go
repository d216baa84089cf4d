//go:build !race

package opt

// Race_ reports whether the race detector is enabled.
const Race_ = false

// RaceMutex is a no-op outside race builds.
type RaceMutex struct{}

//go:nosplit
func (*RaceMutex) Lock() {}

//go:nosplit
func (*RaceMutex) Unlock() {}
