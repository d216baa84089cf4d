//go:build race

package opt

import "sync"

// Race_ reports whether the race detector is enabled. Tests use it to shrink
// iteration counts, since instrumented spin loops are far slower.
const Race_ = true

// RaceMutex serializes calls into code that mixes plain and atomic accesses
// to the same words (pb.MapOf reads its table with unfenced loads on TSO
// machines). Under the race detector it is a real mutex, so those accesses
// gain the happens-before edges the detector needs.
type RaceMutex struct {
	mu sync.Mutex
}

func (m *RaceMutex) Lock() {
	m.mu.Lock()
}

func (m *RaceMutex) Unlock() {
	m.mu.Unlock()
}
