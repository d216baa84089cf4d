package spinx

// rwLocker is the state machine behind an RWMutex.
type rwLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

var (
	_ rwLocker = (*CounterRWLock)(nil)
	_ rwLocker = (*SplitRWLock)(nil)
)

// RWMutex owns a value of type T and grants either shared access to any
// number of readers or exclusive access to one writer, never both.
//
// The state encoding is picked at construction:
//   - NewCounterRWMutex: one counter (CounterRWLock); readers can starve
//     writers.
//   - NewSplitRWMutex: split reader/writer words (SplitRWLock); a waiting
//     writer blocks new readers.
//
// RWMutex must not be copied after first use; share it by pointer.
// Neither Read nor Write is reentrant with respect to a pending Write.
type RWMutex[T any] struct {
	_     noCopy
	rw    rwLocker
	value T
}

// NewCounterRWMutex returns an RWMutex holding value backed by a CounterRWLock.
func NewCounterRWMutex[T any](value T) *RWMutex[T] {
	return &RWMutex[T]{rw: &CounterRWLock{}, value: value}
}

// NewSplitRWMutex returns an RWMutex holding value backed by a SplitRWLock.
func NewSplitRWMutex[T any](value T) *RWMutex[T] {
	return &RWMutex[T]{rw: &SplitRWLock{}, value: value}
}

// Read runs fn exactly once with shared access to the value.
// fn must not modify *v or retain v after returning. The read lock is
// released even if fn panics.
func (m *RWMutex[T]) Read(fn func(v *T)) {
	m.rw.RLock()
	defer m.rw.RUnlock()
	fn(&m.value)
}

// Write runs fn exactly once with exclusive access to the value.
// fn must not retain v after returning. The write lock is released even if
// fn panics.
func (m *RWMutex[T]) Write(fn func(v *T)) {
	m.rw.Lock()
	defer m.rw.Unlock()
	fn(&m.value)
}
