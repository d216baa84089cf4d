package spinx

// Mutex owns a value of type T and grants exclusive access to it through
// WithLock. The value is never reachable outside a critical section.
//
// Mutex must not be copied after first use; share it by pointer.
//
// Like SpinLock it is not reentrant: calling WithLock from inside fn on the
// same Mutex deadlocks.
type Mutex[T any] struct {
	mu    SpinLock
	value T
}

// NewMutex returns a Mutex holding value that acquires with strategy s.
// It panics if s is not a defined Strategy.
func NewMutex[T any](value T, s Strategy) *Mutex[T] {
	mustValidStrategy(s)
	m := &Mutex[T]{value: value}
	m.mu.strategy = s
	return m
}

// Strategy returns the acquisition strategy chosen at construction.
func (m *Mutex[T]) Strategy() Strategy {
	return m.mu.strategy
}

// WithLock runs fn exactly once with exclusive access to the value.
// The lock is released when fn returns, panics or calls runtime.Goexit;
// a panic propagates to the caller unchanged.
// fn must not retain v after returning.
func (m *Mutex[T]) WithLock(fn func(v *T)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.value)
}

// TryWithLock runs fn like WithLock if the lock is free, without waiting.
// It reports whether fn ran.
func (m *Mutex[T]) TryWithLock(fn func(v *T)) bool {
	if !m.mu.TryLock() {
		return false
	}
	defer m.mu.Unlock()
	fn(&m.value)
	return true
}
