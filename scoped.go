package spinx

// Locker is implemented by value-owning exclusive locks such as Mutex.
type Locker[T any] interface {
	WithLock(fn func(v *T))
}

// RWLocker is implemented by value-owning reader-writer locks such as RWMutex.
type RWLocker[T any] interface {
	Read(fn func(v *T))
	Write(fn func(v *T))
}

// Do runs fn under l's exclusive lock and returns its result.
//
// Example:
//
//	m := spinx.NewMutex(0, spinx.StrategyBackoff)
//	n := spinx.Do(m, func(v *int) int { *v++; return *v })
func Do[T, R any](l Locker[T], fn func(v *T) R) (r R) {
	l.WithLock(func(v *T) {
		r = fn(v)
	})
	return r
}

// Read runs fn under l's shared lock and returns its result.
// fn must not modify *v.
func Read[T, R any](l RWLocker[T], fn func(v *T) R) (r R) {
	l.Read(func(v *T) {
		r = fn(v)
	})
	return r
}

// Write runs fn under l's exclusive lock and returns its result.
func Write[T, R any](l RWLocker[T], fn func(v *T) R) (r R) {
	l.Write(func(v *T) {
		r = fn(v)
	})
	return r
}
