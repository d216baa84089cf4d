package spinx

const (
	backoffMin uint32 = 1
	backoffMax uint32 = 1 << 10
)

// Backoff is an exponential, capped busy-wait policy.
//
// Each Spin issues Step() processor hints and then doubles the step, so
// successive rounds spin 1, 2, 4, ..., 1024, 1024, ... hints. Once the
// step reaches the cap, Saturated reports true; StrategyBackoffPark uses
// that as the point where spinning stops and the goroutine parks.
//
// The zero value is ready to use. A Backoff is owned by a single
// acquisition loop and is not safe for concurrent use.
type Backoff struct {
	step uint32
}

// Step returns the number of hints the next Spin will issue.
func (b *Backoff) Step() uint32 {
	return max(b.step, backoffMin)
}

// Spin busy-waits for Step() hints, advances the step, and returns the
// number of hints issued.
func (b *Backoff) Spin() uint32 {
	n := b.Step()
	for range n {
		hint()
	}
	b.step = min(n<<1, backoffMax)
	return n
}

// Saturated reports whether the step has reached the cap.
func (b *Backoff) Saturated() bool {
	return b.step >= backoffMax
}

// Reset restarts the sequence at one hint.
func (b *Backoff) Reset() {
	b.step = 0
}
