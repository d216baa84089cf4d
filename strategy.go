package spinx

import "strconv"

// Strategy selects how a SpinLock waits after a failed acquisition attempt.
// It is fixed when the lock is constructed.
//
// All strategies share the same release path and the same mutual-exclusion
// guarantee; they differ only in how much CPU and bus traffic a waiter burns.
// None of them is fair: there is no queue, and a waiter can lose to newcomers
// indefinitely.
type Strategy uint8

const (
	// StrategySpin retries the compare-and-swap in a tight loop.
	StrategySpin Strategy = iota
	// StrategySpinHint retries after one processor spin hint per failure.
	StrategySpinHint
	// StrategyBackoff spins an exponentially growing number of hints
	// (1, 2, 4 ... capped at 1024) between attempts.
	StrategyBackoff
	// StrategyBackoffPark backs off like StrategyBackoff until the cap is
	// reached, then parks the goroutine until an Unlock wakes it, resets
	// the backoff and retries.
	StrategyBackoffPark
)

func (s Strategy) String() string {
	switch s {
	case StrategySpin:
		return "spin"
	case StrategySpinHint:
		return "spin-hint"
	case StrategyBackoff:
		return "backoff"
	case StrategyBackoffPark:
		return "backoff-park"
	}
	return "Strategy(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s <= StrategyBackoffPark
}

func mustValidStrategy(s Strategy) {
	if !s.Valid() {
		panic("spinx: invalid strategy " + s.String())
	}
}

// Strategies lists every acquisition strategy, cheapest first.
var Strategies = []Strategy{
	StrategySpin,
	StrategySpinHint,
	StrategyBackoff,
	StrategyBackoffPark,
}
