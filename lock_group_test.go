package spinx

import (
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

func (t *refTable[K, L]) contains(k K) bool {
	_, ok := t.lookup(k)
	return ok
}

func TestMutexGroup(t *testing.T) {
	var g MutexGroup[string]
	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	counters := map[string]int64{}
	keys := []string{"a", "b", "c"}
	for i := range n {
		go func() {
			defer wg.Done()
			k := keys[i%len(keys)]
			g.WithLock(k, func() {
				// Keys are distinct locks, but the map itself is shared.
				g.Lock("map")
				counters[k]++
				g.Unlock("map")
			})
		}()
	}
	wg.Wait()
	var total int64
	for _, c := range counters {
		total += c
	}
	if total != n {
		t.Fatalf("total = %d, want %d", total, n)
	}
	for _, k := range append(keys, "map") {
		if g.t.contains(k) {
			t.Fatalf("entry %q not cleaned up", k)
		}
	}
}

func TestMutexGroup_Exclusion(t *testing.T) {
	var g MutexGroup[int]
	g.Lock(1)

	done := make(chan struct{})
	go func() {
		g.Lock(1)
		close(done)
		g.Unlock(1)
	}()

	// Other keys stay available.
	if !g.TryLock(2) {
		t.Fatal("TryLock on an unrelated key failed")
	}
	g.Unlock(2)

	select {
	case <-done:
		t.Fatal("Lock acquired while held")
	case <-time.After(10 * time.Millisecond):
	}
	if g.TryLock(1) {
		t.Fatal("TryLock acquired a held key")
	}
	g.Unlock(1)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Lock not acquired after Unlock")
	}
	waitUntil(t, time.Second, func() bool { return !g.t.contains(1) },
		"entry not cleaned up")
}

func TestMutexGroup_RefCounting(t *testing.T) {
	var g MutexGroup[int]
	g.Lock(1)
	if !g.t.contains(1) {
		t.Fatal("Entry should exist after Lock")
	}
	l, _ := g.t.lookup(1)
	if l.Strategy() != StrategyBackoffPark {
		t.Fatalf("group lock strategy = %v, want %v", l.Strategy(), StrategyBackoffPark)
	}
	g.Unlock(1)
	if g.t.contains(1) {
		t.Fatal("Entry should be auto-deleted after Unlock (ref=0)")
	}
	mustPanic(t, "Unlock of unknown key", func() { g.Unlock(1) })
}

func TestMutexGroup_ConcurrentFirstUse(t *testing.T) {
	// Fresh groups build their map lazily; many goroutines hitting a new
	// group at once must agree on one lock per key.
	for range iterations(20) {
		var g MutexGroup[int]
		counts := make([]int, 8)
		var eg errgroup.Group
		for i := range workers() * 2 {
			eg.Go(func() error {
				for j := range 50 {
					k := (i + j) % len(counts)
					g.WithLock(k, func() { counts[k]++ })
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}
		total := 0
		for k, c := range counts {
			total += c
			if g.t.contains(k) {
				t.Fatalf("entry %d not cleaned up", k)
			}
		}
		if want := workers() * 2 * 50; total != want {
			t.Fatalf("total = %d, want %d", total, want)
		}
	}
}
