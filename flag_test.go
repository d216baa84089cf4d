package spinx

import (
	"sync"
	"testing"
)

func TestAtomicFlag_Basic(t *testing.T) {
	var f AtomicFlag
	if f.IsSet() {
		t.Fatal("zero flag is set")
	}
	if !f.TrySet() {
		t.Fatal("TrySet failed on clear flag")
	}
	if f.TrySet() {
		t.Fatal("TrySet succeeded on set flag")
	}
	if !f.IsSet() {
		t.Fatal("flag not set after TrySet")
	}
	if !f.Clear() {
		t.Fatal("Clear reported flag was clear")
	}
	if f.Clear() {
		t.Fatal("second Clear reported flag was set")
	}
}

func TestAtomicFlag_SingleWinner(t *testing.T) {
	var f AtomicFlag
	n := workers()
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			if f.TrySet() {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if winners != 1 {
		t.Fatalf("winners = %d, want 1", winners)
	}
}
