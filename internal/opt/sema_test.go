package opt

import (
	"sync"
	"testing"
	"time"
	"unsafe"
)

func TestSema_AcquireBlocksUntilRelease(t *testing.T) {
	var s Sema

	done := make(chan struct{})
	go func() {
		s.Acquire()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Acquire returned before Release")
	case <-time.After(50 * time.Millisecond):
	}

	s.Release()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Acquire did not return after Release")
	}
}

func TestSema_ReleaseIsBanked(t *testing.T) {
	var s Sema
	s.Release()
	s.Release()

	done := make(chan struct{})
	go func() {
		s.Acquire()
		s.Acquire()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("banked releases were lost")
	}
}

func TestSema_WakesEveryWaiter(t *testing.T) {
	var s Sema
	const n = 10
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			s.Acquire()
		}()
	}

	time.Sleep(20 * time.Millisecond)
	for range n {
		s.Release()
	}

	ch := make(chan struct{})
	go func() {
		wg.Wait()
		close(ch)
	}()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("Not all waiters woke up")
	}
}

func TestWord_Size(t *testing.T) {
	size := unsafe.Sizeof(Word_{})
	if size != 4 && size != CacheLineSize_ {
		t.Fatalf("Word_ size=%d, want 4 or %d", size, CacheLineSize_)
	}
	var w Word_
	w.Store(3)
	if got := w.Add(1); got != 4 {
		t.Fatalf("Add = %d, want 4", got)
	}
}

func TestRaceMutex_Serializes(t *testing.T) {
	var mu RaceMutex
	var shared int
	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for range 100 {
				mu.Lock()
				if Race_ {
					shared++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if Race_ && shared != n*100 {
		t.Fatalf("shared = %d, want %d", shared, n*100)
	}
}
