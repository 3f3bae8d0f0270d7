package parallel

import (
	"sync"
	"testing"
)

func TestRangeCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 1000
	var mu sync.Mutex
	seen := make([]int, n)

	Range(n, func(lo, hi int) {
		mu.Lock()
		defer mu.Unlock()
		for i := lo; i < hi; i++ {
			seen[i]++
		}
	})

	for i, count := range seen {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func TestRangeHandlesZero(t *testing.T) {
	called := false
	Range(0, func(lo, hi int) { called = true })
	if called {
		t.Error("f was called for n=0")
	}
}

func TestRangeSmallerThanWorkerCount(t *testing.T) {
	var mu sync.Mutex
	seen := make([]int, 2)
	Range(2, func(lo, hi int) {
		mu.Lock()
		defer mu.Unlock()
		for i := lo; i < hi; i++ {
			seen[i]++
		}
	})
	for i, count := range seen {
		if count != 1 {
			t.Errorf("index %d visited %d times, want 1", i, count)
		}
	}
}
