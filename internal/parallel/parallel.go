// Package parallel implements a bounded, data-parallel worker model:
// a fixed number of worker goroutines split a range of indices, run
// to completion, and the caller only resumes once every worker has
// finished (a barrier). There is no cooperative suspension and no
// cancellation support; this module's parallel regions are all
// CPU-bound and bulk-synchronous.
//
// The split strategy mirrors gonum's diff/fd.Gradient: the worker
// count defaults to runtime.GOMAXPROCS(0), capped at the amount of
// work so that we never spin up idle goroutines for tiny ranges.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Range calls f(lo, hi) for each of up to runtime.GOMAXPROCS(0)
// contiguous, non-overlapping sub-ranges of [0, n), running them
// concurrently, and blocks until all have returned.
//
// Range is the single entry point used by every parallel region in
// this module: NN-descent's per-vertex phases, DirectEmbedder's row
// fill, and per-source Dijkstra.
func Range(n int, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		f(0, n)
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			f(lo, hi)
			return nil
		})
	}
	// f never errors; Wait only provides the barrier.
	_ = g.Wait()
}

// Workers reports the worker count Range caps its split at for n
// items of work (at least 1), for callers that want to pre-size
// per-worker buffers. Range may start fewer goroutines than this when
// the chunks do not divide n evenly, and calls f not at all for n <= 0.
func Workers(n int) int {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
