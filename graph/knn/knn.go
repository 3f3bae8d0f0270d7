// Package knn builds k-nearest-neighbor graphs over an abstract index
// space [0, n): an exact brute-force construction and an approximate,
// parallel, incremental NN-descent. Both report
// edges through graph.Graph, which symmetrizes on insertion, so a
// vertex may end up with more than k incident edges even though each
// vertex contributes at most k outgoing candidates.
package knn

import (
	"container/heap"

	"github.com/AntonBallmaier/Frechet-Isomap/graph"
	"github.com/AntonBallmaier/Frechet-Isomap/internal/parallel"
	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// Metric is the dissimilarity the k-NN graph is built over. It is
// deliberately index-based rather than generic over an element type,
// since every caller already has its elements addressable by
// position (curves in a slice, landmarks by row).
type Metric interface {
	Distance(i, j int) (float64, error)
	DistanceCap(i, j int, max float64) (float64, error)
}

// BruteForce computes, for each vertex, a bounded max-heap of size k
// holding its k nearest others, ties broken by index. The per-vertex
// heaps are computed in parallel: the computation is embarrassingly
// data-parallel across vertices, like DirectEmbedder's row fill;
// edges are added to the graph only after all heaps have settled, so
// there is no concurrent graph mutation.
func BruteForce(n, k int, metric Metric) (*graph.Graph, error) {
	const op = "knn.BruteForce"
	if k < 1 || k >= n {
		return nil, xerr.InvalidRange(op, "neighbor count out of range", float64(k), 1, float64(n-1))
	}

	neighbors := make([][]candidate, n)
	var firstErr error
	parallel.Range(n, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			h := &maxHeap{}
			for u := 0; u < n; u++ {
				if u == v {
					continue
				}
				d, err := metric.Distance(v, u)
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				insertBounded(h, k, candidate{idx: u, dist: d})
			}
			neighbors[v] = append([]candidate(nil), (*h)...)
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}

	g := graph.New(n)
	for v, cands := range neighbors {
		for _, c := range cands {
			if err := g.AddEdge(v, c.idx, c.dist); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// candidate is a (index, distance) pair, the unit both the
// brute-force heap and NN-descent's per-vertex sets operate on.
type candidate struct {
	idx   int
	dist  float64
	isNew bool
}

// worse reports whether a is a weaker candidate than b: a strictly
// larger distance, or an equal distance and a strictly larger index
// (ties broken by index).
func worse(a, b candidate) bool {
	if a.dist != b.dist {
		return a.dist > b.dist
	}
	return a.idx > b.idx
}

// maxHeap is a container/heap whose root is always the worst
// candidate present, so the worst can be evicted in O(log k).
type maxHeap []candidate

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return worse(h[i], h[j]) }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// insertBounded keeps h at size <= k, evicting the current worst
// element when c is strictly better than it.
func insertBounded(h *maxHeap, k int, c candidate) {
	if h.Len() < k {
		heap.Push(h, c)
		return
	}
	if worse((*h)[0], c) {
		heap.Pop(h)
		heap.Push(h, c)
	}
}
