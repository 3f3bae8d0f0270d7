package frechet

import (
	"container/heap"
	"math"

	"github.com/AntonBallmaier/Frechet-Isomap/curve"
	"github.com/AntonBallmaier/Frechet-Isomap/frechet/internal/freespace"
)

// PathDecider is an on-demand, priority-ordered search over
// reachable cells of the free-space diagram that avoids allocating
// the full (m1-1)x(m2-1) grid, at the cost of carrying a signed
// restriction through the search to keep re-visits bounded. The zero
// value is ready to use.
type PathDecider struct{}

// restriction state for a visited cell: r > 0 means a right exit
// needs parameter >= r; r < 0 means a top exit needs parameter
// >= -r; r == 0 means no restriction. A weaker restriction (same
// sign, closer to 0) dominates a stronger one — it permits a
// strictly larger set of future exits — so the visited cache only
// ever updates towards weaker values, which is what keeps this search
// both complete and terminating (updating towards a *stronger* value
// could never unlock a move the weaker value hadn't already allowed).
func (PathDecider) Decide(p, q *curve.Curve, eps float64) (bool, error) {
	if err := validateEqualDimension("frechet.PathDecider.Decide", p, q); err != nil {
		return false, err
	}
	if endpointsTooFar(p, q, eps) {
		return false, nil
	}

	n, m := p.Len(), q.Len()
	rows, cols := n-1, m-1
	targetI, targetJ := rows-1, cols-1

	// Reachable-cell cache keyed by the packed index i + j*m1. A hash
	// map is used rather than a dense array since the path decider's
	// whole point is to avoid materializing the full grid for large
	// inputs.
	visited := make(map[int]float64)
	key := func(i, j int) int { return i + j*n }

	pq := &cellQueue{}
	heap.Init(pq)
	heap.Push(pq, cellItem{i: 0, j: 0, restriction: 0, diagonal: true})
	visited[key(0, 0)] = 0

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(cellItem)
		if cur.i == targetI && cur.j == targetJ {
			return true, nil
		}

		right := freespace.FreeInterval(p.Raw(cur.i+1), q.Raw(cur.j), q.Raw(cur.j+1), eps)
		top := freespace.FreeInterval(q.Raw(cur.j+1), p.Raw(cur.i), p.Raw(cur.i+1), eps)
		r := cur.restriction

		if cur.i < rows-1 && cur.j < cols-1 && !right.Empty && !top.Empty && right.Hi >= 1 && top.Hi >= 1 {
			tryVisit(pq, visited, key, cur.i+1, cur.j+1, 0, true, n, m)
		}
		if cur.i < rows-1 && !right.Empty && right.Hi >= r {
			succR := math.Max(r, right.Lo)
			tryVisit(pq, visited, key, cur.i+1, cur.j, succR, false, n, m)
		}
		if cur.j < cols-1 && !top.Empty && top.Hi >= -r {
			succR := math.Min(r, -top.Lo)
			tryVisit(pq, visited, key, cur.i, cur.j+1, succR, false, n, m)
		}
	}
	return false, nil
}

// tryVisit applies the revisit policy: a successor is
// (re-)enqueued only when its restriction strictly weakens the
// recorded state for that cell. A diagonal arrival always carries
// r=0, the weakest possible value, so it falls naturally out of the
// same sign-comparison below — no special case is needed for it.
func tryVisit(pq *cellQueue, visited map[int]float64, key func(i, j int) int, i, j int, r float64, diagonal bool, n, m int) {
	k := key(i, j)
	old, seen := visited[k]
	if !seen {
		visited[k] = r
		heap.Push(pq, cellItem{i: i, j: j, restriction: r, diagonal: diagonal, n: n, m: m})
		return
	}

	switch {
	case old == 0:
		// Already unrestricted; nothing can weaken it further.
		return
	case sign(r) != sign(old):
		// Either r == 0 (strictly weaker than any nonzero old) or r
		// arrived from the orthogonal direction, which clears any
		// restriction left by the other direction entirely.
		visited[k] = 0
		heap.Push(pq, cellItem{i: i, j: j, restriction: 0, diagonal: diagonal, n: n, m: m})
	case math.Abs(r) < math.Abs(old):
		visited[k] = r
		heap.Push(pq, cellItem{i: i, j: j, restriction: r, diagonal: diagonal, n: n, m: m})
	default:
		// r is the same or a stronger restriction than what is
		// already recorded; the existing, weaker entry already
		// dominates, so there is nothing new to explore.
	}
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// cellItem is a frontier entry for the priority search. Diagonal
// moves always sort first; among right/top moves, the one whose
// (i,j) is closer to the free-space diagram's ideal diagonal sorts
// first, using the proximity formula
// (i+0.5)/(m1-1) - (j+0.5)/(m2-1).
type cellItem struct {
	i, j        int
	restriction float64
	diagonal    bool
	n, m        int // vertex counts, to compute diagonal proximity
}

func (c cellItem) priority() float64 {
	if c.diagonal {
		return math.Inf(-1)
	}
	return math.Abs((float64(c.i)+0.5)/float64(c.n-1) - (float64(c.j)+0.5)/float64(c.m-1))
}

type cellQueue []cellItem

func (q cellQueue) Len() int            { return len(q) }
func (q cellQueue) Less(i, j int) bool  { return q[i].priority() < q[j].priority() }
func (q cellQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *cellQueue) Push(x interface{}) { *q = append(*q, x.(cellItem)) }
func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
