package frechet

import (
	"github.com/AntonBallmaier/Frechet-Isomap/curve"
	"github.com/AntonBallmaier/Frechet-Isomap/frechet/internal/freespace"
)

// TabularDecider is a dense free-space-diagram reachability
// computation over the (m1-1)x(m2-1) grid of cells, with
// reachability propagated left-to-right, bottom-to-top. The zero
// value is ready to use.
type TabularDecider struct{}

// corner is the reachable interval at a diagram corner with no
// predecessor: a single point at parameter 0, representing that the
// corresponding curve endpoint is already known to be within eps (the
// caller has checked endpointsTooFar first).
var corner = freespace.Interval{Lo: 0, Hi: 0}

func (TabularDecider) Decide(p, q *curve.Curve, eps float64) (bool, error) {
	if err := validateEqualDimension("frechet.TabularDecider.Decide", p, q); err != nil {
		return false, err
	}
	if endpointsTooFar(p, q, eps) {
		return false, nil
	}

	n, m := p.Len(), q.Len() // vertex counts
	rows, cols := n-1, m-1   // cell grid dimensions

	// Free intervals: lFree[i][j] is the free interval on the
	// vertical edge at p-index i (i in 0..n-1), spanning q in [j,j+1]
	// (j in 0..cols-1). bFree[i][j] is the free interval on the
	// horizontal edge at q-index j (j in 0..m-1), spanning p in
	// [i,i+1] (i in 0..rows-1).
	lFree := make([][]freespace.Interval, n)
	for i := range lFree {
		lFree[i] = make([]freespace.Interval, cols)
		for j := 0; j < cols; j++ {
			lFree[i][j] = freespace.FreeInterval(p.Raw(i), q.Raw(j), q.Raw(j+1), eps)
		}
	}
	bFree := make([][]freespace.Interval, rows)
	for i := range bFree {
		bFree[i] = make([]freespace.Interval, m)
		for j := 0; j < m; j++ {
			bFree[i][j] = freespace.FreeInterval(q.Raw(j), p.Raw(i), p.Raw(i+1), eps)
		}
	}

	// Seed the two boundary chains: the leftmost column (i=0) and the
	// bottom row (j=0) each form a 1-D sequential reachability chain,
	// since there is no cell to their left/below to propagate from.
	// Along a boundary the next edge is reachable only through the
	// shared vertex: the previous edge must be reachable up to its far
	// end and the next edge must be free from its start.
	chainLeft0 := make([]freespace.Interval, cols)
	chainLeft0[0] = combine(freespace.Interval{Empty: true}, corner, lFree[0][0])
	for j := 1; j < cols; j++ {
		chainLeft0[j] = freespace.Interval{Empty: true}
		if prev, free := chainLeft0[j-1], lFree[0][j]; !prev.Empty && prev.Hi >= 1 && !free.Empty && free.Lo <= 0 {
			chainLeft0[j] = free
		}
	}
	chainBottom0 := make([]freespace.Interval, rows)
	chainBottom0[0] = combine(freespace.Interval{Empty: true}, corner, bFree[0][0])
	for i := 1; i < rows; i++ {
		chainBottom0[i] = freespace.Interval{Empty: true}
		if prev, free := chainBottom0[i-1], bFree[i][0]; !prev.Empty && prev.Hi >= 1 && !free.Empty && free.Lo <= 0 {
			chainBottom0[i] = free
		}
	}

	right := make([][]freespace.Interval, rows)
	top := make([][]freespace.Interval, rows)
	for i := range right {
		right[i] = make([]freespace.Interval, cols)
		top[i] = make([]freespace.Interval, cols)
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var left, bottom freespace.Interval
			if i == 0 {
				left = chainLeft0[j]
			} else {
				left = right[i-1][j]
			}
			if j == 0 {
				bottom = chainBottom0[i]
			} else {
				bottom = top[i][j-1]
			}

			rightFree := lFree[i+1][j]
			topFree := bFree[i][j+1]

			right[i][j] = combine(bottom, left, rightFree)
			top[i][j] = combine(left, bottom, topFree)
		}
	}

	final := right[rows-1][cols-1]
	return !final.Empty && final.Hi >= 1, nil
}

// combine applies the monotonicity rule governing reachability: an
// edge interval is reachable iff (a) the perpendicular edge of the same
// cell was reachable at any parameter and this edge is free (every
// point of this edge lies up and to the right of that edge, so the
// whole free interval becomes reachable), or (b) the parallel
// predecessor edge was reachable at a parameter <= the upper bound of
// this edge's free interval (the reachable sub-interval is clipped to
// start no earlier than that).
func combine(perp, pred, free freespace.Interval) freespace.Interval {
	if free.Empty {
		return freespace.Interval{Empty: true}
	}
	if !perp.Empty {
		return free
	}
	if !pred.Empty && pred.Lo <= free.Hi {
		lo := pred.Lo
		if free.Lo > lo {
			lo = free.Lo
		}
		if lo <= free.Hi {
			return freespace.Interval{Lo: lo, Hi: free.Hi}
		}
	}
	return freespace.Interval{Empty: true}
}
