// Package freespace computes the free-space-diagram primitives: the
// free interval of a vertex against a segment, and a Cell's
// reachability bookkeeping.
package freespace

import "math"

// Interval is a closed sub-interval of [0, 1] (a parameter range along
// a segment). A zero Interval with Empty set to true represents "no
// interval" (the null result of FreeInterval).
type Interval struct {
	Lo, Hi float64
	Empty  bool
}

// full is the [0, 1] interval, the identity for interval intersection
// in this package.
func full() Interval { return Interval{Lo: 0, Hi: 1} }

func empty() Interval { return Interval{Empty: true} }

// FreeInterval computes, given a center vertex c and a
// segment [a, b], the sub-interval [t0, t1] of [0, 1] such
// that ||c - (a + t(b-a))|| <= epsilon. It returns Empty if the
// discriminant of the resulting quadratic is negative or the root
// interval lies entirely outside [0, 1].
//
// The quadratic is formed directly from the vector algebra
// ||c-a-t(b-a)||^2 - epsilon^2 = A t^2 + B t + C with
// A = |b-a|^2, B = -2(c-a)·(b-a), C = |c-a|^2 - epsilon^2,
// so the computation is symmetric in numerical behavior whether a, b
// are swapped and negated together with the sign of t (FreeInterval
// itself is not swap-symmetric in a,b — reversing a segment reverses
// its parametrization — but is insensitive to the order in which the
// dot products below are summed.
func FreeInterval(c, a, b []float64, epsilon float64) Interval {
	d := sub(b, a)
	e := sub(c, a)

	A := dot(d, d)
	B := -2 * dot(e, d)
	C := dot(e, e) - epsilon*epsilon

	if A == 0 {
		// Degenerate (zero-length) segment: the "interval" is all of
		// [0, 1] if c is within epsilon of a, else empty.
		if C <= 0 {
			return full()
		}
		return empty()
	}

	disc := B*B - 4*A*C
	if disc < 0 {
		return empty()
	}
	sq := math.Sqrt(disc)
	t0 := (-B - sq) / (2 * A)
	t1 := (-B + sq) / (2 * A)

	lo, hi := math.Max(t0, 0), math.Min(t1, 1)
	if lo > hi {
		return empty()
	}
	return Interval{Lo: lo, Hi: hi}
}

func sub(x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - y[i]
	}
	return out
}

func dot(x, y []float64) float64 {
	var s float64
	for i := range x {
		s += x[i] * y[i]
	}
	return s
}

// Cell is a reachable cell (i,j): a work item in the free-space
// diagram of two polylines. Right and Top are the free intervals on
// its right and top edges; Restriction is the path search's signed
// restriction scalar. Neither decider in package frechet stores its
// state in a Cell: the tabular decider keeps grids of Intervals and
// the path decider keeps its own frontier entries.
type Cell struct {
	I, J        int
	Right, Top  Interval
	Restriction float64
}
