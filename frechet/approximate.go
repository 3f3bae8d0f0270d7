package frechet

import (
	"math"

	"github.com/AntonBallmaier/Frechet-Isomap/curve"
	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// ApproximateOptions configures Approximate.
type ApproximateOptions struct {
	// Precision is the half-width the returned value is guaranteed to
	// be within of the true continuous Fréchet distance. Zero selects
	// a default of 1e-6; negative values are rejected.
	Precision float64
	// Decider selects the decision procedure bisection queries at
	// each step. A nil Decider defaults to TabularDecider.
	Decider Decider
}

// Approximate obtains an eps-approximate continuous Fréchet distance
// by bisecting [L, U] with a Decider, where L and U bracket the true
// distance using the discrete Fréchet distance and the longest
// segment of either curve.
//
// U is the discrete Fréchet distance itself, since the discrete
// Fréchet distance (measured only at vertices) can never be smaller
// than the continuous one. L subtracts half of the longer of the two
// curves' longest segments, since no segment midpoint can be farther
// than that from both of its endpoints' already-discrete-optimal
// coupling.
func Approximate(p, q *curve.Curve, opts ApproximateOptions) (float64, error) {
	const op = "frechet.Approximate"
	precision := opts.Precision
	if precision < 0 {
		return 0, xerr.InvalidValue(op, "precision must be positive", precision)
	}
	if precision == 0 {
		precision = 1e-6
	}
	decider := opts.Decider
	if decider == nil {
		decider = TabularDecider{}
	}

	u, err := (DiscreteFrechet{}).Distance(p, q)
	if err != nil {
		return 0, err
	}
	if math.IsInf(u, 1) {
		return u, nil
	}

	longest := p.LongestSegment()
	if q.LongestSegment() > longest {
		longest = q.LongestSegment()
	}
	l := u - longest/2
	if l < 0 {
		l = 0
	}

	for (u-l)/2 > precision {
		mid := (l + u) / 2
		ok, err := decider.Decide(p, q, mid)
		if err != nil {
			return 0, err
		}
		if ok {
			u = mid
		} else {
			l = mid
		}
	}
	return (l + u) / 2, nil
}

// ApproximateMeasure adapts Approximate into a Measure: distance is
// the primitive operation (bisection has no natural early exit), and
// DistanceCap is emulated by computing then comparing.
type ApproximateMeasure struct {
	direct
	Options ApproximateOptions
}

func (m ApproximateMeasure) Distance(p, q *curve.Curve) (float64, error) {
	return Approximate(p, q, m.Options)
}

func (m ApproximateMeasure) DistanceCap(p, q *curve.Curve, max float64) (float64, error) {
	return directCap(m.Distance)(p, q, max)
}
