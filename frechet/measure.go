// Package frechet implements the Fréchet-distance family over
// curve.Curve values: the discrete Fréchet distance (max-accumulated),
// the integral discrete Fréchet distance (sum-accumulated), and an
// ε-approximate continuous Fréchet distance built on a tabular or
// path-search decider over the free-space diagram.
package frechet

import (
	"math"

	"github.com/AntonBallmaier/Frechet-Isomap/curve"
	"github.com/AntonBallmaier/Frechet-Isomap/xerr"
)

// Measure is a dissimilarity δ over curve.Curve values: a total,
// symmetric, non-negative function with δ(a,a) = 0.
type Measure interface {
	// Distance returns δ(p, q). It is equivalent to
	// DistanceCap(p, q, +Inf).
	Distance(p, q *curve.Curve) (float64, error)
	// DistanceCap returns δ(p, q) if it is <= max, else +Inf.
	// Implementations may short-circuit once the cap is provably
	// exceeded; CanInterrupt reports whether a given implementation
	// actually does, as opposed to merely comparing after a full
	// computation.
	DistanceCap(p, q *curve.Curve, max float64) (float64, error)
	// CanInterrupt reports whether DistanceCap can terminate early
	// once the cap is exceeded, as opposed to always computing the
	// uncapped distance first.
	CanInterrupt() bool
}

// direct is embedded by measures whose natural implementation is the
// uncapped distance; DistanceCap is emulated by computing then
// comparing, so CanInterrupt reports false.
type direct struct{}

func (direct) CanInterrupt() bool { return false }

// capped is embedded by measures whose DistanceCap genuinely
// short-circuits once the cap is provably exceeded, rather than
// computing the uncapped distance first.
type capped struct{}

func (capped) CanInterrupt() bool { return true }

func directCap(dist func(p, q *curve.Curve) (float64, error)) func(p, q *curve.Curve, max float64) (float64, error) {
	return func(p, q *curve.Curve, max float64) (float64, error) {
		d, err := dist(p, q)
		if err != nil {
			return 0, err
		}
		if d <= max {
			return d, nil
		}
		return math.Inf(1), nil
	}
}

func validateEqualDimension(op string, p, q *curve.Curve) error {
	if p.Dimension() != q.Dimension() {
		return xerr.Invalid(op, "curves must share the same dimension")
	}
	return nil
}
