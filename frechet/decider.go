package frechet

import (
	"gonum.org/v1/gonum/floats"

	"github.com/AntonBallmaier/Frechet-Isomap/curve"
)

// Decider answers the continuous Fréchet decision problem: is there a
// continuous reparametrization of p and q whose maximum instantaneous
// distance never exceeds eps?
type Decider interface {
	Decide(p, q *curve.Curve, eps float64) (bool, error)
}

// endpointsTooFar implements the fast rejection shared by both
// deciders: if either endpoint pair already exceeds eps, no
// reparametrization can possibly satisfy the radius.
func endpointsTooFar(p, q *curve.Curve, eps float64) bool {
	n, m := p.Len(), q.Len()
	return floats.Distance(p.Raw(0), q.Raw(0), 2) > eps ||
		floats.Distance(p.Raw(n-1), q.Raw(m-1), 2) > eps
}
