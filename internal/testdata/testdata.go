// Package testdata generates the synthetic point clouds used to
// exercise the Isomap pipeline end-to-end: the classic Swiss-roll
// manifold and a grid of "shifted spikes" whose four Gaussian peaks
// make it easy to tell a faithful embedding from a collapsed one.
package testdata

import (
	"math"
	"math/rand"
)

// SwissRoll returns n points of the standard Swiss-roll manifold: a
// 2-D sheet rolled into 3-D, parametrized by t ~ U(3pi/2, 9pi/2) and
// height ~ U(0, heightScale), with
//
//	x = t*cos(t), y = height, z = t*sin(t).
//
// A nil rng defaults to the package-level math/rand source.
func SwissRoll(n int, heightScale float64, rng *rand.Rand) [][]float64 {
	float := rand.Float64
	if rng != nil {
		float = rng.Float64
	}
	points := make([][]float64, n)
	for i := range points {
		t := 1.5*math.Pi + 3*math.Pi*float()
		h := heightScale * float()
		points[i] = []float64{t * math.Cos(t), h, t * math.Sin(t)}
	}
	return points
}

// ShiftedSpikes returns a grid of points over [-rangeVal, rangeVal]^2
// sampled every step, inclusive of both endpoints (so the axis sample
// count is floor(2*rangeVal/step)+1; with rangeVal=1.99, step=0.05
// that is 80, for 6400 total points). Each grid point's third
// coordinate is the sum of four Gaussian bumps centered at
// (±rangeVal/2, ±rangeVal/2), producing a surface with four
// distinct peaks that a faithful embedding must keep separated.
func ShiftedSpikes(rangeVal, step float64) [][]float64 {
	var xs []float64
	for x := -rangeVal; x <= rangeVal+1e-9; x += step {
		xs = append(xs, x)
	}

	centers := [][2]float64{
		{rangeVal / 2, rangeVal / 2},
		{-rangeVal / 2, rangeVal / 2},
		{rangeVal / 2, -rangeVal / 2},
		{-rangeVal / 2, -rangeVal / 2},
	}

	points := make([][]float64, 0, len(xs)*len(xs))
	for _, x := range xs {
		for _, y := range xs {
			z := 0.0
			for _, c := range centers {
				dx, dy := x-c[0], y-c[1]
				z += math.Exp(-(dx*dx + dy*dy))
			}
			points = append(points, []float64{x, y, z})
		}
	}
	return points
}
